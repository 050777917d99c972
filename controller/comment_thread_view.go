// controller/comment_thread_view.go
package controller

import (
	"context"
	"errors"
	"fmt"

	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	"github.com/pcbinspect/client/service"
	"github.com/pcbinspect/client/util"
)

// CommentThreadView shows the comments of one material. Replies nest one level deep.
type CommentThreadView struct {
	view
	comments   service.ICommentService
	materialID int

	items []model.Comment
}

func NewCommentThreadView(materialID int, comments service.ICommentService, sessions service.SessionProvider, evaluator *engine.PolicyEvaluator, notifier util.Notifier) *CommentThreadView {
	return &CommentThreadView{
		view:       newView(sessions, evaluator, notifier),
		comments:   comments,
		materialID: materialID,
	}
}

func (v *CommentThreadView) Mount(ctx context.Context) error {
	v.mount(ctx)
	return v.Refresh(ctx)
}

func (v *CommentThreadView) Refresh(ctx context.Context) error {
	ctx, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	items, err := v.comments.ListComments(ctx, v.materialID)
	if err := v.finish("Failed to load comments", err); err != nil {
		return err
	}
	v.mu.Lock()
	v.items = items
	v.mu.Unlock()
	return nil
}

func (v *CommentThreadView) Comments() []model.Comment {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.Comment(nil), v.items...)
}

// CanDelete is true only for the viewer's own comments.
func (v *CommentThreadView) CanDelete(c model.Comment) bool {
	return v.Gate().CanDeleteComment(c)
}

func (v *CommentThreadView) Add(ctx context.Context, content string) error {
	return v.post(ctx, nil, content)
}

// Reply answers a top-level comment.
func (v *CommentThreadView) Reply(ctx context.Context, parentID int, content string) error {
	parent, ok := v.find(parentID)
	if !ok || parent.IsReply() {
		return fmt.Errorf("%w: replies must target a top-level comment", pcb_errors.ErrValidation)
	}
	return v.post(ctx, &parentID, content)
}

func (v *CommentThreadView) post(ctx context.Context, parent *int, content string) error {
	scoped, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	release, err := v.acquire()
	if err != nil {
		return err
	}

	_, err = v.comments.AddComment(scoped, v.materialID, parent, content)
	release()
	if errors.Is(err, pcb_errors.ErrValidation) {
		v.notifier.Alert("Missing input", "Write a comment first.")
		return err
	}
	if err := v.finish("Failed to post comment", err); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

func (v *CommentThreadView) Delete(ctx context.Context, commentID int) error {
	c, ok := v.find(commentID)
	if !ok {
		return fmt.Errorf("%w: comment %d", pcb_errors.ErrNotFound, commentID)
	}
	if !v.CanDelete(c) {
		return pcb_errors.ErrForbidden
	}

	scoped, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	release, err := v.acquire()
	if err != nil {
		return err
	}

	err = v.comments.DeleteComment(scoped, commentID)
	release()
	if err := v.finish("Failed to delete comment", err); err != nil {
		return err
	}
	return v.Refresh(ctx)
}

// find looks through top-level comments and their replies.
func (v *CommentThreadView) find(id int) (model.Comment, bool) {
	for _, c := range v.Comments() {
		if c.ID == id {
			return c, true
		}
		for _, r := range c.Replies {
			if r.ID == id {
				return r, true
			}
		}
	}
	return model.Comment{}, false
}
