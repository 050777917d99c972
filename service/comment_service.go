// service/comment_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/dao"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/util"
)

type ICommentService interface {
	ListComments(ctx context.Context, materialID int) ([]model.Comment, error)
	AddComment(ctx context.Context, materialID int, parent *int, content string) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID int) error
}

type CommentService struct {
	commentDAO     dao.ICommentDAO
	validationUtil *util.ValidationUtil
}

var _ ICommentService = &CommentService{}

func NewCommentService(commentDAO dao.ICommentDAO, validationUtil *util.ValidationUtil) *CommentService {
	return &CommentService{commentDAO: commentDAO, validationUtil: validationUtil}
}

func (s *CommentService) ListComments(ctx context.Context, materialID int) ([]model.Comment, error) {
	comments, err := s.commentDAO.ListComments(ctx, materialID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// AddComment posts a top-level comment, or a reply when parent is set.
func (s *CommentService) AddComment(ctx context.Context, materialID int, parent *int, content string) (*model.Comment, error) {
	req := model.CommentCreate{Material: materialID, Parent: parent, Content: strings.TrimSpace(content)}
	if err := s.validationUtil.ValidateComment(req); err != nil {
		return nil, err
	}

	created, err := s.commentDAO.CreateComment(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to add comment: %w", err)
	}
	logger.Info("Comment added", zap.Int("materialID", materialID), zap.Bool("reply", parent != nil))
	return created, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, commentID int) error {
	if err := s.commentDAO.DeleteComment(ctx, commentID); err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	return nil
}
