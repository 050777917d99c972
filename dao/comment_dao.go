// dao/comment_dao.go
package dao

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

type ICommentDAO interface {
	ListComments(ctx context.Context, materialID int) ([]model.Comment, error)
	CreateComment(ctx context.Context, req model.CommentCreate) (*model.Comment, error)
	DeleteComment(ctx context.Context, commentID int) error
}

type CommentDAO struct {
	client *Client
}

var _ ICommentDAO = &CommentDAO{}

func NewCommentDAO(client *Client) *CommentDAO {
	return &CommentDAO{client: client}
}

// ListComments returns the top-level comments of a material with their replies nested.
func (dao *CommentDAO) ListComments(ctx context.Context, materialID int) ([]model.Comment, error) {
	query := url.Values{"material_id": {strconv.Itoa(materialID)}}
	raw, err := dao.client.doJSON(ctx, http.MethodGet, "/comments/", query, nil)
	if err != nil {
		return nil, err
	}
	var comments []model.Comment
	if err := decodeList(raw, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateComment returns the created comment when the server echoes it, otherwise nil.
func (dao *CommentDAO) CreateComment(ctx context.Context, req model.CommentCreate) (*model.Comment, error) {
	logger.Info("Creating comment", zap.Int("materialID", req.Material), zap.Bool("reply", req.Parent != nil))

	raw, err := dao.client.doJSON(ctx, http.MethodPost, "/comments/", nil, req)
	if err != nil {
		return nil, err
	}

	var created model.Comment
	if json.Unmarshal(raw, &created) == nil && created.ID != 0 {
		return &created, nil
	}
	env, err := envelope(raw)
	if err != nil {
		return nil, err
	}
	if len(env.Data) > 0 && json.Unmarshal(env.Data, &created) == nil && created.ID != 0 {
		return &created, nil
	}
	return nil, nil
}

func (dao *CommentDAO) DeleteComment(ctx context.Context, commentID int) error {
	logger.Info("Deleting comment", zap.Int("commentID", commentID))
	query := url.Values{"id": {strconv.Itoa(commentID)}}
	raw, err := dao.client.doJSON(ctx, http.MethodDelete, "/comments/", query, nil)
	if err != nil {
		return err
	}
	_, err = envelope(raw)
	return err
}
