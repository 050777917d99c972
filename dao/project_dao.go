// dao/project_dao.go
package dao

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"go.uber.org/zap"

	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

type IProjectDAO interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, req model.CreateProjectRequest) error
	DeleteProject(ctx context.Context, projectID int, role model.Role) error
	UpdateStatus(ctx context.Context, update model.StatusUpdate) (model.ProjectStatus, error)
}

type ProjectDAO struct {
	client *Client
}

var _ IProjectDAO = &ProjectDAO{}

func NewProjectDAO(client *Client) *ProjectDAO {
	return &ProjectDAO{client: client}
}

func (dao *ProjectDAO) ListProjects(ctx context.Context) ([]model.Project, error) {
	raw, err := dao.client.doJSON(ctx, http.MethodGet, "/projects/", nil, nil)
	if err != nil {
		return nil, err
	}
	var projects []model.Project
	if err := decodeList(raw, &projects); err != nil {
		return nil, err
	}
	logger.Debug("Projects listed", zap.Int("count", len(projects)))
	return projects, nil
}

func (dao *ProjectDAO) CreateProject(ctx context.Context, req model.CreateProjectRequest) error {
	logger.Info("Creating project", zap.String("modelName", req.ModelName))
	raw, err := dao.client.doJSON(ctx, http.MethodPost, "/projects/", nil, req)
	if err != nil {
		return err
	}
	_, err = envelope(raw)
	return err
}

// DeleteProject sends the role in the body because the backend may not find it in the session.
func (dao *ProjectDAO) DeleteProject(ctx context.Context, projectID int, role model.Role) error {
	logger.Info("Deleting project", zap.Int("projectID", projectID))
	query := url.Values{"id": {strconv.Itoa(projectID)}}
	raw, err := dao.client.doJSON(ctx, http.MethodDelete, "/projects/", query, model.DeleteProjectRequest{UserRole: role})
	if err != nil {
		return err
	}
	_, err = envelope(raw)
	return err
}

// UpdateStatus returns the status the server persisted.
func (dao *ProjectDAO) UpdateStatus(ctx context.Context, update model.StatusUpdate) (model.ProjectStatus, error) {
	logger.Info("Updating project status",
		zap.Int("projectID", update.ProjectID),
		zap.String("status", string(update.Status)))

	raw, err := dao.client.doJSON(ctx, http.MethodPost, "/projects/status/", nil, update)
	if err != nil {
		return "", err
	}
	env, err := envelope(raw)
	if err != nil {
		return "", err
	}
	if env.NewStatus == "" {
		return update.Status, nil
	}
	if !env.NewStatus.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", pcb_errors.ErrServer, env.NewStatus)
	}
	return env.NewStatus, nil
}
