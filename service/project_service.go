// service/project_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/dao"
	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/util"
)

type IProjectService interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, modelName string) error
	UpdateStatus(ctx context.Context, change model.ProjectStatusChanged) (model.ProjectStatus, error)
	DeleteProject(ctx context.Context, actor model.Actor, projectID int) error
}

type ProjectService struct {
	projectDAO     dao.IProjectDAO
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IProjectService = &ProjectService{}

func NewProjectService(projectDAO dao.IProjectDAO, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *ProjectService {
	return &ProjectService{
		projectDAO:     projectDAO,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

func (s *ProjectService) ListProjects(ctx context.Context) ([]model.Project, error) {
	projects, err := s.projectDAO.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// CreateProject validates the model name before anything goes over the wire.
func (s *ProjectService) CreateProject(ctx context.Context, modelName string) error {
	req := model.CreateProjectRequest{ModelName: strings.TrimSpace(modelName)}
	if err := s.validationUtil.ValidateProject(req); err != nil {
		return err
	}
	if err := s.projectDAO.CreateProject(ctx, req); err != nil {
		return fmt.Errorf("failed to create project: %w", err)
	}
	logger.Info("Project created", zap.String("modelName", req.ModelName))
	return nil
}

// UpdateStatus posts change.To and returns the status the server stored. The
// actor's role goes along because the backend may fall back to it.
func (s *ProjectService) UpdateStatus(ctx context.Context, change model.ProjectStatusChanged) (model.ProjectStatus, error) {
	if !change.Actor.Role.IsAdmin() {
		return "", fmt.Errorf("%w: role %q cannot change project status", pcb_errors.ErrForbidden, change.Actor.Role)
	}
	if !change.To.Valid() {
		return "", fmt.Errorf("%w: unknown status %q", pcb_errors.ErrValidation, change.To)
	}

	status, err := s.projectDAO.UpdateStatus(ctx, model.StatusUpdate{
		ProjectID: change.ProjectID,
		Status:    change.To,
		UserRole:  change.Actor.Role,
	})
	if err != nil {
		logger.Warn("Project status update failed",
			zap.Int("projectID", change.ProjectID),
			zap.String("to", string(change.To)),
			zap.Bool("automatic", change.Automatic),
			zap.Error(err))
		return "", fmt.Errorf("failed to update project status: %w", err)
	}

	change.To = status
	if s.eventBus != nil {
		s.eventBus.Publish(ctx, util.EventProjectStatusChanged, change)
	}
	return status, nil
}

func (s *ProjectService) DeleteProject(ctx context.Context, actor model.Actor, projectID int) error {
	if !actor.Role.IsAdmin() {
		return fmt.Errorf("%w: role %q cannot delete projects", pcb_errors.ErrForbidden, actor.Role)
	}
	if err := s.projectDAO.DeleteProject(ctx, projectID, actor.Role); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, util.EventProjectDeleted, model.ProjectDeleted{Actor: actor, ProjectID: projectID})
	}
	logger.Info("Project deleted", zap.Int("projectID", projectID))
	return nil
}
