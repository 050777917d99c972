// controller/project_list_view.go
package controller

import (
	"context"
	"errors"

	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	pdp_model "github.com/pcbinspect/client/pdp/model"
	"github.com/pcbinspect/client/service"
	"github.com/pcbinspect/client/util"
)

// ProjectListView lists the company's projects and creates or deletes them.
type ProjectListView struct {
	view
	projects service.IProjectService

	items []model.Project
}

func NewProjectListView(projects service.IProjectService, sessions service.SessionProvider, evaluator *engine.PolicyEvaluator, notifier util.Notifier) *ProjectListView {
	return &ProjectListView{view: newView(sessions, evaluator, notifier), projects: projects}
}

func (v *ProjectListView) Mount(ctx context.Context) error {
	v.mount(ctx)
	return v.Refresh(ctx)
}

func (v *ProjectListView) Refresh(ctx context.Context) error {
	ctx, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	items, err := v.projects.ListProjects(ctx)
	if err := v.finish("Failed to load projects", err); err != nil {
		return err
	}
	v.mu.Lock()
	v.items = items
	v.mu.Unlock()
	return nil
}

func (v *ProjectListView) Projects() []model.Project {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.Project(nil), v.items...)
}

func (v *ProjectListView) Project(id int) (model.Project, bool) {
	for _, p := range v.Projects() {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

func (v *ProjectListView) CanDelete() bool {
	return v.Gate().Visible(pdp_model.AffordanceDeleteProject)
}

// Create rejects an empty model name before any request is made.
func (v *ProjectListView) Create(ctx context.Context, modelName string) error {
	scoped, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	release, err := v.acquire()
	if err != nil {
		return err
	}

	err = v.projects.CreateProject(scoped, modelName)
	release()
	if errors.Is(err, pcb_errors.ErrValidation) {
		v.notifier.Alert("Missing input", "Enter a model name.")
		return err
	}
	if err := v.finish("Failed to create project", err); err != nil {
		return err
	}
	v.notifier.Alert("Project created", modelName)
	return v.Refresh(ctx)
}

// Delete is refused locally for viewers who cannot see the delete control.
func (v *ProjectListView) Delete(ctx context.Context, projectID int) error {
	if !v.CanDelete() {
		return pcb_errors.ErrForbidden
	}
	ctx, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	release, err := v.acquire()
	if err != nil {
		return err
	}
	defer release()

	err = v.projects.DeleteProject(ctx, v.actor(), projectID)
	if err := v.finish("Failed to delete project", err); err != nil {
		return err
	}

	v.mu.Lock()
	kept := make([]model.Project, 0, len(v.items))
	for _, p := range v.items {
		if p.ID != projectID {
			kept = append(kept, p)
		}
	}
	v.items = kept
	v.mu.Unlock()
	v.notifier.Alert("Project deleted", "The project was removed.")
	return nil
}
