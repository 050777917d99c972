// controller/project_detail_view.go
package controller

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	"github.com/pcbinspect/client/service"
	"github.com/pcbinspect/client/util"
)

const threadFetchLimit = 4

// ProjectDetailView shows one project with its materials and comment threads.
// An admin opening a PENDING project moves it to REVIEWED.
type ProjectDetailView struct {
	view
	projects  service.IProjectService
	materials service.IMaterialService
	comments  service.ICommentService

	stateMu     sync.Mutex
	project     model.Project
	unsynced    bool
	items       []model.Material
	threads     map[int][]model.Comment
	downloading bool
}

func NewProjectDetailView(
	project model.Project,
	projects service.IProjectService,
	materials service.IMaterialService,
	comments service.ICommentService,
	sessions service.SessionProvider,
	evaluator *engine.PolicyEvaluator,
	notifier util.Notifier,
) *ProjectDetailView {
	return &ProjectDetailView{
		view:      newView(sessions, evaluator, notifier),
		projects:  projects,
		materials: materials,
		comments:  comments,
		project:   project,
		threads:   make(map[int][]model.Comment),
	}
}

// Mount loads the viewer, fires the auto-review at most once, then loads materials.
func (v *ProjectDetailView) Mount(ctx context.Context) error {
	life := v.mount(ctx)
	v.autoReview(life)
	return v.Focus(ctx)
}

// autoReview flips the local status before the server confirms. A failure
// keeps REVIEWED on screen and marks the project unsynced.
func (v *ProjectDetailView) autoReview(life context.Context) {
	if !v.Gate().IsAdmin() || v.Project().Status != model.StatusPending {
		return
	}
	release, err := v.acquire()
	if err != nil {
		return
	}

	v.stateMu.Lock()
	change := model.ProjectStatusChanged{
		Actor:     v.actor(),
		ProjectID: v.project.ID,
		From:      v.project.Status,
		To:        model.StatusReviewed,
		Automatic: true,
	}
	v.project.Status = model.StatusReviewed
	v.stateMu.Unlock()

	v.tasks.Add(1)
	go func() {
		defer v.tasks.Done()
		defer release()

		status, err := v.projects.UpdateStatus(life, change)
		if life.Err() != nil {
			logger.Debug("Dropping auto-review result of unmounted view", zap.Int("projectID", change.ProjectID))
			return
		}
		if err != nil {
			v.stateMu.Lock()
			v.unsynced = true
			v.stateMu.Unlock()
			v.notifier.Alert("Review not saved", fmt.Sprintf("The project is shown as REVIEWED but the server did not confirm: %s", pcb_errors.Message(err)))
			return
		}

		v.stateMu.Lock()
		v.project.Status = status
		v.unsynced = false
		v.stateMu.Unlock()
	}()
}

// Focus reloads the materials and their comment threads.
func (v *ProjectDetailView) Focus(ctx context.Context) error {
	ctx, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	items, err := v.materials.ListMaterials(ctx, v.Project().ID)
	if err != nil {
		return v.finish("Failed to load materials", err)
	}

	threads := make(map[int][]model.Comment, len(items))
	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(threadFetchLimit)
	for _, m := range items {
		materialID := m.ID
		g.Go(func() error {
			comments, err := v.comments.ListComments(gctx, materialID)
			if err != nil {
				return err
			}
			mu.Lock()
			threads[materialID] = comments
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return v.finish("Failed to load comments", err)
	}
	if v.closed() {
		return pcb_errors.ErrViewClosed
	}

	v.stateMu.Lock()
	v.items = items
	v.threads = threads
	v.stateMu.Unlock()
	return nil
}

func (v *ProjectDetailView) Accept(ctx context.Context) error {
	return v.decide(ctx, model.StatusAccepted)
}

func (v *ProjectDetailView) Reject(ctx context.Context) error {
	return v.decide(ctx, model.StatusRejected)
}

// decide applies the new status locally only after the server acknowledged it.
func (v *ProjectDetailView) decide(ctx context.Context, to model.ProjectStatus) error {
	current := v.Project()
	if !v.Gate().CanApproveReject(current.Status) {
		return fmt.Errorf("%w: cannot change status of this project", pcb_errors.ErrForbidden)
	}
	if !model.CanTransition(current.Status, to) {
		return fmt.Errorf("%w: %s to %s", pcb_errors.ErrInvalidTransition, current.Status, to)
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

	status, err := v.projects.UpdateStatus(ctx, model.ProjectStatusChanged{
		Actor:     v.actor(),
		ProjectID: current.ID,
		From:      current.Status,
		To:        to,
	})
	if err := v.finish("Status update failed", err); err != nil {
		return err
	}

	v.stateMu.Lock()
	v.project.Status = status
	v.unsynced = false
	v.stateMu.Unlock()
	v.notifier.Alert("Status updated", fmt.Sprintf("Project status changed to %s.", status))
	return nil
}

// Download saves the performance spreadsheet of a material into destDir.
// Only one download runs at a time.
func (v *ProjectDetailView) Download(ctx context.Context, materialID int, destDir string) (string, error) {
	material, ok := v.material(materialID)
	if !ok {
		return "", fmt.Errorf("%w: material %d", pcb_errors.ErrNotFound, materialID)
	}

	ctx, cancel, err := v.scope(ctx)
	if err != nil {
		return "", err
	}
	defer cancel()

	v.stateMu.Lock()
	if v.downloading {
		v.stateMu.Unlock()
		return "", pcb_errors.ErrBusy
	}
	v.downloading = true
	v.stateMu.Unlock()
	defer func() {
		v.stateMu.Lock()
		v.downloading = false
		v.stateMu.Unlock()
	}()

	path, err := v.materials.DownloadPerformance(ctx, material, destDir)
	if err := v.finish("Download failed", err); err != nil {
		return "", err
	}
	v.notifier.Alert("Download complete", path)
	return path, nil
}

// UploadResult files a result image and its spreadsheet under the project,
// then reloads the materials.
func (v *ProjectDetailView) UploadResult(ctx context.Context, image, spreadsheetPath, description string) error {
	scoped, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	release, err := v.acquire()
	if err != nil {
		return err
	}
	defer release()

	err = v.materials.UploadResult(scoped, v.Project().ID, image, spreadsheetPath, description)
	if err := v.finish("Upload failed", err); err != nil {
		return err
	}
	v.notifier.Alert("Saved", "The analysis result was saved.")
	return v.Focus(ctx)
}

func (v *ProjectDetailView) material(id int) (model.Material, bool) {
	v.stateMu.Lock()
	defer v.stateMu.Unlock()
	for _, m := range v.items {
		if m.ID == id {
			return m, true
		}
	}
	return model.Material{}, false
}

func (v *ProjectDetailView) Project() model.Project {
	v.stateMu.Lock()
	defer v.stateMu.Unlock()
	return v.project
}

// Unsynced is true when the shown status was never confirmed by the server.
func (v *ProjectDetailView) Unsynced() bool {
	v.stateMu.Lock()
	defer v.stateMu.Unlock()
	return v.unsynced
}

func (v *ProjectDetailView) Materials() []model.Material {
	v.stateMu.Lock()
	defer v.stateMu.Unlock()
	return append([]model.Material(nil), v.items...)
}

func (v *ProjectDetailView) Thread(materialID int) []model.Comment {
	v.stateMu.Lock()
	defer v.stateMu.Unlock()
	return append([]model.Comment(nil), v.threads[materialID]...)
}

// ShowDecision reports whether the accept and reject buttons are shown.
func (v *ProjectDetailView) ShowDecision() bool {
	p := v.Project()
	return v.Gate().CanApproveReject(p.Status) && (model.CanTransition(p.Status, model.StatusAccepted) || model.CanTransition(p.Status, model.StatusRejected))
}
