package controller_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pcbinspect/client/controller"
	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	mock_service "github.com/pcbinspect/client/test/service_mock"
	"github.com/pcbinspect/client/util"
)

type detailFixture struct {
	projects  *mock_service.MockIProjectService
	materials *mock_service.MockIMaterialService
	comments  *mock_service.MockICommentService
	notifier  *util.RecordingNotifier
	view      *controller.ProjectDetailView
}

func newDetail(t *testing.T, viewer *model.Session, status model.ProjectStatus) *detailFixture {
	ctrl := setup(t)
	f := &detailFixture{
		projects:  mock_service.NewMockIProjectService(ctrl),
		materials: mock_service.NewMockIMaterialService(ctrl),
		comments:  mock_service.NewMockICommentService(ctrl),
		notifier:  util.NewRecordingNotifier(),
	}
	f.view = controller.NewProjectDetailView(
		model.Project{ID: 10, ModelName: "MB-100", Status: status},
		f.projects, f.materials, f.comments, sessionFor(ctrl, viewer), evaluator(), f.notifier,
	)
	return f
}

func (f *detailFixture) noMaterials() {
	f.materials.EXPECT().ListMaterials(gomock.Any(), 10).Return(nil, nil).AnyTimes()
}

func TestAutoReviewFiresOncePerMount(t *testing.T) {
	for _, viewer := range []*model.Session{director, manager} {
		f := newDetail(t, viewer, model.StatusPending)
		f.noMaterials()
		f.projects.EXPECT().
			UpdateStatus(gomock.Any(), model.ProjectStatusChanged{
				Actor:     model.Actor{ID: viewer.ID, Role: viewer.Role},
				ProjectID: 10,
				From:      model.StatusPending,
				To:        model.StatusReviewed,
				Automatic: true,
			}).
			Return(model.StatusReviewed, nil).
			Times(1)

		ctx := context.Background()
		require.NoError(t, f.view.Mount(ctx))
		assert.Equal(t, model.StatusReviewed, f.view.Project().Status)

		for i := 0; i < 3; i++ {
			require.NoError(t, f.view.Focus(ctx))
		}
		f.view.Wait()
		assert.Equal(t, model.StatusReviewed, f.view.Project().Status)
		assert.False(t, f.view.Unsynced())
		assert.Empty(t, f.notifier.Alerts())
	}
}

func TestAutoReviewSkippedForNonAdmins(t *testing.T) {
	for name, viewer := range nonAdmins {
		t.Run(name, func(t *testing.T) {
			f := newDetail(t, viewer, model.StatusPending)
			f.noMaterials()

			require.NoError(t, f.view.Mount(context.Background()))
			f.view.Wait()
			assert.Equal(t, model.StatusPending, f.view.Project().Status)
			assert.False(t, f.view.ShowDecision())
		})
	}
}

func TestAutoReviewSkippedWhenNotPending(t *testing.T) {
	for _, status := range []model.ProjectStatus{model.StatusReviewed, model.StatusAccepted, model.StatusRejected} {
		f := newDetail(t, director, status)
		f.noMaterials()

		require.NoError(t, f.view.Mount(context.Background()))
		f.view.Wait()
		assert.Equal(t, status, f.view.Project().Status)
	}
}

func TestAutoReviewFailureKeepsReviewedAndMarksUnsynced(t *testing.T) {
	f := newDetail(t, director, model.StatusPending)
	f.noMaterials()
	f.projects.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(model.ProjectStatus(""), pcb_errors.ErrNetwork)

	require.NoError(t, f.view.Mount(context.Background()))
	f.view.Wait()

	assert.Equal(t, model.StatusReviewed, f.view.Project().Status)
	assert.True(t, f.view.Unsynced())
	alert, ok := f.notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Review not saved", alert.Title)
}

func TestAutoReviewReconcilesToServerStatus(t *testing.T) {
	f := newDetail(t, director, model.StatusPending)
	f.noMaterials()
	// someone else already decided the project
	f.projects.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(model.StatusAccepted, nil)

	require.NoError(t, f.view.Mount(context.Background()))
	f.view.Wait()
	assert.Equal(t, model.StatusAccepted, f.view.Project().Status)
}

func TestUnmountDropsLateAutoReview(t *testing.T) {
	f := newDetail(t, director, model.StatusPending)
	f.noMaterials()
	started := make(chan struct{})
	f.projects.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, _ model.ProjectStatusChanged) (model.ProjectStatus, error) {
		close(started)
		<-ctx.Done()
		return "", ctx.Err()
	})

	require.NoError(t, f.view.Mount(context.Background()))
	<-started
	f.view.Unmount()
	f.view.Wait()

	assert.False(t, f.view.Unsynced())
	assert.Empty(t, f.notifier.Alerts())
	assert.ErrorIs(t, f.view.Focus(context.Background()), pcb_errors.ErrViewClosed)
}

func TestAcceptRejectAfterServerAck(t *testing.T) {
	f := newDetail(t, manager, model.StatusReviewed)
	f.noMaterials()
	require.NoError(t, f.view.Mount(context.Background()))
	assert.True(t, f.view.ShowDecision())

	f.projects.EXPECT().
		UpdateStatus(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, change model.ProjectStatusChanged) (model.ProjectStatus, error) {
			// nothing changes locally before the server answers
			assert.Equal(t, model.StatusReviewed, f.view.Project().Status)
			assert.Equal(t, model.StatusRejected, change.To)
			assert.False(t, change.Automatic)
			return model.StatusRejected, nil
		})

	require.NoError(t, f.view.Reject(context.Background()))
	assert.Equal(t, model.StatusRejected, f.view.Project().Status)
	assert.False(t, f.view.ShowDecision())
	alert, _ := f.notifier.Last()
	assert.Equal(t, "Status updated", alert.Title)

	// terminal: nothing goes out
	assert.ErrorIs(t, f.view.Accept(context.Background()), pcb_errors.ErrForbidden)
}

func TestDecisionRefusedWithoutGate(t *testing.T) {
	f := newDetail(t, staff, model.StatusPending)
	f.noMaterials()
	require.NoError(t, f.view.Mount(context.Background()))
	assert.ErrorIs(t, f.view.Accept(context.Background()), pcb_errors.ErrForbidden)

	g := newDetail(t, director, model.StatusAccepted)
	g.noMaterials()
	require.NoError(t, g.view.Mount(context.Background()))
	assert.ErrorIs(t, g.view.Reject(context.Background()), pcb_errors.ErrForbidden)
}

func TestAcceptFailureKeepsStatus(t *testing.T) {
	f := newDetail(t, director, model.StatusReviewed)
	f.noMaterials()
	require.NoError(t, f.view.Mount(context.Background()))
	f.projects.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).
		Return(model.ProjectStatus(""), pcb_errors.NewAPIError(403, "permission denied (role: STAFF)"))

	err := f.view.Accept(context.Background())
	assert.ErrorIs(t, err, pcb_errors.ErrForbidden)
	assert.Equal(t, model.StatusReviewed, f.view.Project().Status)
	alert, ok := f.notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Status update failed", alert.Title)
	assert.Equal(t, "permission denied (role: STAFF)", alert.Message)
}

func TestOneMutationAtATime(t *testing.T) {
	f := newDetail(t, director, model.StatusReviewed)
	f.noMaterials()
	require.NoError(t, f.view.Mount(context.Background()))

	entered := make(chan struct{})
	unblock := make(chan struct{})
	f.projects.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).DoAndReturn(func(context.Context, model.ProjectStatusChanged) (model.ProjectStatus, error) {
		close(entered)
		<-unblock
		return model.StatusAccepted, nil
	})

	done := make(chan error, 1)
	go func() { done <- f.view.Accept(context.Background()) }()
	<-entered

	assert.True(t, f.view.Busy())
	assert.ErrorIs(t, f.view.Reject(context.Background()), pcb_errors.ErrBusy)

	close(unblock)
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("accept did not finish")
	}
	assert.Equal(t, model.StatusAccepted, f.view.Project().Status)
}

func TestFocusLoadsThreadsPerMaterial(t *testing.T) {
	f := newDetail(t, staff, model.StatusReviewed)
	materials := []model.Material{{ID: 21}, {ID: 22}, {ID: 23}}
	f.materials.EXPECT().ListMaterials(gomock.Any(), 10).Return(materials, nil).Times(2)
	for _, m := range materials {
		f.comments.EXPECT().ListComments(gomock.Any(), m.ID).Return([]model.Comment{{ID: m.ID * 10, Material: m.ID}}, nil).Times(2)
	}

	require.NoError(t, f.view.Mount(context.Background()))
	require.NoError(t, f.view.Focus(context.Background()))

	assert.Len(t, f.view.Materials(), 3)
	for _, m := range materials {
		thread := f.view.Thread(m.ID)
		require.Len(t, thread, 1)
		assert.Equal(t, m.ID*10, thread[0].ID)
	}
}

func TestFocusFailureAlerts(t *testing.T) {
	f := newDetail(t, staff, model.StatusReviewed)
	f.materials.EXPECT().ListMaterials(gomock.Any(), 10).Return(nil, pcb_errors.ErrNetwork)

	err := f.view.Mount(context.Background())
	assert.ErrorIs(t, err, pcb_errors.ErrNetwork)
	alert, ok := f.notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Failed to load materials", alert.Title)
}

func TestDownload(t *testing.T) {
	f := newDetail(t, staff, model.StatusReviewed)
	material := model.Material{ID: 21, PerformanceDataURL: "/media/performance_data/1_a.xlsx"}
	f.materials.EXPECT().ListMaterials(gomock.Any(), 10).Return([]model.Material{material}, nil)
	f.comments.EXPECT().ListComments(gomock.Any(), 21).Return(nil, nil)
	require.NoError(t, f.view.Mount(context.Background()))

	f.materials.EXPECT().DownloadPerformance(gomock.Any(), material, "/tmp/out").Return("/tmp/out/1_a.xlsx", nil)
	path, err := f.view.Download(context.Background(), 21, "/tmp/out")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/out/1_a.xlsx", path)

	_, err = f.view.Download(context.Background(), 99, "/tmp/out")
	assert.ErrorIs(t, err, pcb_errors.ErrNotFound)
}

func TestUploadResultReloadsMaterials(t *testing.T) {
	f := newDetail(t, staff, model.StatusReviewed)
	material := model.Material{ID: 21, Description: "line 2"}
	gomock.InOrder(
		f.materials.EXPECT().ListMaterials(gomock.Any(), 10).Return(nil, nil),
		f.materials.EXPECT().UploadResult(gomock.Any(), 10, "board.png", "report.xlsx", "line 2").Return(nil),
		f.materials.EXPECT().ListMaterials(gomock.Any(), 10).Return([]model.Material{material}, nil),
	)
	f.comments.EXPECT().ListComments(gomock.Any(), 21).Return(nil, nil)
	require.NoError(t, f.view.Mount(context.Background()))

	require.NoError(t, f.view.UploadResult(context.Background(), "board.png", "report.xlsx", "line 2"))
	assert.Equal(t, []model.Material{material}, f.view.Materials())
	alert, ok := f.notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Saved", alert.Title)
}

func TestUploadResultFailureAlerts(t *testing.T) {
	f := newDetail(t, staff, model.StatusReviewed)
	f.materials.EXPECT().ListMaterials(gomock.Any(), 10).Return(nil, nil).Times(1)
	f.materials.EXPECT().UploadResult(gomock.Any(), 10, "board.png", "report.txt", "").
		Return(fmt.Errorf("%w: unsupported spreadsheet", pcb_errors.ErrValidation))
	require.NoError(t, f.view.Mount(context.Background()))

	err := f.view.UploadResult(context.Background(), "board.png", "report.txt", "")
	assert.ErrorIs(t, err, pcb_errors.ErrValidation)
	alert, ok := f.notifier.Last()
	require.True(t, ok)
	assert.Equal(t, "Upload failed", alert.Title)
	assert.False(t, f.view.Busy())

	f.view.Unmount()
	assert.ErrorIs(t, f.view.UploadResult(context.Background(), "board.png", "report.xlsx", ""), pcb_errors.ErrViewClosed)
}
