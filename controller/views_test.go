package controller_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pcbinspect/client/controller"
	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/service"
	mock_service "github.com/pcbinspect/client/test/service_mock"
	"github.com/pcbinspect/client/util"
)

func TestHomeView_Tabs(t *testing.T) {
	ctrl := setup(t)
	for _, viewer := range []*model.Session{director, manager} {
		v := controller.NewHomeView(sessionFor(ctrl, viewer), evaluator(), util.NewRecordingNotifier())
		require.NoError(t, v.Mount(context.Background()))
		assert.Equal(t, []string{"home", "detect", "records", "members", "profile"}, v.Tabs())
	}
	for name, viewer := range nonAdmins {
		t.Run(name, func(t *testing.T) {
			v := controller.NewHomeView(sessionFor(ctrl, viewer), evaluator(), util.NewRecordingNotifier())
			_ = v.Mount(context.Background())
			assert.NotContains(t, v.Tabs(), controller.TabMembers)
		})
	}
}

func TestHomeView_CorruptSessionIsSignedOut(t *testing.T) {
	ctrl := setup(t)
	v := controller.NewHomeView(sessionFor(ctrl, corrupt), evaluator(), util.NewRecordingNotifier())

	assert.ErrorIs(t, v.Mount(context.Background()), pcb_errors.ErrSessionNotFound)
	assert.Nil(t, v.Session())
	assert.False(t, v.Gate().IsAdmin())
	assert.Equal(t, model.RoleNone, v.Summary().Role)
	assert.Equal(t, []string{"home", "detect", "records", "profile"}, v.Tabs())
}

func TestHomeView_Summary(t *testing.T) {
	ctrl := setup(t)

	v := controller.NewHomeView(sessionFor(ctrl, manager), evaluator(), util.NewRecordingNotifier())
	require.NoError(t, v.Mount(context.Background()))
	assert.Equal(t, controller.HomeSummary{Name: "Max", Company: "Acme PCB", Dept: "not set", Role: model.RoleManager}, v.Summary())

	out := controller.NewHomeView(sessionFor(ctrl, nil), evaluator(), util.NewRecordingNotifier())
	assert.ErrorIs(t, out.Mount(context.Background()), pcb_errors.ErrSessionNotFound)
	assert.Equal(t, "not set", out.Summary().Name)
}

func TestLoginView_Submit(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantRoute service.Route
		wantTitle string
		wantMsg   string
	}{
		{name: "success", wantRoute: service.RouteTabs},
		{name: "wrong password", err: pcb_errors.ErrInvalidCredentials, wantRoute: service.RouteLogin, wantTitle: "Login failed", wantMsg: "Check your email or password."},
		{name: "empty field", err: fmt.Errorf("%w: email is required", pcb_errors.ErrValidation), wantRoute: service.RouteLogin, wantTitle: "Missing input"},
		{name: "backend down", err: pcb_errors.ErrNetwork, wantRoute: service.RouteLogin, wantTitle: "Login failed", wantMsg: "network unreachable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := setup(t)
			auth := mock_service.NewMockIAuthService(ctrl)
			notifier := util.NewRecordingNotifier()
			auth.EXPECT().
				Login(gomock.Any(), model.Credentials{Email: "dir@acme.test", Password: "pw"}, true).
				Return(director, tt.err)

			route, err := controller.NewLoginView(auth, notifier).Submit(context.Background(), "dir@acme.test", "pw", true)
			assert.Equal(t, tt.wantRoute, route)
			if tt.err == nil {
				assert.NoError(t, err)
				assert.Empty(t, notifier.Alerts())
				return
			}
			assert.ErrorIs(t, err, tt.err)
			alert, ok := notifier.Last()
			require.True(t, ok)
			assert.Equal(t, tt.wantTitle, alert.Title)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, alert.Message)
			}
		})
	}
}

func TestSignupView_Submit(t *testing.T) {
	ctrl := setup(t)
	auth := mock_service.NewMockIAuthService(ctrl)
	notifier := util.NewRecordingNotifier()
	req := model.SignupRequest{CorporateName: "Acme PCB", Name: "Dana", Email: "dir@acme.test", Password: "pw"}

	auth.EXPECT().Signup(gomock.Any(), req).Return(nil)
	require.NoError(t, controller.NewSignupView(auth, notifier).Submit(context.Background(), req))
	alert, _ := notifier.Last()
	assert.Equal(t, "Signup complete", alert.Title)

	auth.EXPECT().Signup(gomock.Any(), req).Return(pcb_errors.NewAPIError(400, "email already registered"))
	assert.Error(t, controller.NewSignupView(auth, notifier).Submit(context.Background(), req))
	alert, _ = notifier.Last()
	assert.Equal(t, alert, util.Alert{Title: "Signup failed", Message: "email already registered"})
}

func TestProfileView(t *testing.T) {
	ctrl := setup(t)
	auth := mock_service.NewMockIAuthService(ctrl)
	notifier := util.NewRecordingNotifier()
	v := controller.NewProfileView(auth, sessionFor(ctrl, staff), evaluator(), notifier)
	ctx := context.Background()
	require.NoError(t, v.Mount(ctx))
	assert.True(t, v.CanEdit())

	t.Run("no change is not an error", func(t *testing.T) {
		auth.EXPECT().UpdateProfile(gomock.Any(), "Sam", "").Return(staff, pcb_errors.ErrNoChange)
		require.NoError(t, v.Save(ctx, "Sam", ""))
		alert, _ := notifier.Last()
		assert.Equal(t, "No changes", alert.Title)
		assert.Equal(t, "Sam", v.Session().Name)
	})

	t.Run("saved profile replaces the shown session", func(t *testing.T) {
		updated := *staff
		updated.Name, updated.DeptName = "Samuel", "Line 2"
		auth.EXPECT().UpdateProfile(gomock.Any(), "Samuel", "Line 2").Return(&updated, nil)
		require.NoError(t, v.Save(ctx, "Samuel", "Line 2"))
		assert.Equal(t, "Samuel", v.Session().Name)
		assert.Equal(t, "Line 2", v.Session().DeptName)
	})

	t.Run("logout always routes to login", func(t *testing.T) {
		auth.EXPECT().Logout(gomock.Any()).Return(pcb_errors.ErrNetwork)
		assert.Equal(t, service.RouteLogin, v.Logout(ctx))
		assert.Nil(t, v.Session())
		assert.False(t, v.CanEdit())
	})
}

func TestProjectListView_AdminControls(t *testing.T) {
	ctrl := setup(t)
	projects := mock_service.NewMockIProjectService(ctrl)
	projects.EXPECT().ListProjects(gomock.Any()).Return([]model.Project{{ID: 1}, {ID: 2}}, nil).AnyTimes()

	for name, viewer := range nonAdmins {
		t.Run(name, func(t *testing.T) {
			v := controller.NewProjectListView(projects, sessionFor(ctrl, viewer), evaluator(), util.NewRecordingNotifier())
			require.NoError(t, v.Mount(context.Background()))
			assert.False(t, v.CanDelete())
			assert.ErrorIs(t, v.Delete(context.Background(), 1), pcb_errors.ErrForbidden)
			assert.Len(t, v.Projects(), 2)
		})
	}

	t.Run("director deletes", func(t *testing.T) {
		notifier := util.NewRecordingNotifier()
		v := controller.NewProjectListView(projects, sessionFor(ctrl, director), evaluator(), notifier)
		require.NoError(t, v.Mount(context.Background()))
		require.True(t, v.CanDelete())

		projects.EXPECT().DeleteProject(gomock.Any(), model.Actor{ID: director.ID, Role: model.RoleDirector}, 1).Return(nil)
		require.NoError(t, v.Delete(context.Background(), 1))
		_, ok := v.Project(1)
		assert.False(t, ok)
		alert, _ := notifier.Last()
		assert.Equal(t, "Project deleted", alert.Title)
	})
}

func TestProjectListView_Create(t *testing.T) {
	ctrl := setup(t)
	projects := mock_service.NewMockIProjectService(ctrl)
	notifier := util.NewRecordingNotifier()
	gomock.InOrder(
		projects.EXPECT().ListProjects(gomock.Any()).Return(nil, nil),
		projects.EXPECT().CreateProject(gomock.Any(), "  ").Return(fmt.Errorf("%w: model name is required", pcb_errors.ErrValidation)),
		projects.EXPECT().CreateProject(gomock.Any(), "MB-100").Return(nil),
		projects.EXPECT().ListProjects(gomock.Any()).Return([]model.Project{{ID: 1, ModelName: "MB-100"}}, nil),
	)

	v := controller.NewProjectListView(projects, sessionFor(ctrl, staff), evaluator(), notifier)
	require.NoError(t, v.Mount(context.Background()))

	assert.ErrorIs(t, v.Create(context.Background(), "  "), pcb_errors.ErrValidation)
	alert, _ := notifier.Last()
	assert.Equal(t, util.Alert{Title: "Missing input", Message: "Enter a model name."}, alert)
	assert.Empty(t, v.Projects())

	require.NoError(t, v.Create(context.Background(), "MB-100"))
	assert.Len(t, v.Projects(), 1)
}

func TestCommentThreadView_DeleteOnlyOwn(t *testing.T) {
	ctrl := setup(t)
	comments := mock_service.NewMockICommentService(ctrl)
	parent := 100
	thread := []model.Comment{
		{ID: 100, Material: 7, Author: staff.ID, Content: "solder bridge on U3", Replies: []model.Comment{
			{ID: 101, Material: 7, Author: director.ID, Parent: &parent, Content: "confirmed"},
		}},
		{ID: 102, Material: 7, Author: manager.ID, Content: "re-run detection"},
	}
	comments.EXPECT().ListComments(gomock.Any(), 7).Return(thread, nil).AnyTimes()

	v := controller.NewCommentThreadView(7, comments, sessionFor(ctrl, staff), evaluator(), util.NewRecordingNotifier())
	require.NoError(t, v.Mount(context.Background()))

	assert.True(t, v.CanDelete(thread[0]))
	assert.False(t, v.CanDelete(thread[0].Replies[0]))
	assert.False(t, v.CanDelete(thread[1]))
	assert.ErrorIs(t, v.Delete(context.Background(), 101), pcb_errors.ErrForbidden)
	assert.ErrorIs(t, v.Delete(context.Background(), 999), pcb_errors.ErrNotFound)

	comments.EXPECT().DeleteComment(gomock.Any(), 100).Return(nil)
	assert.NoError(t, v.Delete(context.Background(), 100))

	anon := controller.NewCommentThreadView(7, comments, sessionFor(ctrl, nil), evaluator(), util.NewRecordingNotifier())
	require.NoError(t, anon.Mount(context.Background()))
	assert.False(t, anon.CanDelete(model.Comment{ID: 103}))
}

func TestCommentThreadView_Reply(t *testing.T) {
	ctrl := setup(t)
	comments := mock_service.NewMockICommentService(ctrl)
	parent := 100
	thread := []model.Comment{
		{ID: 100, Material: 7, Author: staff.ID, Replies: []model.Comment{{ID: 101, Material: 7, Parent: &parent}}},
	}
	comments.EXPECT().ListComments(gomock.Any(), 7).Return(thread, nil).AnyTimes()

	v := controller.NewCommentThreadView(7, comments, sessionFor(ctrl, director), evaluator(), util.NewRecordingNotifier())
	require.NoError(t, v.Mount(context.Background()))

	assert.ErrorIs(t, v.Reply(context.Background(), 101, "nested"), pcb_errors.ErrValidation)

	comments.EXPECT().AddComment(gomock.Any(), 7, &parent, "agreed").Return(&model.Comment{ID: 104}, nil)
	assert.NoError(t, v.Reply(context.Background(), 100, "agreed"))
}

func TestMemberListView(t *testing.T) {
	for name, viewer := range nonAdmins {
		t.Run(name, func(t *testing.T) {
			ctrl := setup(t)
			members := mock_service.NewMockIMemberService(ctrl)
			v := controller.NewMemberListView(members, sessionFor(ctrl, viewer), evaluator(), util.NewRecordingNotifier())
			assert.ErrorIs(t, v.Mount(context.Background()), pcb_errors.ErrForbidden)
			assert.False(t, v.CanEditRole())
		})
	}

	t.Run("director changes a role", func(t *testing.T) {
		ctrl := setup(t)
		members := mock_service.NewMockIMemberService(ctrl)
		notifier := util.NewRecordingNotifier()
		list := []model.Member{{ID: 3, Name: "Sam", Role: model.RoleStaff}}
		members.EXPECT().ListMembers(gomock.Any()).Return(list, nil).Times(2)
		members.EXPECT().
			UpdateRole(gomock.Any(), model.Actor{ID: director.ID, Role: model.RoleDirector}, 3, model.RoleManager).
			Return("role updated", nil)

		v := controller.NewMemberListView(members, sessionFor(ctrl, director), evaluator(), notifier)
		require.NoError(t, v.Mount(context.Background()))
		assert.Equal(t, list, v.Members())
		assert.Equal(t, []model.Role{model.RoleDirector, model.RoleManager, model.RoleStaff}, v.RoleChoices())

		require.NoError(t, v.SetRole(context.Background(), 3, model.RoleManager))
		alert, _ := notifier.Last()
		assert.Equal(t, util.Alert{Title: "Role updated", Message: "role updated"}, alert)
	})
}

func TestDetectView(t *testing.T) {
	ctrl := setup(t)
	detection := mock_service.NewMockIDetectionService(ctrl)
	materials := mock_service.NewMockIMaterialService(ctrl)
	notifier := util.NewRecordingNotifier()
	v := controller.NewDetectView(detection, materials, sessionFor(ctrl, staff), evaluator(), notifier)
	ctx := context.Background()
	require.NoError(t, v.Mount(ctx))

	assert.ErrorIs(t, v.Upload(ctx, 10, "perf.xlsx", ""), pcb_errors.ErrValidation)
	assert.ErrorIs(t, v.SaveResult("out.jpg"), pcb_errors.ErrValidation)

	result := &model.DetectionResult{
		ResultImage: "data:image/jpeg;base64,/9j/",
		Detections:  []model.Detection{{DisplayID: 1, Name: "short", Confidence: 0.91}},
	}
	detection.EXPECT().Detect(gomock.Any(), "board.jpg").Return(result, nil)
	got, err := v.Detect(ctx, "board.jpg")
	require.NoError(t, err)
	assert.Equal(t, result, got)

	detection.EXPECT().SaveResultImage(result, "out.jpg").Return(nil)
	require.NoError(t, v.SaveResult("out.jpg"))

	materials.EXPECT().UploadResult(gomock.Any(), 10, result.ResultImage, "perf.xlsx", "line 2").Return(nil)
	require.NoError(t, v.Upload(ctx, 10, "perf.xlsx", "line 2"))
	alert, _ := notifier.Last()
	assert.Equal(t, "Saved", alert.Title)
}

func TestViewClosedAfterUnmount(t *testing.T) {
	ctrl := setup(t)
	projects := mock_service.NewMockIProjectService(ctrl)
	projects.EXPECT().ListProjects(gomock.Any()).Return(nil, nil)

	v := controller.NewProjectListView(projects, sessionFor(ctrl, director), evaluator(), util.NewRecordingNotifier())
	require.NoError(t, v.Mount(context.Background()))
	v.Unmount()

	assert.ErrorIs(t, v.Refresh(context.Background()), pcb_errors.ErrViewClosed)
	assert.ErrorIs(t, v.Create(context.Background(), "MB-200"), pcb_errors.ErrViewClosed)
}
