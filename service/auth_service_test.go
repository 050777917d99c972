package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pcbinspect/client/db"
	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/service"
	mock_dao "github.com/pcbinspect/client/test/dao_mock"
	mock_service "github.com/pcbinspect/client/test/service_mock"
	"github.com/pcbinspect/client/util"
)

type authFixture struct {
	dao      *mock_dao.MockIAuthDAO
	jar      *mock_service.MockCookieJar
	store    *db.MemoryStore
	sessions *service.SessionService
	bus      *util.EventBus
	auth     *service.AuthService
}

func newAuthFixture(t *testing.T) *authFixture {
	ctrl := gomock.NewController(t)
	f := &authFixture{
		dao:   mock_dao.NewMockIAuthDAO(ctrl),
		jar:   mock_service.NewMockCookieJar(ctrl),
		store: db.NewMemoryStore(),
		bus:   util.NewEventBus(),
	}
	f.sessions = service.NewSessionService(f.store)
	f.auth = service.NewAuthService(f.dao, f.sessions, f.jar, util.NewValidationUtil(), f.bus)
	return f
}

func TestBootstrapRoute(t *testing.T) {
	ctx := context.Background()

	t.Run("empty store goes to login", func(t *testing.T) {
		f := newAuthFixture(t)
		assert.Equal(t, service.RouteLogin, f.auth.Bootstrap(ctx))
	})

	t.Run("auto login with session goes to tabs", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.sessions.Save(ctx, director, true))
		assert.Equal(t, service.RouteTabs, f.auth.Bootstrap(ctx))
	})

	t.Run("session without auto login goes to login", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.sessions.Save(ctx, director, false))
		assert.Equal(t, service.RouteLogin, f.auth.Bootstrap(ctx))
	})

	t.Run("auto login with null session goes to login", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.store.Set(ctx, db.KeyAutoLogin, "true"))
		require.NoError(t, f.store.Set(ctx, db.KeyUserSession, "null"))
		assert.Equal(t, service.RouteLogin, f.auth.Bootstrap(ctx))
	})
}

func TestLoginStoresSession(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	creds := model.Credentials{Email: "dir@acme.test", Password: "secret"}
	f.dao.EXPECT().Login(gomock.Any(), creds).Return(&director, nil)

	got, err := f.auth.Login(ctx, model.Credentials{Email: "  dir@acme.test ", Password: "secret"}, true)
	require.NoError(t, err)
	assert.Equal(t, director.ID, got.ID)

	stored, err := f.sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, director, *stored)
	assert.Equal(t, service.RouteTabs, f.auth.Bootstrap(ctx))
}

func TestInvalidLoginNeverWritesSession(t *testing.T) {
	ctx := context.Background()

	for name, daoErr := range map[string]error{
		"wrong password": pcb_errors.NewAPIError(401, "wrong password"),
		"no account":     pcb_errors.NewAPIError(404, "account not found"),
	} {
		t.Run(name, func(t *testing.T) {
			f := newAuthFixture(t)
			f.dao.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, daoErr)

			_, err := f.auth.Login(ctx, model.Credentials{Email: "dir@acme.test", Password: "bad"}, true)
			assert.ErrorIs(t, err, pcb_errors.ErrInvalidCredentials)

			_, ok, _ := f.store.Get(ctx, db.KeyUserSession)
			assert.False(t, ok)
			_, ok, _ = f.store.Get(ctx, db.KeyAutoLogin)
			assert.False(t, ok)
			assert.Equal(t, service.RouteLogin, f.auth.Bootstrap(ctx))
		})
	}
}

func TestLoginValidationSkipsNetwork(t *testing.T) {
	f := newAuthFixture(t)
	// no DAO expectations: any call fails the test
	_, err := f.auth.Login(context.Background(), model.Credentials{Email: " ", Password: "x"}, false)
	assert.ErrorIs(t, err, pcb_errors.ErrValidation)
}

func TestLoginNetworkFailure(t *testing.T) {
	f := newAuthFixture(t)
	f.dao.EXPECT().Login(gomock.Any(), gomock.Any()).Return(nil, pcb_errors.ErrNetwork)

	_, err := f.auth.Login(context.Background(), model.Credentials{Email: "a@b.c", Password: "x"}, false)
	assert.ErrorIs(t, err, pcb_errors.ErrNetwork)
	assert.False(t, errors.Is(err, pcb_errors.ErrInvalidCredentials))
}

func TestSignupDefaultsToStaff(t *testing.T) {
	f := newAuthFixture(t)
	f.dao.EXPECT().Signup(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req model.SignupRequest) error {
		assert.Equal(t, model.RoleStaff, req.Role)
		assert.Equal(t, "Acme PCB", req.CorporateName)
		return nil
	})

	err := f.auth.Signup(context.Background(), model.SignupRequest{
		CorporateName: " Acme PCB ", Name: "Sam", Email: "sam@acme.test", Password: "pw",
	})
	require.NoError(t, err)
}

func TestSignupValidation(t *testing.T) {
	f := newAuthFixture(t)
	err := f.auth.Signup(context.Background(), model.SignupRequest{Name: "Sam", Email: "not-an-email", Password: "pw"})
	assert.ErrorIs(t, err, pcb_errors.ErrValidation)
	assert.Contains(t, err.Error(), "corporate_name is required")
	assert.Contains(t, err.Error(), "email must be a valid email address")
}

func TestLogoutClearsEverything(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	require.NoError(t, f.sessions.Save(ctx, director, true))

	var cleared []model.SessionCleared
	f.bus.Subscribe(util.EventSessionCleared, func(_ context.Context, e util.Event) error {
		cleared = append(cleared, e.Payload.(model.SessionCleared))
		return nil
	})

	f.dao.EXPECT().Logout(gomock.Any()).Return(pcb_errors.ErrNetwork)
	f.jar.EXPECT().Reset(gomock.Any()).Return(nil)

	require.NoError(t, f.auth.Logout(ctx))
	f.bus.Wait()

	_, ok, _ := f.store.Get(ctx, db.KeyUserSession)
	assert.False(t, ok)
	_, ok, _ = f.store.Get(ctx, db.KeyAutoLogin)
	assert.False(t, ok)
	assert.Equal(t, service.RouteLogin, f.auth.Bootstrap(ctx))
	require.Len(t, cleared, 1)
	assert.Equal(t, model.SessionCleared{UserID: director.ID, Reason: "logout"}, cleared[0])
}

func TestExpireSessionSkipsServer(t *testing.T) {
	ctx := context.Background()
	f := newAuthFixture(t)
	require.NoError(t, f.sessions.Save(ctx, director, true))
	f.jar.EXPECT().Reset(gomock.Any()).Return(nil)

	require.NoError(t, f.auth.ExpireSession(ctx))
	_, err := f.sessions.Load(ctx)
	assert.ErrorIs(t, err, pcb_errors.ErrSessionNotFound)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("server user_info replaces the session", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.sessions.Save(ctx, director, true))
		fresh := director
		fresh.Name, fresh.DeptName = "Dana K", "QA"
		f.dao.EXPECT().UpdateProfile(gomock.Any(), model.ProfileUpdate{UserID: 7, Name: "Dana K", DeptName: "QA"}).Return(&fresh, nil)

		got, err := f.auth.UpdateProfile(ctx, " Dana K ", "QA")
		require.NoError(t, err)
		assert.Equal(t, fresh, *got)
		stored, _ := f.sessions.Load(ctx)
		assert.Equal(t, fresh, *stored)
	})

	t.Run("success without user_info merges locally", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.sessions.Save(ctx, director, true))
		f.dao.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil, nil)

		got, err := f.auth.UpdateProfile(ctx, "Dana K", "QA")
		require.NoError(t, err)
		assert.Equal(t, "Dana K", got.Name)
		assert.Equal(t, "QA", got.DeptName)
		assert.Equal(t, director.Role, got.Role)
	})

	t.Run("no change leaves the session alone", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.sessions.Save(ctx, director, true))
		f.dao.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(nil, pcb_errors.ErrNoChange)

		_, err := f.auth.UpdateProfile(ctx, "Dana", "")
		assert.ErrorIs(t, err, pcb_errors.ErrNoChange)
		stored, _ := f.sessions.Load(ctx)
		assert.Equal(t, director, *stored)
	})

	t.Run("name is required", func(t *testing.T) {
		f := newAuthFixture(t)
		require.NoError(t, f.sessions.Save(ctx, director, true))

		_, err := f.auth.UpdateProfile(ctx, "  ", "QA")
		assert.ErrorIs(t, err, pcb_errors.ErrValidation)
	})

	t.Run("signed out", func(t *testing.T) {
		f := newAuthFixture(t)
		_, err := f.auth.UpdateProfile(ctx, "Dana", "")
		assert.ErrorIs(t, err, pcb_errors.ErrSessionNotFound)
	})
}
