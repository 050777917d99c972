package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pcbinspect/client/db"
	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/service"
	pcb_mock "github.com/pcbinspect/client/test/mock"
)

var director = model.Session{ID: 7, Email: "dir@acme.test", Name: "Dana", Role: model.RoleDirector, CompanyName: "Acme PCB"}

func TestSessionSaveLoad(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	sessions := service.NewSessionService(store)

	require.NoError(t, sessions.Save(ctx, director, true))

	got, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, director, *got)
	assert.Equal(t, model.RoleDirector, got.EffectiveRole())

	auto, err := sessions.AutoLoginEnabled(ctx)
	require.NoError(t, err)
	assert.True(t, auto)

	// Load has no side effects
	again, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, got, again)

	require.NoError(t, sessions.Save(ctx, director, false))
	auto, err = sessions.AutoLoginEnabled(ctx)
	require.NoError(t, err)
	assert.False(t, auto)
	flag, _, _ := store.Get(ctx, db.KeyAutoLogin)
	assert.Equal(t, "false", flag)
}

func TestSessionLoadAbsent(t *testing.T) {
	ctx := context.Background()

	for _, blob := range []string{"", "null", "undefined", `{"id":0,"role":"DIRECTOR"}`, `{"name":"no id"}`} {
		store := db.NewMemoryStore()
		require.NoError(t, store.Set(ctx, db.KeyUserSession, blob))
		sessions := service.NewSessionService(store)

		_, err := sessions.Load(ctx)
		assert.ErrorIs(t, err, pcb_errors.ErrSessionNotFound, "blob %q", blob)
	}

	_, err := service.NewSessionService(db.NewMemoryStore()).Load(ctx)
	assert.ErrorIs(t, err, pcb_errors.ErrSessionNotFound)
}

func TestSessionRoleFailsClosed(t *testing.T) {
	ctx := context.Background()

	store := db.NewMemoryStore()
	require.NoError(t, store.Set(ctx, db.KeyUserSession, `{not json`))
	_, err := service.NewSessionService(store).Load(ctx)
	assert.ErrorIs(t, err, pcb_errors.ErrInvalidSession)

	for name, blob := range map[string]string{
		"unknown role": `{"id":3,"role":"ADMIN"}`,
		"empty role":   `{"id":3,"role":""}`,
	} {
		t.Run(name, func(t *testing.T) {
			store := db.NewMemoryStore()
			require.NoError(t, store.Set(ctx, db.KeyUserSession, blob))
			session, err := service.NewSessionService(store).Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, model.RoleNone, session.EffectiveRole())
			assert.False(t, session.EffectiveRole().IsAdmin())
		})
	}
}

func TestSessionSaveRejectsAnonymous(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	sessions := service.NewSessionService(store)

	err := sessions.Save(ctx, model.Session{Name: "nobody"}, true)
	assert.ErrorIs(t, err, pcb_errors.ErrInvalidSession)

	_, ok, _ := store.Get(ctx, db.KeyUserSession)
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, db.KeyAutoLogin)
	assert.False(t, ok)
}

func TestSessionClear(t *testing.T) {
	ctx := context.Background()
	store := db.NewMemoryStore()
	sessions := service.NewSessionService(store)
	require.NoError(t, sessions.Save(ctx, director, true))

	require.NoError(t, sessions.Clear(ctx))

	_, ok, _ := store.Get(ctx, db.KeyUserSession)
	assert.False(t, ok)
	_, ok, _ = store.Get(ctx, db.KeyAutoLogin)
	assert.False(t, ok)
	_, err := sessions.Load(ctx)
	assert.ErrorIs(t, err, pcb_errors.ErrSessionNotFound)
}

func TestSessionUpdateProfileKeepsAutoLogin(t *testing.T) {
	ctx := context.Background()
	sessions := service.NewSessionService(db.NewMemoryStore())
	require.NoError(t, sessions.Save(ctx, director, true))

	renamed := director
	renamed.Name = "Dana K"
	require.NoError(t, sessions.UpdateProfile(ctx, renamed))

	got, err := sessions.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Dana K", got.Name)
	auto, _ := sessions.AutoLoginEnabled(ctx)
	assert.True(t, auto)
}

func TestSessionStorageFailure(t *testing.T) {
	ctx := context.Background()
	store := new(pcb_mock.MockStore)
	store.On("Get", mock.Anything, db.KeyUserSession).Return("", false, pcb_errors.ErrStorage)
	store.On("Delete", mock.Anything, db.KeyUserSession).Return(nil)
	store.On("Delete", mock.Anything, db.KeyAutoLogin).Return(pcb_errors.ErrStorage)

	sessions := service.NewSessionService(store)

	_, err := sessions.Load(ctx)
	assert.ErrorIs(t, err, pcb_errors.ErrStorage)
	assert.ErrorIs(t, sessions.Clear(ctx), pcb_errors.ErrStorage)

	store.AssertExpectations(t)
}
