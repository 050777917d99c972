// service/session_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/db"
	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

// SessionProvider is what views need to know about the signed-in user.
type SessionProvider interface {
	Load(ctx context.Context) (*model.Session, error)
}

type ISessionService interface {
	SessionProvider
	Save(ctx context.Context, session model.Session, autoLogin bool) error
	Clear(ctx context.Context) error
	AutoLoginEnabled(ctx context.Context) (bool, error)
	UpdateProfile(ctx context.Context, session model.Session) error
}

// SessionService keeps the signed-in user and the auto-login flag in a db.Store.
type SessionService struct {
	store db.Store
}

var _ ISessionService = &SessionService{}

func NewSessionService(store db.Store) *SessionService {
	return &SessionService{store: store}
}

func (s *SessionService) Save(ctx context.Context, session model.Session, autoLogin bool) error {
	if !session.Valid() {
		return fmt.Errorf("%w: session without user id", pcb_errors.ErrInvalidSession)
	}
	if err := s.write(ctx, session); err != nil {
		return err
	}

	flag := "false"
	if autoLogin {
		flag = "true"
	}
	if err := s.store.Set(ctx, db.KeyAutoLogin, flag); err != nil {
		return err
	}

	logger.Info("Session saved", zap.Int("userID", session.ID), zap.Bool("autoLogin", autoLogin))
	return nil
}

// Load returns ErrSessionNotFound when nothing usable is stored.
func (s *SessionService) Load(ctx context.Context) (*model.Session, error) {
	raw, ok, err := s.store.Get(ctx, db.KeyUserSession)
	if err != nil {
		return nil, err
	}
	switch strings.TrimSpace(raw) {
	case "", "null", "undefined":
		ok = false
	}
	if !ok {
		return nil, pcb_errors.ErrSessionNotFound
	}

	var session model.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return nil, fmt.Errorf("%w: %v", pcb_errors.ErrInvalidSession, err)
	}
	if !session.Valid() {
		return nil, pcb_errors.ErrSessionNotFound
	}
	return &session, nil
}

func (s *SessionService) Clear(ctx context.Context) error {
	err := errors.Join(
		s.store.Delete(ctx, db.KeyUserSession),
		s.store.Delete(ctx, db.KeyAutoLogin),
	)
	if err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	logger.Info("Session cleared")
	return nil
}

func (s *SessionService) AutoLoginEnabled(ctx context.Context) (bool, error) {
	raw, ok, err := s.store.Get(ctx, db.KeyAutoLogin)
	if err != nil {
		return false, err
	}
	return ok && raw == "true", nil
}

// UpdateProfile overwrites the stored user and leaves the auto-login flag alone.
func (s *SessionService) UpdateProfile(ctx context.Context, session model.Session) error {
	if !session.Valid() {
		return fmt.Errorf("%w: session without user id", pcb_errors.ErrInvalidSession)
	}
	return s.write(ctx, session)
}

func (s *SessionService) write(ctx context.Context, session model.Session) error {
	blob, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	return s.store.Set(ctx, db.KeyUserSession, string(blob))
}
