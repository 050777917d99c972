// service/auth_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/dao"
	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/util"
)

// Route is where the client lands after bootstrap or an auth action.
type Route string

const (
	RouteLogin Route = "login"
	RouteTabs  Route = "tabs"
)

// CookieJar is the part of the HTTP cookie jar that logout needs.
type CookieJar interface {
	Reset(ctx context.Context) error
}

type IAuthService interface {
	Bootstrap(ctx context.Context) Route
	Login(ctx context.Context, creds model.Credentials, autoLogin bool) (*model.Session, error)
	Signup(ctx context.Context, req model.SignupRequest) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, name, deptName string) (*model.Session, error)
	ExpireSession(ctx context.Context) error
}

type AuthService struct {
	authDAO        dao.IAuthDAO
	sessions       ISessionService
	cookies        CookieJar
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IAuthService = &AuthService{}

func NewAuthService(authDAO dao.IAuthDAO, sessions ISessionService, cookies CookieJar, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *AuthService {
	return &AuthService{
		authDAO:        authDAO,
		sessions:       sessions,
		cookies:        cookies,
		validationUtil: validationUtil,
		eventBus:       eventBus,
	}
}

// Bootstrap goes straight to the tabs only when auto-login is on and a user is stored.
func (s *AuthService) Bootstrap(ctx context.Context) Route {
	auto, err := s.sessions.AutoLoginEnabled(ctx)
	if err != nil {
		logger.Warn("Failed to read auto-login flag", zap.Error(err))
		return RouteLogin
	}
	if !auto {
		return RouteLogin
	}
	if _, err := s.sessions.Load(ctx); err != nil {
		if !errors.Is(err, pcb_errors.ErrSessionNotFound) {
			logger.Warn("Ignoring stored session", zap.Error(err))
		}
		return RouteLogin
	}
	return RouteTabs
}

// Login stores the session only after the server accepted the credentials.
func (s *AuthService) Login(ctx context.Context, creds model.Credentials, autoLogin bool) (*model.Session, error) {
	creds.Email = strings.TrimSpace(creds.Email)
	if err := s.validationUtil.ValidateCredentials(creds); err != nil {
		return nil, err
	}

	session, err := s.authDAO.Login(ctx, creds)
	if err != nil {
		if errors.Is(err, pcb_errors.ErrUnauthorized) || errors.Is(err, pcb_errors.ErrNotFound) {
			logger.Info("Login rejected", zap.String("email", creds.Email), zap.Error(err))
			return nil, pcb_errors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to log in: %w", err)
	}

	if err := s.sessions.Save(ctx, *session, autoLogin); err != nil {
		return nil, fmt.Errorf("failed to store session: %w", err)
	}
	logger.Info("Logged in", zap.Int("userID", session.ID), zap.String("role", string(session.Role)))
	return session, nil
}

func (s *AuthService) Signup(ctx context.Context, req model.SignupRequest) error {
	req.CorporateName = strings.TrimSpace(req.CorporateName)
	req.Name = strings.TrimSpace(req.Name)
	req.DeptName = strings.TrimSpace(req.DeptName)
	req.Email = strings.TrimSpace(req.Email)
	if req.Role == model.RoleNone {
		req.Role = model.RoleStaff
	}
	if err := s.validationUtil.ValidateSignup(req); err != nil {
		return err
	}

	if err := s.authDAO.Signup(ctx, req); err != nil {
		return fmt.Errorf("failed to sign up: %w", err)
	}
	logger.Info("Signed up", zap.String("email", req.Email), zap.String("role", string(req.Role)))
	return nil
}

// Logout always clears local state, even when the server cannot be reached.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.authDAO.Logout(ctx); err != nil {
		logger.Warn("Server logout failed, clearing local session anyway", zap.Error(err))
	}
	return s.clearLocal(ctx, "logout")
}

// ExpireSession drops the local session without telling the server, as an expired cookie would.
func (s *AuthService) ExpireSession(ctx context.Context) error {
	return s.clearLocal(ctx, "expired")
}

func (s *AuthService) clearLocal(ctx context.Context, reason string) error {
	var userID int
	if session, err := s.sessions.Load(ctx); err == nil {
		userID = session.ID
	}

	errs := []error{s.sessions.Clear(ctx)}
	if s.cookies != nil {
		errs = append(errs, s.cookies.Reset(ctx))
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, util.EventSessionCleared, model.SessionCleared{UserID: userID, Reason: reason})
	}
	return nil
}

// UpdateProfile changes the signed-in user's name and department and refreshes the stored session.
func (s *AuthService) UpdateProfile(ctx context.Context, name, deptName string) (*model.Session, error) {
	session, err := s.sessions.Load(ctx)
	if err != nil {
		return nil, err
	}

	update := model.ProfileUpdate{
		UserID:   session.ID,
		Name:     strings.TrimSpace(name),
		DeptName: strings.TrimSpace(deptName),
	}
	if err := s.validationUtil.ValidateProfileUpdate(update); err != nil {
		return nil, err
	}

	info, err := s.authDAO.UpdateProfile(ctx, update)
	if err != nil {
		if errors.Is(err, pcb_errors.ErrNoChange) {
			return session, err
		}
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	updated := *session
	if info != nil && info.Valid() {
		updated = *info
	} else {
		updated.Name = update.Name
		updated.DeptName = update.DeptName
	}
	if err := s.sessions.UpdateProfile(ctx, updated); err != nil {
		return nil, err
	}
	logger.Info("Profile updated", zap.Int("userID", updated.ID))
	return &updated, nil
}
