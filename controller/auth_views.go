// controller/auth_views.go
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

// LoginView is the sign-in form.
type LoginView struct {
	auth     service.IAuthService
	notifier util.Notifier
}

func NewLoginView(auth service.IAuthService, notifier util.Notifier) *LoginView {
	return &LoginView{auth: auth, notifier: notifier}
}

// Submit returns the route to show next. Any failure stays on the login route.
func (v *LoginView) Submit(ctx context.Context, email, password string, autoLogin bool) (service.Route, error) {
	_, err := v.auth.Login(ctx, model.Credentials{Email: email, Password: password}, autoLogin)
	switch {
	case err == nil:
		return service.RouteTabs, nil
	case errors.Is(err, pcb_errors.ErrValidation):
		v.notifier.Alert("Missing input", "Enter your email and password.")
	case errors.Is(err, pcb_errors.ErrInvalidCredentials):
		v.notifier.Alert("Login failed", "Check your email or password.")
	default:
		v.notifier.Alert("Login failed", pcb_errors.Message(err))
	}
	return service.RouteLogin, err
}

// SignupView is the company registration form.
type SignupView struct {
	auth     service.IAuthService
	notifier util.Notifier
}

func NewSignupView(auth service.IAuthService, notifier util.Notifier) *SignupView {
	return &SignupView{auth: auth, notifier: notifier}
}

func (v *SignupView) Submit(ctx context.Context, req model.SignupRequest) error {
	err := v.auth.Signup(ctx, req)
	switch {
	case err == nil:
		v.notifier.Alert("Signup complete", "You can now log in.")
	case errors.Is(err, pcb_errors.ErrValidation):
		v.notifier.Alert("Missing input", pcb_errors.Message(err))
	default:
		v.notifier.Alert("Signup failed", pcb_errors.Message(err))
	}
	return err
}

// ProfileView shows the signed-in user and edits name and department.
type ProfileView struct {
	view
	auth service.IAuthService
}

func NewProfileView(auth service.IAuthService, sessions service.SessionProvider, evaluator *engine.PolicyEvaluator, notifier util.Notifier) *ProfileView {
	return &ProfileView{view: newView(sessions, evaluator, notifier), auth: auth}
}

func (v *ProfileView) Mount(ctx context.Context) error {
	v.mount(ctx)
	if v.Session() == nil {
		return pcb_errors.ErrSessionNotFound
	}
	return nil
}

func (v *ProfileView) CanEdit() bool {
	return v.Gate().Visible(pdp_model.AffordanceEditProfile)
}

// Save reports "no change" as success without touching the stored session.
func (v *ProfileView) Save(ctx context.Context, name, deptName string) error {
	if !v.CanEdit() {
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

	updated, err := v.auth.UpdateProfile(ctx, name, deptName)
	switch {
	case v.closed():
		return pcb_errors.ErrViewClosed
	case errors.Is(err, pcb_errors.ErrNoChange):
		v.notifier.Alert("No changes", "Nothing was modified.")
		return nil
	case errors.Is(err, pcb_errors.ErrValidation):
		v.notifier.Alert("Missing input", "Name is required.")
		return err
	case err != nil:
		v.alert("Profile update failed", err)
		return err
	}

	v.mu.Lock()
	v.session = updated
	v.mu.Unlock()
	v.notifier.Alert("Profile updated", "Your profile was saved.")
	return nil
}

// Logout always ends on the login route.
func (v *ProfileView) Logout(ctx context.Context) service.Route {
	if err := v.auth.Logout(ctx); err != nil {
		v.alert("Logout failed", err)
	}
	v.mu.Lock()
	v.session = nil
	v.gate = engine.NewRoleGate(v.evaluator, nil)
	v.mu.Unlock()
	return service.RouteLogin
}
