// dao/auth_dao.go
package dao

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

type IAuthDAO interface {
	Login(ctx context.Context, creds model.Credentials) (*model.Session, error)
	Signup(ctx context.Context, req model.SignupRequest) error
	Logout(ctx context.Context) error
	UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.Session, error)
}

type AuthDAO struct {
	client *Client
}

var _ IAuthDAO = &AuthDAO{}

func NewAuthDAO(client *Client) *AuthDAO {
	return &AuthDAO{client: client}
}

func (dao *AuthDAO) Login(ctx context.Context, creds model.Credentials) (*model.Session, error) {
	logger.Info("Logging in", zap.String("email", creds.Email))

	raw, err := dao.client.doJSON(ctx, http.MethodPost, "/login/", nil, creds)
	if err != nil {
		return nil, err
	}
	env, err := envelope(raw)
	if err != nil {
		return nil, err
	}
	if env.UserInfo == nil || !env.UserInfo.Valid() {
		return nil, fmt.Errorf("%w: login response without user_info", pcb_errors.ErrServer)
	}
	return env.UserInfo, nil
}

func (dao *AuthDAO) Signup(ctx context.Context, req model.SignupRequest) error {
	logger.Info("Signing up", zap.String("email", req.Email), zap.String("corporateName", req.CorporateName))

	raw, err := dao.client.doJSON(ctx, http.MethodPost, "/signup/", nil, req)
	if err != nil {
		return err
	}
	_, err = envelope(raw)
	return err
}

func (dao *AuthDAO) Logout(ctx context.Context) error {
	_, err := dao.client.doJSON(ctx, http.MethodPost, "/logout/", nil, struct{}{})
	return err
}

// UpdateProfile returns the refreshed user_info when the server sends one, or
// ErrNoChange when nothing was modified.
func (dao *AuthDAO) UpdateProfile(ctx context.Context, update model.ProfileUpdate) (*model.Session, error) {
	raw, err := dao.client.doJSON(ctx, http.MethodPost, "/update-profile/", nil, update)
	if err != nil {
		return nil, err
	}
	env, err := envelope(raw)
	if err != nil {
		return nil, err
	}
	if env.Status == model.EnvelopeNoChange {
		return nil, pcb_errors.ErrNoChange
	}
	return env.UserInfo, nil
}
