// dao/member_dao.go
package dao

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
)

type IMemberDAO interface {
	ListMembers(ctx context.Context) ([]model.Member, error)
	UpdateRole(ctx context.Context, update model.RoleUpdate) (string, error)
}

type MemberDAO struct {
	client *Client
}

var _ IMemberDAO = &MemberDAO{}

func NewMemberDAO(client *Client) *MemberDAO {
	return &MemberDAO{client: client}
}

// ListMembers returns the viewer's company members, excluding the viewer.
func (dao *MemberDAO) ListMembers(ctx context.Context) ([]model.Member, error) {
	raw, err := dao.client.doJSON(ctx, http.MethodGet, "/company/members/", nil, nil)
	if err != nil {
		return nil, err
	}
	var members []model.Member
	if err := decodeList(raw, &members); err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateRole returns the server's confirmation message.
func (dao *MemberDAO) UpdateRole(ctx context.Context, update model.RoleUpdate) (string, error) {
	logger.Info("Updating member role",
		zap.Int("targetUserID", update.TargetUserID),
		zap.String("newRole", string(update.NewRole)))

	raw, err := dao.client.doJSON(ctx, http.MethodPost, "/company/members/", nil, update)
	if err != nil {
		return "", err
	}
	env, err := envelope(raw)
	if err != nil {
		return "", err
	}
	return env.Message, nil
}
