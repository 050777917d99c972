// service/member_service.go
package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pcbinspect/client/dao"
	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/util"
)

type IMemberService interface {
	ListMembers(ctx context.Context) ([]model.Member, error)
	UpdateRole(ctx context.Context, actor model.Actor, targetUserID int, role model.Role) (string, error)
}

type MemberService struct {
	memberDAO      dao.IMemberDAO
	validationUtil *util.ValidationUtil
	eventBus       *util.EventBus
}

var _ IMemberService = &MemberService{}

func NewMemberService(memberDAO dao.IMemberDAO, validationUtil *util.ValidationUtil, eventBus *util.EventBus) *MemberService {
	return &MemberService{memberDAO: memberDAO, validationUtil: validationUtil, eventBus: eventBus}
}

func (s *MemberService) ListMembers(ctx context.Context) ([]model.Member, error) {
	members, err := s.memberDAO.ListMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return members, nil
}

// UpdateRole returns the server's confirmation message.
func (s *MemberService) UpdateRole(ctx context.Context, actor model.Actor, targetUserID int, role model.Role) (string, error) {
	if !actor.Role.IsAdmin() {
		return "", fmt.Errorf("%w: role %q cannot change member roles", pcb_errors.ErrForbidden, actor.Role)
	}
	update := model.RoleUpdate{TargetUserID: targetUserID, NewRole: role}
	if err := s.validationUtil.ValidateRoleUpdate(update); err != nil {
		return "", err
	}

	msg, err := s.memberDAO.UpdateRole(ctx, update)
	if err != nil {
		return "", fmt.Errorf("failed to update role: %w", err)
	}

	if s.eventBus != nil {
		s.eventBus.Publish(ctx, util.EventMemberRoleChanged, model.MemberRoleChanged{Actor: actor, TargetUserID: targetUserID, NewRole: role})
	}
	logger.Info("Member role updated", zap.Int("targetUserID", targetUserID), zap.String("newRole", string(role)))
	return msg, nil
}
