package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/service"
	mock_dao "github.com/pcbinspect/client/test/dao_mock"
	"github.com/pcbinspect/client/util"
)

func TestUpdateRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberDAO := mock_dao.NewMockIMemberDAO(ctrl)
	bus := util.NewEventBus()
	log := &eventLog{}
	bus.Subscribe(util.EventMemberRoleChanged, log.record)
	members := service.NewMemberService(memberDAO, util.NewValidationUtil(), bus)
	actor := model.Actor{ID: 1, Role: model.RoleDirector}

	memberDAO.EXPECT().UpdateRole(gomock.Any(), model.RoleUpdate{TargetUserID: 5, NewRole: model.RoleManager}).Return("role updated", nil)

	msg, err := members.UpdateRole(context.Background(), actor, 5, model.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, "role updated", msg)

	bus.Wait()
	events := log.all()
	require.Len(t, events, 1)
	assert.Equal(t, model.MemberRoleChanged{Actor: actor, TargetUserID: 5, NewRole: model.RoleManager}, events[0].Payload)
}

func TestUpdateRoleRejectsBadInput(t *testing.T) {
	ctrl := gomock.NewController(t)
	members := service.NewMemberService(mock_dao.NewMockIMemberDAO(ctrl), util.NewValidationUtil(), nil)
	ctx := context.Background()

	_, err := members.UpdateRole(ctx, model.Actor{ID: 2, Role: model.RoleStaff}, 5, model.RoleDirector)
	assert.ErrorIs(t, err, pcb_errors.ErrForbidden)

	_, err = members.UpdateRole(ctx, model.Actor{ID: 1, Role: model.RoleDirector}, 5, model.Role("OWNER"))
	assert.ErrorIs(t, err, pcb_errors.ErrValidation)

	_, err = members.UpdateRole(ctx, model.Actor{ID: 1, Role: model.RoleDirector}, 0, model.RoleStaff)
	assert.ErrorIs(t, err, pcb_errors.ErrValidation)
}

func TestListMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	memberDAO := mock_dao.NewMockIMemberDAO(ctrl)
	members := service.NewMemberService(memberDAO, util.NewValidationUtil(), nil)
	memberDAO.EXPECT().ListMembers(gomock.Any()).Return(nil, pcb_errors.ErrNetwork)

	_, err := members.ListMembers(context.Background())
	assert.ErrorIs(t, err, pcb_errors.ErrNetwork)
}
