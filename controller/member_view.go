// controller/member_view.go
package controller

import (
	"context"
	"fmt"

	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	pdp_model "github.com/pcbinspect/client/pdp/model"
	"github.com/pcbinspect/client/service"
	"github.com/pcbinspect/client/util"
)

// MemberListView is the member tab: the viewer's colleagues and their roles.
type MemberListView struct {
	view
	members service.IMemberService

	items []model.Member
}

func NewMemberListView(members service.IMemberService, sessions service.SessionProvider, evaluator *engine.PolicyEvaluator, notifier util.Notifier) *MemberListView {
	return &MemberListView{view: newView(sessions, evaluator, notifier), members: members}
}

// Mount refuses viewers who cannot see the member tab, without a request.
func (v *MemberListView) Mount(ctx context.Context) error {
	v.mount(ctx)
	if !v.Gate().Visible(pdp_model.AffordanceMemberTab) {
		return fmt.Errorf("%w: member tab is hidden for role %q", pcb_errors.ErrForbidden, v.Gate().Role())
	}
	return v.Refresh(ctx)
}

func (v *MemberListView) Refresh(ctx context.Context) error {
	ctx, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	items, err := v.members.ListMembers(ctx)
	if err := v.finish("Failed to load members", err); err != nil {
		return err
	}
	v.mu.Lock()
	v.items = items
	v.mu.Unlock()
	return nil
}

func (v *MemberListView) Members() []model.Member {
	v.mu.Lock()
	defer v.mu.Unlock()
	return append([]model.Member(nil), v.items...)
}

func (v *MemberListView) CanEditRole() bool {
	return v.Gate().Visible(pdp_model.AffordanceEditMemberRole)
}

// RoleChoices are the roles offered by the picker.
func (v *MemberListView) RoleChoices() []model.Role {
	return append([]model.Role(nil), model.Roles...)
}

func (v *MemberListView) SetRole(ctx context.Context, userID int, role model.Role) error {
	if !v.CanEditRole() {
		return pcb_errors.ErrForbidden
	}
	scoped, cancel, err := v.scope(ctx)
	if err != nil {
		return err
	}
	defer cancel()
	release, err := v.acquire()
	if err != nil {
		return err
	}

	msg, err := v.members.UpdateRole(scoped, v.actor(), userID, role)
	release()
	if err := v.finish("Role change failed", err); err != nil {
		return err
	}
	if msg == "" {
		msg = fmt.Sprintf("Role changed to %s.", role)
	}
	v.notifier.Alert("Role updated", msg)
	return v.Refresh(ctx)
}
