package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	pdp_model "github.com/pcbinspect/client/pdp/model"
)

func newGate(session *model.Session) *engine.RoleGate {
	return engine.NewRoleGate(engine.NewPolicyEvaluator(engine.DefaultPolicies()), session)
}

func TestRoleGate_DecisionTable(t *testing.T) {
	logger.InitNop()

	tests := []struct {
		name    string
		session *model.Session
		want    map[pdp_model.Affordance]bool
		admin   bool
	}{
		{
			name:    "Director",
			session: &model.Session{ID: 1, Role: model.RoleDirector},
			admin:   true,
			want: map[pdp_model.Affordance]bool{
				pdp_model.AffordanceMemberTab:      true,
				pdp_model.AffordanceApproveReject:  true,
				pdp_model.AffordanceDeleteProject:  true,
				pdp_model.AffordanceEditProfile:    true,
				pdp_model.AffordanceEditMemberRole: true,
			},
		},
		{
			name:    "Manager",
			session: &model.Session{ID: 2, Role: model.RoleManager},
			admin:   true,
			want: map[pdp_model.Affordance]bool{
				pdp_model.AffordanceMemberTab:      true,
				pdp_model.AffordanceApproveReject:  true,
				pdp_model.AffordanceDeleteProject:  true,
				pdp_model.AffordanceEditProfile:    true,
				pdp_model.AffordanceEditMemberRole: true,
			},
		},
		{
			name:    "Staff",
			session: &model.Session{ID: 3, Role: model.RoleStaff},
			want: map[pdp_model.Affordance]bool{
				pdp_model.AffordanceMemberTab:      false,
				pdp_model.AffordanceApproveReject:  false,
				pdp_model.AffordanceDeleteProject:  false,
				pdp_model.AffordanceEditProfile:    true,
				pdp_model.AffordanceEditMemberRole: false,
			},
		},
		{
			name:    "LowercaseRoleIsNormalised",
			session: &model.Session{ID: 4, Role: "director"},
			admin:   true,
			want: map[pdp_model.Affordance]bool{
				pdp_model.AffordanceMemberTab:      true,
				pdp_model.AffordanceApproveReject:  true,
				pdp_model.AffordanceDeleteProject:  true,
				pdp_model.AffordanceEditProfile:    true,
				pdp_model.AffordanceEditMemberRole: true,
			},
		},
	}

	hidden := map[pdp_model.Affordance]bool{
		pdp_model.AffordanceMemberTab:      false,
		pdp_model.AffordanceApproveReject:  false,
		pdp_model.AffordanceDeleteProject:  false,
		pdp_model.AffordanceEditProfile:    false,
		pdp_model.AffordanceEditMemberRole: false,
	}
	for _, s := range []struct {
		name    string
		session *model.Session
	}{
		{"NoSession", nil},
		{"UnknownRole", &model.Session{ID: 5, Role: "INTERN"}},
		{"EmptyRole", &model.Session{ID: 6}},
		{"ZeroID", &model.Session{Role: model.RoleDirector}},
	} {
		tests = append(tests, struct {
			name    string
			session *model.Session
			want    map[pdp_model.Affordance]bool
			admin   bool
		}{s.name, s.session, hidden, false})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate := newGate(tt.session)
			assert.Equal(t, tt.admin, gate.IsAdmin())
			assert.Equal(t, tt.want, gate.Affordances())
		})
	}
}

func TestRoleGate_NonAdminRolesNeverSeeAdminAffordances(t *testing.T) {
	logger.InitNop()

	for _, role := range []model.Role{model.RoleStaff, model.RoleNone, "GUEST", "ADMIN", "DIRECTORS"} {
		gate := newGate(&model.Session{ID: 9, Role: role})
		assert.False(t, gate.IsAdmin(), role)
		assert.False(t, gate.Visible(pdp_model.AffordanceMemberTab), role)
		assert.False(t, gate.Visible(pdp_model.AffordanceDeleteProject), role)
		for _, status := range []model.ProjectStatus{model.StatusPending, model.StatusReviewed} {
			assert.False(t, gate.CanApproveReject(status), role)
		}
	}
}

func TestRoleGate_ApproveRejectNeedsOpenStatus(t *testing.T) {
	logger.InitNop()
	gate := newGate(&model.Session{ID: 1, Role: model.RoleManager})

	assert.True(t, gate.CanApproveReject(model.StatusPending))
	assert.True(t, gate.CanApproveReject(model.StatusReviewed))
	assert.False(t, gate.CanApproveReject(model.StatusAccepted))
	assert.False(t, gate.CanApproveReject(model.StatusRejected))
}

func TestRoleGate_DeleteCommentOnlyForAuthor(t *testing.T) {
	logger.InitNop()

	comment := model.Comment{ID: 10, Author: 7, Content: "solder bridge on U3"}

	for _, role := range model.Roles {
		assert.True(t, newGate(&model.Session{ID: 7, Role: role}).CanDeleteComment(comment), role)
		assert.False(t, newGate(&model.Session{ID: 8, Role: role}).CanDeleteComment(comment), role)
	}
	assert.False(t, newGate(nil).CanDeleteComment(comment))
	assert.False(t, newGate(&model.Session{ID: 7, Role: model.RoleStaff}).CanDeleteComment(model.Comment{ID: 11}))
}

func TestPolicyEvaluator_DenyOverridesAllow(t *testing.T) {
	logger.InitNop()

	policies := append(engine.DefaultPolicies(), pdp_model.Policy{
		ID:          "freeze-deletes",
		Effect:      pdp_model.EffectDeny,
		Roles:       []model.Role{model.RoleManager},
		Affordances: []pdp_model.Affordance{pdp_model.AffordanceDeleteProject},
	})
	evaluator := engine.NewPolicyEvaluator(policies)

	decision := evaluator.Evaluate(pdp_model.AccessRequest{
		Subject:    pdp_model.Subject{ID: 1, Role: model.RoleManager},
		Affordance: pdp_model.AffordanceDeleteProject,
	})
	assert.False(t, decision.Allowed())
	assert.Contains(t, decision.Reason, "freeze-deletes")

	decision = evaluator.Evaluate(pdp_model.AccessRequest{
		Subject:    pdp_model.Subject{ID: 1, Role: model.RoleDirector},
		Affordance: pdp_model.AffordanceDeleteProject,
	})
	assert.True(t, decision.Allowed())
}

func TestPolicyEvaluator_UnknownAffordanceDenied(t *testing.T) {
	logger.InitNop()
	evaluator := engine.NewPolicyEvaluator(engine.DefaultPolicies())

	decision := evaluator.Evaluate(pdp_model.AccessRequest{
		Subject:    pdp_model.Subject{ID: 1, Role: model.RoleDirector},
		Affordance: "format_disk",
	})
	assert.False(t, decision.Allowed())
	assert.Equal(t, "No matching policies found", decision.Reason)
}
