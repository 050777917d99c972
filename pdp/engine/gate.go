package engine

import (
	"github.com/pcbinspect/client/model"
	pdp_model "github.com/pcbinspect/client/pdp/model"
)

// RoleGate answers visibility questions for one viewer. A nil session hides everything.
type RoleGate struct {
	evaluator *PolicyEvaluator
	subject   pdp_model.Subject
}

func NewRoleGate(evaluator *PolicyEvaluator, session *model.Session) *RoleGate {
	g := &RoleGate{evaluator: evaluator}
	if session.Valid() {
		g.subject = pdp_model.Subject{ID: session.ID, Role: session.EffectiveRole()}
	}
	return g
}

func (g *RoleGate) Role() model.Role {
	return g.subject.Role
}

func (g *RoleGate) IsAdmin() bool {
	return g.subject.ID != 0 && g.subject.Role.IsAdmin()
}

// Visible reports the role-level decision for a.
func (g *RoleGate) Visible(a pdp_model.Affordance) bool {
	return g.evaluator.Evaluate(pdp_model.AccessRequest{Subject: g.subject, Affordance: a}).Allowed()
}

// VisibleFor decides a against a concrete resource such as a project or a comment.
func (g *RoleGate) VisibleFor(a pdp_model.Affordance, resource pdp_model.Resource) bool {
	return g.evaluator.Evaluate(pdp_model.AccessRequest{
		Subject:    g.subject,
		Affordance: a,
		Resource:   &resource,
	}).Allowed()
}

func (g *RoleGate) CanDeleteComment(c model.Comment) bool {
	return g.VisibleFor(pdp_model.AffordanceDeleteComment, pdp_model.Resource{OwnerID: c.Author})
}

func (g *RoleGate) CanApproveReject(status model.ProjectStatus) bool {
	return g.VisibleFor(pdp_model.AffordanceApproveReject, pdp_model.Resource{Status: status})
}

// Affordances snapshots every role-level affordance.
func (g *RoleGate) Affordances() map[pdp_model.Affordance]bool {
	out := make(map[pdp_model.Affordance]bool, len(pdp_model.RoleAffordances))
	for _, a := range pdp_model.RoleAffordances {
		out[a] = g.Visible(a)
	}
	return out
}
