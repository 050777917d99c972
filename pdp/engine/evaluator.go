package engine

import (
	"fmt"

	"go.uber.org/zap"

	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	pdp_model "github.com/pcbinspect/client/pdp/model"
)

var adminRoles = []model.Role{model.RoleDirector, model.RoleManager}
var allRoles = []model.Role{model.RoleDirector, model.RoleManager, model.RoleStaff}

// DefaultPolicies is the client-side visibility table.
func DefaultPolicies() []pdp_model.Policy {
	return []pdp_model.Policy{
		{
			ID:     "admin-management",
			Effect: pdp_model.EffectAllow,
			Roles:  adminRoles,
			Affordances: []pdp_model.Affordance{
				pdp_model.AffordanceMemberTab,
				pdp_model.AffordanceDeleteProject,
				pdp_model.AffordanceEditMemberRole,
			},
		},
		{
			ID:          "admin-approve-reject",
			Effect:      pdp_model.EffectAllow,
			Roles:       adminRoles,
			Affordances: []pdp_model.Affordance{pdp_model.AffordanceApproveReject},
			Conditions: []pdp_model.Condition{{
				Attribute: pdp_model.ConditionStatusIn,
				Values:    []model.ProjectStatus{model.StatusPending, model.StatusReviewed},
			}},
		},
		{
			ID:          "edit-own-profile",
			Effect:      pdp_model.EffectAllow,
			Roles:       allRoles,
			Affordances: []pdp_model.Affordance{pdp_model.AffordanceEditProfile},
		},
		{
			ID:          "delete-own-comment",
			Effect:      pdp_model.EffectAllow,
			Roles:       allRoles,
			Affordances: []pdp_model.Affordance{pdp_model.AffordanceDeleteComment},
			Conditions:  []pdp_model.Condition{{Attribute: pdp_model.ConditionOwner}},
		},
	}
}

type PolicyEvaluator struct {
	policies []pdp_model.Policy
}

func NewPolicyEvaluator(policies []pdp_model.Policy) *PolicyEvaluator {
	return &PolicyEvaluator{policies: policies}
}

// Evaluate denies unless some policy allows and none denies.
func (pe *PolicyEvaluator) Evaluate(request pdp_model.AccessRequest) pdp_model.AccessDecision {
	if request.Subject.ID == 0 || !request.Subject.Role.Valid() {
		return pdp_model.AccessDecision{
			Effect: pdp_model.EffectDeny,
			Reason: "Unauthenticated subject",
		}
	}

	var decisions []pdp_model.PolicyEvaluationResult
	for i := range pe.policies {
		decisions = append(decisions, pe.evaluatePolicy(request, &pe.policies[i]))
	}

	decision := pe.combineDecisions(decisions)
	logger.Debug("Affordance evaluated",
		zap.Int("subjectID", request.Subject.ID),
		zap.String("role", string(request.Subject.Role)),
		zap.String("affordance", string(request.Affordance)),
		zap.String("effect", decision.Effect))
	return decision
}

func (pe *PolicyEvaluator) evaluatePolicy(request pdp_model.AccessRequest, policy *pdp_model.Policy) pdp_model.PolicyEvaluationResult {
	result := pdp_model.PolicyEvaluationResult{
		PolicyID: policy.ID,
		Effect:   policy.Effect,
		Matched:  true,
		Priority: policy.Priority,
	}

	if !containsRole(policy.Roles, request.Subject.Role) {
		result.Matched = false
		result.Reason = "Role did not match"
		return result
	}

	if !containsAffordance(policy.Affordances, request.Affordance) {
		result.Matched = false
		result.Reason = "Affordance did not match"
		return result
	}

	// without a resource the question is whether the role has the capability at all
	if request.Resource == nil {
		return result
	}

	for _, condition := range policy.Conditions {
		if !pe.evaluateCondition(condition, request) {
			result.Matched = false
			result.Reason = fmt.Sprintf("Condition %s did not match", condition.Attribute)
			return result
		}
	}

	return result
}

func (pe *PolicyEvaluator) evaluateCondition(condition pdp_model.Condition, request pdp_model.AccessRequest) bool {
	switch condition.Attribute {
	case pdp_model.ConditionOwner:
		return request.Resource.OwnerID != 0 && request.Resource.OwnerID == request.Subject.ID
	case pdp_model.ConditionStatusIn:
		for _, s := range condition.Values {
			if s == request.Resource.Status {
				return true
			}
		}
		return false
	default:
		logger.Warn("Unknown condition type", zap.String("attribute", condition.Attribute))
		return false
	}
}

func (pe *PolicyEvaluator) combineDecisions(decisions []pdp_model.PolicyEvaluationResult) pdp_model.AccessDecision {
	var highestPriorityAllow, highestPriorityDeny *pdp_model.PolicyEvaluationResult
	var evaluated []string

	for i, decision := range decisions {
		if !decision.Matched {
			continue
		}
		evaluated = append(evaluated, decision.PolicyID)

		if decision.Effect == pdp_model.EffectAllow {
			if highestPriorityAllow == nil || decision.Priority > highestPriorityAllow.Priority {
				highestPriorityAllow = &decisions[i]
			}
		} else if decision.Effect == pdp_model.EffectDeny {
			if highestPriorityDeny == nil || decision.Priority > highestPriorityDeny.Priority {
				highestPriorityDeny = &decisions[i]
			}
		}
	}

	if highestPriorityDeny != nil {
		return pdp_model.AccessDecision{
			Effect:            pdp_model.EffectDeny,
			Reason:            "Denied by policy " + highestPriorityDeny.PolicyID,
			EvaluatedPolicies: evaluated,
		}
	}

	if highestPriorityAllow != nil {
		return pdp_model.AccessDecision{
			Effect:            pdp_model.EffectAllow,
			Reason:            "Allowed by policy " + highestPriorityAllow.PolicyID,
			EvaluatedPolicies: evaluated,
		}
	}

	return pdp_model.AccessDecision{
		Effect: pdp_model.EffectDeny,
		Reason: "No matching policies found",
	}
}

func containsRole(roles []model.Role, role model.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}

func containsAffordance(affordances []pdp_model.Affordance, a pdp_model.Affordance) bool {
	for _, x := range affordances {
		if x == a {
			return true
		}
	}
	return false
}
