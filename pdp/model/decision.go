package model

const (
	EffectAllow = "allow"
	EffectDeny  = "deny"
)

type AccessDecision struct {
	Effect            string   `json:"effect"`
	Reason            string   `json:"reason,omitempty"`
	EvaluatedPolicies []string `json:"evaluated_policies,omitempty"`
}

func (d AccessDecision) Allowed() bool {
	return d.Effect == EffectAllow
}
