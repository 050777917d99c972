package model

import "github.com/pcbinspect/client/model"

const (
	ConditionOwner    = "owner"
	ConditionStatusIn = "status_in"
)

// Policy grants or denies affordances to a set of roles.
type Policy struct {
	ID          string       `json:"id"`
	Effect      string       `json:"effect"`
	Priority    int          `json:"priority"`
	Roles       []model.Role `json:"roles"`
	Affordances []Affordance `json:"affordances"`
	Conditions  []Condition  `json:"conditions,omitempty"`
}

type Condition struct {
	Attribute string                `json:"attribute"`
	Values    []model.ProjectStatus `json:"values,omitempty"`
}
