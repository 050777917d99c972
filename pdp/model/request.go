package model

import (
	"github.com/pcbinspect/client/model"
)

// Affordance is a UI control or tab whose visibility depends on the viewer.
type Affordance string

const (
	AffordanceMemberTab      Affordance = "member_tab"
	AffordanceApproveReject  Affordance = "approve_reject"
	AffordanceDeleteProject  Affordance = "delete_project"
	AffordanceEditProfile    Affordance = "edit_profile"
	AffordanceEditMemberRole Affordance = "edit_member_role"
	AffordanceDeleteComment  Affordance = "delete_comment"
)

// RoleAffordances are decided by role alone and make up a gate snapshot.
var RoleAffordances = []Affordance{
	AffordanceMemberTab,
	AffordanceApproveReject,
	AffordanceDeleteProject,
	AffordanceEditProfile,
	AffordanceEditMemberRole,
}

type AccessRequest struct {
	Subject    Subject    `json:"subject"`
	Affordance Affordance `json:"affordance"`
	// Resource is nil when asking about the role-level capability.
	Resource *Resource `json:"resource,omitempty"`
}

type Subject struct {
	ID   int        `json:"id"`
	Role model.Role `json:"role"`
}

type Resource struct {
	OwnerID int                 `json:"owner_id,omitempty"`
	Status  model.ProjectStatus `json:"status,omitempty"`
}
