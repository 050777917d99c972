// model/events.go
package model

// Actor is the signed-in user behind a change.
type Actor struct {
	ID   int  `json:"id"`
	Role Role `json:"role"`
}

type ProjectStatusChanged struct {
	Actor     Actor         `json:"actor"`
	ProjectID int           `json:"project_id"`
	From      ProjectStatus `json:"from"`
	To        ProjectStatus `json:"to"`
	Automatic bool          `json:"automatic"`
}

type ProjectDeleted struct {
	Actor     Actor `json:"actor"`
	ProjectID int   `json:"project_id"`
}

type MemberRoleChanged struct {
	Actor        Actor `json:"actor"`
	TargetUserID int   `json:"target_user_id"`
	NewRole      Role  `json:"new_role"`
}

type SessionCleared struct {
	UserID int    `json:"user_id"`
	Reason string `json:"reason"`
}
