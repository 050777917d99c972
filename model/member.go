// model/member.go
package model

import "time"

type Member struct {
	ID            int       `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          Role      `json:"role"`
	DeptName      string    `json:"dept_name"`
	CorporateName string    `json:"corporate_name,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type RoleUpdate struct {
	TargetUserID int  `json:"target_user_id" validate:"required"`
	NewRole      Role `json:"new_role" validate:"required,oneof=DIRECTOR MANAGER STAFF"`
}
