// model/session.go
package model

import "strings"

type Role string

const (
	RoleDirector Role = "DIRECTOR"
	RoleManager  Role = "MANAGER"
	RoleStaff    Role = "STAFF"
	RoleNone     Role = ""
)

// Roles lists the roles a member can be assigned, highest first.
var Roles = []Role{RoleDirector, RoleManager, RoleStaff}

// ParseRole is case-insensitive; anything unknown is RoleNone.
func ParseRole(s string) Role {
	switch Role(strings.ToUpper(strings.TrimSpace(s))) {
	case RoleDirector:
		return RoleDirector
	case RoleManager:
		return RoleManager
	case RoleStaff:
		return RoleStaff
	default:
		return RoleNone
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleDirector || r == RoleManager
}

func (r Role) Valid() bool {
	return r == RoleDirector || r == RoleManager || r == RoleStaff
}

// Session is the signed-in user as returned in the login response's user_info.
type Session struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	Role        Role   `json:"role"`
	DeptName    string `json:"dept_name"`
	CompanyName string `json:"company_name"`
}

// Valid reports whether the blob identifies a user at all.
func (s *Session) Valid() bool {
	return s != nil && s.ID != 0
}

// EffectiveRole is fail-closed: a nil session or an unknown role yields RoleNone.
func (s *Session) EffectiveRole() Role {
	if !s.Valid() {
		return RoleNone
	}
	return ParseRole(string(s.Role))
}

type Credentials struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type SignupRequest struct {
	CorporateName string `json:"corporate_name" validate:"required,max=100"`
	Name          string `json:"name" validate:"required,max=50"`
	DeptName      string `json:"dept_name" validate:"max=100"`
	Email         string `json:"email" validate:"required,email,max=255"`
	Password      string `json:"password" validate:"required"`
	Role          Role   `json:"role" validate:"required,oneof=DIRECTOR MANAGER STAFF"`
}

type ProfileUpdate struct {
	UserID   int    `json:"user_id" validate:"required"`
	Name     string `json:"name" validate:"required,max=50"`
	DeptName string `json:"dept_name" validate:"max=100"`
}
