// model/project.go
package model

import "time"

type ProjectStatus string

const (
	StatusPending  ProjectStatus = "PENDING"
	StatusReviewed ProjectStatus = "REVIEWED"
	StatusAccepted ProjectStatus = "ACCEPTED"
	StatusRejected ProjectStatus = "REJECTED"
)

var transitions = map[ProjectStatus][]ProjectStatus{
	StatusPending:  {StatusReviewed},
	StatusReviewed: {StatusAccepted, StatusRejected},
}

// CanTransition reports whether the client may move a project from one status to another.
func CanTransition(from, to ProjectStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func (s ProjectStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusPending, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

type Project struct {
	ID        int           `json:"id"`
	CompanyID int           `json:"company_id,omitempty"`
	ModelName string        `json:"model_name"`
	Status    ProjectStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

type CreateProjectRequest struct {
	ModelName string `json:"model_name" validate:"required,max=255"`
}

type StatusUpdate struct {
	ProjectID int           `json:"project_id" validate:"required"`
	Status    ProjectStatus `json:"status" validate:"required,oneof=PENDING REVIEWED ACCEPTED REJECTED"`
	UserRole  Role          `json:"user_role"`
}

type DeleteProjectRequest struct {
	UserRole Role `json:"user_role"`
}
