// audit/service.go
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/util"
)

type Service interface {
	LogAction(ctx context.Context, log AuditLog) error
	QueryLogs(ctx context.Context, from, to time.Time, userID int, resourceID string) ([]AuditLog, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) LogAction(ctx context.Context, log AuditLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now().UTC()
	}
	return s.repo.LogAction(ctx, log)
}

func (s *service) QueryLogs(ctx context.Context, from, to time.Time, userID int, resourceID string) ([]AuditLog, error) {
	return s.repo.QueryLogs(ctx, from, to, userID, resourceID)
}

// Subscribe records every administrative event published on bus.
func Subscribe(bus *util.EventBus, svc Service) {
	handler := func(ctx context.Context, event util.Event) error {
		log, err := fromEvent(event)
		if err != nil {
			return err
		}
		return svc.LogAction(ctx, log)
	}

	bus.Subscribe(util.EventProjectStatusChanged, handler)
	bus.Subscribe(util.EventProjectDeleted, handler)
	bus.Subscribe(util.EventMemberRoleChanged, handler)
	bus.Subscribe(util.EventSessionCleared, handler)
}

func fromEvent(event util.Event) (AuditLog, error) {
	details, err := json.Marshal(event.Payload)
	if err != nil {
		return AuditLog{}, fmt.Errorf("failed to marshal %s payload: %w", event.Type, err)
	}
	log := AuditLog{Action: event.Type, ChangeDetails: details}

	switch p := event.Payload.(type) {
	case model.ProjectStatusChanged:
		log.UserID, log.UserRole = p.Actor.ID, string(p.Actor.Role)
		log.ResourceID = "project:" + strconv.Itoa(p.ProjectID)
	case model.ProjectDeleted:
		log.UserID, log.UserRole = p.Actor.ID, string(p.Actor.Role)
		log.ResourceID = "project:" + strconv.Itoa(p.ProjectID)
	case model.MemberRoleChanged:
		log.UserID, log.UserRole = p.Actor.ID, string(p.Actor.Role)
		log.ResourceID = "user:" + strconv.Itoa(p.TargetUserID)
	case model.SessionCleared:
		log.UserID = p.UserID
		log.ResourceID = "session"
	default:
		return AuditLog{}, fmt.Errorf("unexpected payload %T for %s", event.Payload, event.Type)
	}
	return log, nil
}
