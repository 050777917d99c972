// audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AuditLog records one administrative action taken from this client.
type AuditLog struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	UserID        int             `json:"user_id"`
	UserRole      string          `json:"user_role"`
	Action        string          `json:"action"`
	ResourceID    string          `json:"resource_id"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}
