// model/envelope.go
package model

import "encoding/json"

const (
	EnvelopeSuccess  = "success"
	EnvelopeError    = "error"
	EnvelopeFail     = "fail"
	EnvelopeNoChange = "no_change"
)

// Envelope is the loose wrapper the backend puts around most JSON responses.
// Error responses carry either "error" or "message".
type Envelope struct {
	Status    string          `json:"status"`
	Data      json.RawMessage `json:"data,omitempty"`
	Message   string          `json:"message,omitempty"`
	Error     string          `json:"error,omitempty"`
	UserInfo  *Session        `json:"user_info,omitempty"`
	NewStatus ProjectStatus   `json:"new_status,omitempty"`

	// detect
	ResultImage string      `json:"result_image,omitempty"`
	Detections  []Detection `json:"detections,omitempty"`
}

func (e *Envelope) Text() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}
