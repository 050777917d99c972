// util/notification_service.go

package util

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	logger "github.com/pcbinspect/client/logging"
)

// Notifier surfaces a blocking message to the user.
type Notifier interface {
	Alert(title, message string)
}

// NotificationService prints alerts as "title: message" lines.
type NotificationService struct {
	mu  sync.Mutex
	out io.Writer
}

func NewNotificationService(out io.Writer) *NotificationService {
	return &NotificationService{out: out}
}

func (n *NotificationService) Alert(title, message string) {
	logger.Info("NOTIFICATION",
		zap.String("title", title),
		zap.String("message", message))

	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.out, "%s: %s\n", title, message)
}

type Alert struct {
	Title   string
	Message string
}

// RecordingNotifier keeps every alert, for tests and scripted runs.
type RecordingNotifier struct {
	mu     sync.Mutex
	alerts []Alert
}

func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (r *RecordingNotifier) Alert(title, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.alerts = append(r.alerts, Alert{Title: title, Message: message})
}

func (r *RecordingNotifier) Alerts() []Alert {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Alert, len(r.alerts))
	copy(out, r.alerts)
	return out
}

func (r *RecordingNotifier) Last() (Alert, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.alerts) == 0 {
		return Alert{}, false
	}
	return r.alerts[len(r.alerts)-1], true
}
