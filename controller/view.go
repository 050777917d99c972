// controller/view.go
package controller

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	"github.com/pcbinspect/client/service"
	"github.com/pcbinspect/client/util"
)

// view is the lifecycle shared by every screen: Mount opens a context that
// Unmount cancels, and only one mutating action runs at a time.
type view struct {
	sessions  service.SessionProvider
	evaluator *engine.PolicyEvaluator
	notifier  util.Notifier

	mu      sync.Mutex
	life    context.Context
	cancel  context.CancelFunc
	busy    bool
	session *model.Session
	gate    *engine.RoleGate
	tasks   sync.WaitGroup
}

func newView(sessions service.SessionProvider, evaluator *engine.PolicyEvaluator, notifier util.Notifier) view {
	return view{
		sessions:  sessions,
		evaluator: evaluator,
		notifier:  notifier,
		gate:      engine.NewRoleGate(evaluator, nil),
	}
}

// mount reads the session and rebuilds the gate. A missing or unreadable
// session leaves every gated control hidden.
func (v *view) mount(ctx context.Context) context.Context {
	session, err := v.sessions.Load(ctx)
	if err != nil {
		if !errors.Is(err, pcb_errors.ErrSessionNotFound) {
			logger.Warn("Mounting view without a usable session", zap.Error(err))
		}
		session = nil
	}

	life, cancel := context.WithCancel(ctx)

	v.mu.Lock()
	if v.cancel != nil {
		v.cancel()
	}
	v.life, v.cancel = life, cancel
	v.session = session
	v.gate = engine.NewRoleGate(v.evaluator, session)
	v.mu.Unlock()
	return life
}

// Unmount cancels everything the view started. Responses that arrive later are dropped.
func (v *view) Unmount() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.cancel != nil {
		v.cancel()
	}
}

// Wait blocks until background work started by the view has finished.
func (v *view) Wait() {
	v.tasks.Wait()
}

func (v *view) Gate() *engine.RoleGate {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.gate
}

func (v *view) Session() *model.Session {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.session == nil {
		return nil
	}
	s := *v.session
	return &s
}

func (v *view) actor() model.Actor {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.session == nil {
		return model.Actor{}
	}
	return model.Actor{ID: v.session.ID, Role: v.session.EffectiveRole()}
}

// scope derives a context that ends with either ctx or the view's lifecycle.
func (v *view) scope(ctx context.Context) (context.Context, context.CancelFunc, error) {
	v.mu.Lock()
	life := v.life
	v.mu.Unlock()
	if life == nil || life.Err() != nil {
		return nil, nil, pcb_errors.ErrViewClosed
	}

	scoped, cancel := context.WithCancel(ctx)
	stop := context.AfterFunc(life, cancel)
	return scoped, func() {
		stop()
		cancel()
	}, nil
}

func (v *view) closed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.life == nil || v.life.Err() != nil
}

// acquire takes the busy flag, like a disabled button while a request is pending.
func (v *view) acquire() (release func(), err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.busy {
		return nil, pcb_errors.ErrBusy
	}
	v.busy = true
	return func() {
		v.mu.Lock()
		v.busy = false
		v.mu.Unlock()
	}, nil
}

// Busy reports whether a mutating action is pending.
func (v *view) Busy() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.busy
}

func (v *view) alert(title string, err error) {
	v.notifier.Alert(title, pcb_errors.Message(err))
}

// finish reports err unless the view went away while the call was in flight.
func (v *view) finish(title string, err error) error {
	if v.closed() {
		return pcb_errors.ErrViewClosed
	}
	if err != nil {
		v.alert(title, err)
	}
	return err
}
