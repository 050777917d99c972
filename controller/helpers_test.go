package controller_test

import (
	"testing"

	"go.uber.org/mock/gomock"

	pcb_errors "github.com/pcbinspect/client/errors"
	logger "github.com/pcbinspect/client/logging"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	mock_service "github.com/pcbinspect/client/test/service_mock"
)

var (
	director = &model.Session{ID: 1, Name: "Dana", Role: model.RoleDirector, CompanyName: "Acme PCB", DeptName: "QA"}
	manager  = &model.Session{ID: 2, Name: "Max", Role: model.RoleManager, CompanyName: "Acme PCB"}
	staff    = &model.Session{ID: 3, Name: "Sam", Role: model.RoleStaff, CompanyName: "Acme PCB"}

	// stands for a stored blob that no longer parses
	corrupt = &model.Session{ID: 6, Name: "Corrupt", Role: model.RoleDirector}
)

// viewers that must never see admin controls
var nonAdmins = map[string]*model.Session{
	"staff":        staff,
	"signed out":   nil,
	"unknown role": {ID: 4, Name: "Root", Role: "ROOT"},
	"empty role":   {ID: 5, Name: "Nobody"},
	"corrupt blob": corrupt,
}

func init() {
	logger.InitNop()
}

func evaluator() *engine.PolicyEvaluator {
	return engine.NewPolicyEvaluator(engine.DefaultPolicies())
}

func sessionFor(ctrl *gomock.Controller, s *model.Session) *mock_service.MockSessionProvider {
	p := mock_service.NewMockSessionProvider(ctrl)
	switch s {
	case nil:
		p.EXPECT().Load(gomock.Any()).Return(nil, pcb_errors.ErrSessionNotFound).AnyTimes()
	case corrupt:
		p.EXPECT().Load(gomock.Any()).Return(nil, pcb_errors.ErrInvalidSession).AnyTimes()
	default:
		p.EXPECT().Load(gomock.Any()).Return(s, nil).AnyTimes()
	}
	return p
}

func setup(t *testing.T) *gomock.Controller {
	return gomock.NewController(t)
}
