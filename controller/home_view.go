// controller/home_view.go
package controller

import (
	"context"

	pcb_errors "github.com/pcbinspect/client/errors"
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	pdp_model "github.com/pcbinspect/client/pdp/model"
	"github.com/pcbinspect/client/service"
	"github.com/pcbinspect/client/util"
)

const notSet = "not set"

// Tabs of the signed-in shell, in display order.
const (
	TabHome    = "home"
	TabDetect  = "detect"
	TabRecords = "records"
	TabMembers = "members"
	TabProfile = "profile"
)

type HomeSummary struct {
	Name    string
	Company string
	Dept    string
	Role    model.Role
}

type HomeView struct {
	view
}

func NewHomeView(sessions service.SessionProvider, evaluator *engine.PolicyEvaluator, notifier util.Notifier) *HomeView {
	return &HomeView{view: newView(sessions, evaluator, notifier)}
}

// Mount fails with ErrSessionNotFound when nobody is signed in.
func (v *HomeView) Mount(ctx context.Context) error {
	v.mount(ctx)
	if v.Session() == nil {
		return pcb_errors.ErrSessionNotFound
	}
	return nil
}

func (v *HomeView) Summary() HomeSummary {
	s := v.Session()
	if s == nil {
		return HomeSummary{Name: notSet, Company: notSet, Dept: notSet}
	}
	return HomeSummary{
		Name:    orNotSet(s.Name),
		Company: orNotSet(s.CompanyName),
		Dept:    orNotSet(s.DeptName),
		Role:    s.EffectiveRole(),
	}
}

// Tabs lists the tabs the viewer can open. The member tab needs an admin role.
func (v *HomeView) Tabs() []string {
	tabs := []string{TabHome, TabDetect, TabRecords}
	if v.Gate().Visible(pdp_model.AffordanceMemberTab) {
		tabs = append(tabs, TabMembers)
	}
	return append(tabs, TabProfile)
}

func orNotSet(s string) string {
	if s == "" {
		return notSet
	}
	return s
}
