// controller/controllers.go
package controller

import (
	"github.com/pcbinspect/client/model"
	"github.com/pcbinspect/client/pdp/engine"
	"github.com/pcbinspect/client/service"
	"github.com/pcbinspect/client/util"
)

// Controllers builds views that share the services, the policy evaluator and the notifier.
type Controllers struct {
	services  *service.Services
	evaluator *engine.PolicyEvaluator
	notifier  util.Notifier
}

func InitializeControllers(services *service.Services, notifier util.Notifier) *Controllers {
	return &Controllers{
		services:  services,
		evaluator: engine.NewPolicyEvaluator(engine.DefaultPolicies()),
		notifier:  notifier,
	}
}

func (c *Controllers) Login() *LoginView {
	return NewLoginView(c.services.Auth, c.notifier)
}

func (c *Controllers) Signup() *SignupView {
	return NewSignupView(c.services.Auth, c.notifier)
}

func (c *Controllers) Profile() *ProfileView {
	return NewProfileView(c.services.Auth, c.services.Session, c.evaluator, c.notifier)
}

func (c *Controllers) Home() *HomeView {
	return NewHomeView(c.services.Session, c.evaluator, c.notifier)
}

func (c *Controllers) ProjectList() *ProjectListView {
	return NewProjectListView(c.services.Project, c.services.Session, c.evaluator, c.notifier)
}

func (c *Controllers) ProjectDetail(project model.Project) *ProjectDetailView {
	return NewProjectDetailView(project, c.services.Project, c.services.Material, c.services.Comment, c.services.Session, c.evaluator, c.notifier)
}

func (c *Controllers) CommentThread(materialID int) *CommentThreadView {
	return NewCommentThreadView(materialID, c.services.Comment, c.services.Session, c.evaluator, c.notifier)
}

func (c *Controllers) Members() *MemberListView {
	return NewMemberListView(c.services.Member, c.services.Session, c.evaluator, c.notifier)
}

func (c *Controllers) Detect() *DetectView {
	return NewDetectView(c.services.Detection, c.services.Material, c.services.Session, c.evaluator, c.notifier)
}
