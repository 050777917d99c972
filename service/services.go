// service/services.go
package service

import (
	"github.com/pcbinspect/client/dao"
	"github.com/pcbinspect/client/db"
	"github.com/pcbinspect/client/util"
)

type Services struct {
	Session   ISessionService
	Auth      IAuthService
	Project   IProjectService
	Material  IMaterialService
	Comment   ICommentService
	Member    IMemberService
	Detection IDetectionService
	Health    IHealthService
}

func InitializeServices(
	client *dao.Client,
	store db.Store,
	validationUtil *util.ValidationUtil,
	eventBus *util.EventBus,
) (*Services, error) {
	authDAO := dao.NewAuthDAO(client)
	projectDAO := dao.NewProjectDAO(client)
	materialDAO := dao.NewMaterialDAO(client)
	commentDAO := dao.NewCommentDAO(client)
	memberDAO := dao.NewMemberDAO(client)
	detectionDAO := dao.NewDetectionDAO(client)

	sessions := NewSessionService(store)

	services := &Services{
		Session:   sessions,
		Auth:      NewAuthService(authDAO, sessions, client.Jar(), validationUtil, eventBus),
		Project:   NewProjectService(projectDAO, validationUtil, eventBus),
		Material:  NewMaterialService(materialDAO, validationUtil),
		Comment:   NewCommentService(commentDAO, validationUtil),
		Member:    NewMemberService(memberDAO, validationUtil, eventBus),
		Detection: NewDetectionService(detectionDAO),
		Health:    NewHealthService(detectionDAO),
	}

	return services, nil
}
