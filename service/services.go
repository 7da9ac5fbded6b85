// service/services.go
package service

import (
	"database/sql"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/audit"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/dao"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/identity"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

type Services struct {
	Authorization IAuthorizationService
	AdminAction   IAdminActionService
	UserDeletion  IUserDeletionService
	Role          IRoleService
	Audit         audit.Service
}

func InitializeServices(
	db *sql.DB,
	provider identity.Provider,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	eventBus *util.EventBus,
) *Services {
	roleDAO := dao.NewRoleDAO(db)
	resourceDAO := dao.NewResourceDAO(db)

	return &Services{
		Authorization: NewAuthorizationService(provider, roleDAO),
		AdminAction:   NewAdminActionService(roleDAO, resourceDAO, auditService, validationUtil, eventBus),
		UserDeletion:  NewUserDeletionService(resourceDAO, provider, auditService),
		Role:          NewRoleService(roleDAO),
		Audit:         auditService,
	}
}
