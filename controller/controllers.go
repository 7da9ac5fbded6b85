// controller/controllers.go
package controller

import (
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/service"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

type Controllers struct {
	Gateway  *GatewayController
	AuditLog *AuditLogController
	Role     *RoleController
	Realtime *RealtimeController
	Health   *HealthController
}

func InitializeControllers(services *service.Services, bus *util.EventBus, realtimeBuffer int, ready ReadyCheck) *Controllers {
	return &Controllers{
		Gateway:  NewGatewayController(services.Authorization, services.AdminAction, services.UserDeletion),
		AuditLog: NewAuditLogController(services.Authorization, services.Audit),
		Role:     NewRoleController(services.Authorization, services.Role),
		Realtime: NewRealtimeController(bus, realtimeBuffer),
		Health:   NewHealthController(ready),
	}
}
