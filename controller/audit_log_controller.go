// controller/audit_log_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/audit"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/middleware"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/service"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
	helper_util "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util/helper"
)

type AuditLogController struct {
	authz        service.IAuthorizationService
	auditService audit.Service
}

func NewAuditLogController(authz service.IAuthorizationService, auditService audit.Service) *AuditLogController {
	return &AuditLogController{authz: authz, auditService: auditService}
}

// RegisterRoutes registers the read-side audit routes for admins
func (ac *AuditLogController) RegisterRoutes(r *gin.RouterGroup) {
	logs := r.Group("/api/v1/audit-logs", middleware.AdminAuth(ac.authz))
	{
		logs.GET("", ac.ListRecent)
	}
}

// ListRecent returns the newest entries first, at most audit.MaxRecent.
func (ac *AuditLogController) ListRecent(c *gin.Context) {
	limit, err := helper_util.GetLimitParam(c, audit.MaxRecent)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid limit parameter", err)
		return
	}

	entries, err := ac.auditService.Recent(c.Request.Context(), limit)
	if err != nil {
		util.RespondWithError(c, http.StatusInternalServerError, "Failed to list audit logs", err)
		return
	}
	if entries == nil {
		entries = []audit.Entry{}
	}

	c.JSON(http.StatusOK, entries)
}
