// controller/gateway_controller.go
package controller

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/middleware"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/service"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

// GatewayController exposes the two privileged-action gateways.
type GatewayController struct {
	authz        service.IAuthorizationService
	adminAction  service.IAdminActionService
	userDeletion service.IUserDeletionService
}

func NewGatewayController(
	authz service.IAuthorizationService,
	adminAction service.IAdminActionService,
	userDeletion service.IUserDeletionService,
) *GatewayController {
	return &GatewayController{
		authz:        authz,
		adminAction:  adminAction,
		userDeletion: userDeletion,
	}
}

// RegisterRoutes registers the gateway routes
func (gc *GatewayController) RegisterRoutes(r *gin.RouterGroup) {
	functions := r.Group("/functions/v1")
	{
		functions.OPTIONS("/admin-action", gc.Preflight)
		functions.POST("/admin-action", middleware.AdminAuth(gc.authz), gc.ExecuteAction)
		functions.OPTIONS("/delete-user", gc.Preflight)
		functions.POST("/delete-user", middleware.AdminAuth(gc.authz), gc.DeleteUser)
	}
}

// Preflight answers CORS preflight requests; the headers come from the CORS
// middleware.
func (gc *GatewayController) Preflight(c *gin.Context) {
	c.Status(http.StatusOK)
}

// ExecuteAction endpoint
func (gc *GatewayController) ExecuteAction(c *gin.Context) {
	caller, ok := util.GetIdentityFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", bc_errors.ErrUnauthorized)
		return
	}

	var req model.AdminActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	// Once started, a mutation runs to completion even if the caller goes away.
	ctx := context.WithoutCancel(c.Request.Context())
	outcome, err := gc.adminAction.Execute(ctx, caller, req)
	if err != nil {
		var mutationErr *bc_errors.MutationError
		switch {
		case errors.Is(err, bc_errors.ErrUnknownAction):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid action", err)
		case errors.Is(err, bc_errors.ErrInvalidActionData), errors.Is(err, bc_errors.ErrInvalidRequest):
			util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
		case errors.As(err, &mutationErr):
			util.RespondWithError(c, http.StatusInternalServerError, mutationErr.Error(), err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Internal server error", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": outcome.Message})
}

// DeleteUser endpoint
func (gc *GatewayController) DeleteUser(c *gin.Context) {
	caller, ok := util.GetIdentityFromContext(c)
	if !ok {
		util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", bc_errors.ErrUnauthorized)
		return
	}

	var req model.DeleteUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if strings.TrimSpace(req.UserID) == "" {
		util.RespondWithError(c, http.StatusBadRequest, "User ID is required", bc_errors.ErrUserIDRequired)
		return
	}

	ctx := context.WithoutCancel(c.Request.Context())
	if _, err := gc.userDeletion.DeleteUser(ctx, caller, req.UserID); err != nil {
		if errors.Is(err, bc_errors.ErrUserIDRequired) {
			util.RespondWithError(c, http.StatusBadRequest, "User ID is required", err)
			return
		}
		util.RespondWithError(c, http.StatusInternalServerError, err.Error(), err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "User deleted successfully"})
}
