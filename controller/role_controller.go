// controller/role_controller.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/middleware"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/service"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

type RoleController struct {
	authz       service.IAuthorizationService
	roleService service.IRoleService
}

func NewRoleController(authz service.IAuthorizationService, roleService service.IRoleService) *RoleController {
	return &RoleController{
		authz:       authz,
		roleService: roleService,
	}
}

// RegisterRoutes registers the API routes for role assignments
func (rc *RoleController) RegisterRoutes(r *gin.RouterGroup) {
	users := r.Group("/api/v1/users", middleware.AdminAuth(rc.authz))
	{
		users.GET("/:id/roles", rc.ListUserRoles)
	}
}

// ListUserRoles endpoint
func (rc *RoleController) ListUserRoles(c *gin.Context) {
	roles, err := rc.roleService.ListUserRoles(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, bc_errors.ErrUserIDRequired), errors.Is(err, bc_errors.ErrInvalidRequest):
			util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", err)
		default:
			util.RespondWithError(c, http.StatusInternalServerError, "Failed to list roles", err)
		}
		return
	}

	c.JSON(http.StatusOK, roles)
}
