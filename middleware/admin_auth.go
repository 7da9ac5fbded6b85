// middleware/admin_auth.go

package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/service"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

const bearerPrefix = "bearer "

// AdminAuth rejects callers without a resolvable bearer token (401) or
// without an admin role row (403). On success the caller identity is stored
// on the context for the handler.
func AdminAuth(authz service.IAuthorizationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := extractBearerToken(c.GetHeader("Authorization"))
		if !ok {
			util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", bc_errors.ErrUnauthorized)
			return
		}

		caller, err := authz.AuthorizeAdmin(c.Request.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, bc_errors.ErrUnauthorized):
				util.RespondWithError(c, http.StatusUnauthorized, "Unauthorized", err)
			case errors.Is(err, bc_errors.ErrForbidden):
				util.RespondWithError(c, http.StatusForbidden, "Forbidden: Admin access required", err)
			default:
				util.RespondWithError(c, http.StatusInternalServerError, "Failed to verify admin access", err)
			}
			return
		}

		util.SetIdentity(c, *caller)
		logger.Debug("Admin caller authorized", zap.String("userID", caller.ID))
		c.Next()
	}
}

func extractBearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}
