// util/http_util.go
package util

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

const identityKey = "identity"

func RespondWithError(c *gin.Context, code int, message string, err error) {
	fields := []zap.Field{
		zap.Int("status", code),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if code >= 500 {
		logger.Error(message, fields...)
	} else {
		logger.Warn(message, fields...)
	}
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// SetIdentity stores the authenticated caller on the request context.
func SetIdentity(c *gin.Context, identity model.Identity) {
	c.Set(identityKey, identity)
}

// GetIdentityFromContext returns the caller set by the auth middleware.
func GetIdentityFromContext(c *gin.Context) (model.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return model.Identity{}, false
	}
	identity, ok := v.(model.Identity)
	return identity, ok
}
