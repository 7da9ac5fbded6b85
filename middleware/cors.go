// middleware/cors.go

package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	corsAllowOrigin  = "*"
	corsAllowHeaders = "authorization, x-client-info, apikey, content-type"
	corsAllowMethods = "GET, POST, OPTIONS"
)

// CORS sets the headers on every response and answers preflight requests
// before any authentication runs.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", corsAllowOrigin)
		h.Set("Access-Control-Allow-Headers", corsAllowHeaders)
		h.Set("Access-Control-Allow-Methods", corsAllowMethods)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}
