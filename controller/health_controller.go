// controller/health_controller.go
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// ReadyCheck reports whether a dependency is reachable.
type ReadyCheck func(ctx context.Context) error

type HealthController struct {
	ready ReadyCheck
}

func NewHealthController(ready ReadyCheck) *HealthController {
	return &HealthController{ready: ready}
}

func (hc *HealthController) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/healthz", hc.Healthz)
	r.GET("/readyz", hc.Readyz)
}

func (hc *HealthController) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (hc *HealthController) Readyz(c *gin.Context) {
	if hc.ready != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := hc.ready(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
