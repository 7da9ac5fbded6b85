// router/router.go

package router

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/controller"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/metrics"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/middleware"
)

func SetupRouter(
	controllers *controller.Controllers,
	limiter middleware.Limiter,
	rateLimitRequests int,
	rateLimitDuration time.Duration,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(metrics.Instrument())
	router.Use(middleware.CORS())

	root := router.Group("/")

	controllers.Health.RegisterRoutes(root)
	root.GET("/metrics", gin.WrapH(metrics.Handler()))

	limited := router.Group("/", middleware.RateLimiter(limiter, rateLimitRequests, rateLimitDuration))

	controllers.Gateway.RegisterRoutes(limited)
	controllers.AuditLog.RegisterRoutes(limited)
	controllers.Role.RegisterRoutes(limited)
	controllers.Realtime.RegisterRoutes(limited)

	return router
}
