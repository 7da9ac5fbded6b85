// router/router_test.go
package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/controller"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/middleware"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/router"
	mock_service "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/test/service_mock"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

func setup(t *testing.T, limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	authz := mock_service.NewMockIAuthorizationService(ctrl)
	bus := util.NewEventBus()

	controllers := &controller.Controllers{
		Gateway: controller.NewGatewayController(authz,
			mock_service.NewMockIAdminActionService(ctrl),
			mock_service.NewMockIUserDeletionService(ctrl)),
		AuditLog: controller.NewAuditLogController(authz, mock_service.NewMockService(ctrl)),
		Role:     controller.NewRoleController(authz, mock_service.NewMockIRoleService(ctrl)),
		Realtime: controller.NewRealtimeController(bus, 1),
		Health:   controller.NewHealthController(nil),
	}
	return router.SetupRouter(controllers, middleware.NewLocalLimiter(limit, time.Minute), limit, time.Minute)
}

func serve(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, nil)
	req.RemoteAddr = "192.0.2.10:5555"
	r.ServeHTTP(w, req)
	return w
}

func TestSetupRouter_PreflightOnGatewayPaths(t *testing.T) {
	r := setup(t, 100)

	for _, path := range []string{"/functions/v1/admin-action", "/functions/v1/delete-user"} {
		w := serve(r, http.MethodOptions, path)
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"), path)
		assert.Empty(t, w.Body.String(), path)
	}
}

func TestSetupRouter_UnauthenticatedPostIsRejected(t *testing.T) {
	r := setup(t, 100)

	w := serve(r, http.MethodPost, "/functions/v1/admin-action")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestSetupRouter_RateLimitedGatewayButNotHealthOrMetrics(t *testing.T) {
	r := setup(t, 1)

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/functions/v1/delete-user").Code)
	w := serve(r, http.MethodPost, "/functions/v1/delete-user")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Rate limit exceeded"}`, w.Body.String())

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/healthz").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/metrics").Code)
}
