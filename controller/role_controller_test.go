// controller/role_controller_test.go
package controller_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/controller"
	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
	mock_service "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/test/service_mock"
)

func TestRoleController(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockAuthz := mock_service.NewMockIAuthorizationService(ctrl)
	mockRoleService := mock_service.NewMockIRoleService(ctrl)
	roleController := controller.NewRoleController(mockAuthz, mockRoleService)
	router := setupRouter()
	roleController.RegisterRoutes(router.Group("/"))

	const userID = "0b6f1c2e-3f4a-4a1b-9c2d-1e2f3a4b5c6d"

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("Authorization", "Bearer admin-token")
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("ListUserRoles_Success", func(t *testing.T) {
		mockAuthz.EXPECT().AuthorizeAdmin(gomock.Any(), "admin-token").Return(adminIdentity, nil)
		mockRoleService.EXPECT().
			ListUserRoles(gomock.Any(), userID).
			Return([]model.RoleAssignment{{UserID: userID, Role: model.RoleModerator}}, nil)

		w := get("/api/v1/users/" + userID + "/roles")

		require.Equal(t, http.StatusOK, w.Code)
		var roles []model.RoleAssignment
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &roles))
		require.Len(t, roles, 1)
		assert.Equal(t, model.RoleModerator, roles[0].Role)
	})

	t.Run("ListUserRoles_InvalidID", func(t *testing.T) {
		mockAuthz.EXPECT().AuthorizeAdmin(gomock.Any(), "admin-token").Return(adminIdentity, nil)
		mockRoleService.EXPECT().
			ListUserRoles(gomock.Any(), "not-a-uuid").
			Return(nil, fmt.Errorf("%w: invalid UUID length: 10", bc_errors.ErrInvalidRequest))

		w := get("/api/v1/users/not-a-uuid/roles")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ListUserRoles_StoreFailure", func(t *testing.T) {
		mockAuthz.EXPECT().AuthorizeAdmin(gomock.Any(), "admin-token").Return(adminIdentity, nil)
		mockRoleService.EXPECT().
			ListUserRoles(gomock.Any(), userID).
			Return(nil, fmt.Errorf("list roles: %w", bc_errors.ErrDatabaseOperation))

		w := get("/api/v1/users/" + userID + "/roles")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
