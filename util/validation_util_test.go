// util/validation_util_test.go
package util_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

func TestValidationUtil_ValidateActionRequest(t *testing.T) {
	v := util.NewValidationUtil()

	assert.NoError(t, v.ValidateActionRequest(model.AdminActionRequest{Action: model.ActionDeleteDonor, ResourceID: "42"}))
	assert.ErrorIs(t, v.ValidateActionRequest(model.AdminActionRequest{Action: model.ActionDeleteDonor}), bc_errors.ErrInvalidRequest)
	assert.ErrorIs(t, v.ValidateActionRequest(model.AdminActionRequest{ResourceID: "42"}), bc_errors.ErrInvalidRequest)
	assert.ErrorIs(t, v.ValidateActionRequest(model.AdminActionRequest{
		Action:     model.ActionDeleteDonor,
		ResourceID: strings.Repeat("x", 129),
	}), bc_errors.ErrInvalidRequest)
}

func TestValidationUtil_RequireFields(t *testing.T) {
	v := util.NewValidationUtil()
	data := map[string]any{
		"status":       "in_progress",
		"blank":        " ",
		"is_available": false,
		"number":       1.0,
		"role":         "moderator",
		"bad_role":     "owner",
	}

	s, err := v.RequireString(data, "status")
	require.NoError(t, err)
	assert.Equal(t, "in_progress", s)

	_, err = v.RequireString(data, "blank")
	assert.ErrorIs(t, err, bc_errors.ErrInvalidActionData)
	_, err = v.RequireString(data, "number")
	assert.ErrorIs(t, err, bc_errors.ErrInvalidActionData)
	_, err = v.RequireString(nil, "status")
	assert.ErrorIs(t, err, bc_errors.ErrInvalidActionData)

	b, err := v.RequireBool(data, "is_available")
	require.NoError(t, err)
	assert.False(t, b)
	_, err = v.RequireBool(data, "status")
	assert.ErrorIs(t, err, bc_errors.ErrInvalidActionData)

	role, err := v.RequireRole(data, "role")
	require.NoError(t, err)
	assert.Equal(t, model.RoleModerator, role)
	_, err = v.RequireRole(data, "bad_role")
	assert.ErrorIs(t, err, bc_errors.ErrInvalidActionData)
	assert.ErrorIs(t, err, bc_errors.ErrInvalidRole)
}
