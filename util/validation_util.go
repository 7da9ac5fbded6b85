// util/validation_util.go

package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

type ValidationUtil struct {
	validate *validator.Validate
}

func NewValidationUtil() *ValidationUtil {
	return &ValidationUtil{validate: validator.New()}
}

type actionEnvelope struct {
	Action     string `validate:"required"`
	ResourceID string `validate:"required,max=128"`
}

// ValidateActionRequest checks the envelope fields every action needs.
func (v *ValidationUtil) ValidateActionRequest(req model.AdminActionRequest) error {
	env := actionEnvelope{
		Action:     string(req.Action),
		ResourceID: strings.TrimSpace(req.ResourceID),
	}
	if err := v.validate.Struct(env); err != nil {
		return fmt.Errorf("%w: %v", bc_errors.ErrInvalidRequest, err)
	}
	return nil
}

// RequireString returns data[field] as a non-empty string.
func (v *ValidationUtil) RequireString(data map[string]any, field string) (string, error) {
	raw, ok := data[field]
	if !ok || raw == nil {
		return "", fmt.Errorf("%w: %s is required", bc_errors.ErrInvalidActionData, field)
	}
	s, ok := raw.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("%w: %s must be a non-empty string", bc_errors.ErrInvalidActionData, field)
	}
	return s, nil
}

// RequireBool returns data[field] as a bool.
func (v *ValidationUtil) RequireBool(data map[string]any, field string) (bool, error) {
	raw, ok := data[field]
	if !ok || raw == nil {
		return false, fmt.Errorf("%w: %s is required", bc_errors.ErrInvalidActionData, field)
	}
	b, ok := raw.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %s must be a boolean", bc_errors.ErrInvalidActionData, field)
	}
	return b, nil
}

// RequireRole returns data[field] as an assignable role.
func (v *ValidationUtil) RequireRole(data map[string]any, field string) (model.Role, error) {
	s, err := v.RequireString(data, field)
	if err != nil {
		return "", err
	}
	role := model.Role(s)
	if !role.Valid() {
		return "", fmt.Errorf("%w: %w %q", bc_errors.ErrInvalidActionData, bc_errors.ErrInvalidRole, s)
	}
	return role, nil
}
