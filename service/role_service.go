// service/role_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

// IRoleService defines the read side of role assignments
type IRoleService interface {
	ListUserRoles(ctx context.Context, userID string) ([]model.RoleAssignment, error)
}

// RoleLister lists the role rows held by a user.
type RoleLister interface {
	ListRoles(ctx context.Context, userID string) ([]model.RoleAssignment, error)
}

type RoleService struct {
	roles RoleLister
}

var _ IRoleService = &RoleService{}

func NewRoleService(roles RoleLister) *RoleService {
	return &RoleService{roles: roles}
}

// ListUserRoles returns the user's assignments; an unknown user has none.
func (s *RoleService) ListUserRoles(ctx context.Context, userID string) ([]model.RoleAssignment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, bc_errors.ErrUserIDRequired
	}
	// user ids are auth-provider uuids; anything else cannot hold a role
	if _, err := uuid.Parse(userID); err != nil {
		return nil, fmt.Errorf("%w: %v", bc_errors.ErrInvalidRequest, err)
	}

	assignments, err := s.roles.ListRoles(ctx, userID)
	if err != nil {
		return nil, err
	}
	if assignments == nil {
		assignments = []model.RoleAssignment{}
	}
	return assignments, nil
}
