// service/authorization_service.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/identity"
	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

// IAuthorizationService establishes who is calling and whether they are an
// admin.
type IAuthorizationService interface {
	AuthorizeAdmin(ctx context.Context, token string) (*model.Identity, error)
}

type AuthorizationService struct {
	resolver identity.TokenResolver
	roles    RoleStore
}

var _ IAuthorizationService = &AuthorizationService{}

func NewAuthorizationService(resolver identity.TokenResolver, roles RoleStore) *AuthorizationService {
	return &AuthorizationService{resolver: resolver, roles: roles}
}

// AuthorizeAdmin returns ErrUnauthorized when the token does not resolve to
// an identity and ErrForbidden when the identity has no admin role row.
func (s *AuthorizationService) AuthorizeAdmin(ctx context.Context, token string) (*model.Identity, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, bc_errors.ErrUnauthorized
	}

	caller, err := s.resolver.GetUser(ctx, token)
	if err != nil {
		if !errors.Is(err, bc_errors.ErrInvalidToken) {
			logger.Error("Auth provider could not resolve token", zap.Error(err))
		}
		return nil, fmt.Errorf("%w: %v", bc_errors.ErrUnauthorized, err)
	}
	if caller == nil || caller.ID == "" {
		return nil, bc_errors.ErrUnauthorized
	}

	isAdmin, err := s.roles.HasRole(ctx, caller.ID, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("check admin role: %w", err)
	}
	if !isAdmin {
		logger.Warn("Non-admin attempted privileged action", zap.String("userID", caller.ID))
		return nil, bc_errors.ErrForbidden
	}

	return caller, nil
}
