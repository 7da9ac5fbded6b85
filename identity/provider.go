// identity/provider.go
package identity

import (
	"context"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

// TokenResolver turns a bearer token into the identity it was issued to.
type TokenResolver interface {
	GetUser(ctx context.Context, token string) (*model.Identity, error)
}

// UserAdmin performs administrative operations on identities.
type UserAdmin interface {
	DeleteUser(ctx context.Context, userID string) error
}

// Provider is the external auth provider as seen by the gateways.
type Provider interface {
	TokenResolver
	UserAdmin
}

type provider struct {
	TokenResolver
	UserAdmin
}

// NewProvider combines a resolver and an admin client. Token resolution may
// be local while deletion always goes to the auth server.
func NewProvider(resolver TokenResolver, admin UserAdmin) Provider {
	return &provider{TokenResolver: resolver, UserAdmin: admin}
}
