// test/mock/identity.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

// MockIdentityProvider is a mock implementation of identity.Provider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) GetUser(ctx context.Context, token string) (*model.Identity, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Identity), args.Error(1)
}

func (m *MockIdentityProvider) DeleteUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}
