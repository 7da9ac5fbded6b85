// test/mock/store.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/dao"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

// MockRoleStore is a mock implementation of service.RoleStore
type MockRoleStore struct {
	mock.Mock
}

func (m *MockRoleStore) HasRole(ctx context.Context, userID string, role model.Role) (bool, error) {
	args := m.Called(ctx, userID, role)
	return args.Bool(0), args.Error(1)
}

func (m *MockRoleStore) GrantRole(ctx context.Context, userID string, role model.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

func (m *MockRoleStore) RevokeRole(ctx context.Context, userID string, role model.Role) error {
	args := m.Called(ctx, userID, role)
	return args.Error(0)
}

// MockResourceStore is a mock implementation of service.ResourceStore
type MockResourceStore struct {
	mock.Mock
}

func (m *MockResourceStore) DeleteDonor(ctx context.Context, donorID string) error {
	args := m.Called(ctx, donorID)
	return args.Error(0)
}

func (m *MockResourceStore) DeleteBloodRequest(ctx context.Context, requestID string) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func (m *MockResourceStore) UpdateBloodRequestStatus(ctx context.Context, requestID, status string) error {
	args := m.Called(ctx, requestID, status)
	return args.Error(0)
}

func (m *MockResourceStore) SetDonorAvailability(ctx context.Context, donorID string, available bool) error {
	args := m.Called(ctx, donorID, available)
	return args.Error(0)
}

func (m *MockResourceStore) DeleteWhere(ctx context.Context, target dao.CleanupTarget, value string) (int64, error) {
	args := m.Called(ctx, target, value)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventPublisher is a mock implementation of service.EventPublisher
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(ctx context.Context, eventType string, payload interface{}) {
	m.Called(ctx, eventType, payload)
}
