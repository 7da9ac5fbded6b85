// test/mock/audit.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) Record(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditService) Recent(ctx context.Context, limit int) ([]audit.Entry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.Entry), args.Error(1)
}

// MockAuditRepository is a mock implementation of audit.Repository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Append(ctx context.Context, entry audit.Entry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockAuditRepository) Recent(ctx context.Context, limit int) ([]audit.Entry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]audit.Entry), args.Error(1)
}
