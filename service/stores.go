// service/stores.go
package service

import (
	"context"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/dao"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

// RoleStore is the persisted user -> role mapping.
type RoleStore interface {
	HasRole(ctx context.Context, userID string, role model.Role) (bool, error)
	GrantRole(ctx context.Context, userID string, role model.Role) error
	RevokeRole(ctx context.Context, userID string, role model.Role) error
}

// ResourceStore mutates records owned by the relational store by id.
type ResourceStore interface {
	DeleteDonor(ctx context.Context, donorID string) error
	DeleteBloodRequest(ctx context.Context, requestID string) error
	UpdateBloodRequestStatus(ctx context.Context, requestID, status string) error
	SetDonorAvailability(ctx context.Context, donorID string, available bool) error
	DeleteWhere(ctx context.Context, target dao.CleanupTarget, value string) (int64, error)
}

// EventPublisher delivers realtime events without acknowledgement.
type EventPublisher interface {
	Publish(ctx context.Context, eventType string, payload interface{})
}

var (
	_ RoleStore     = (*dao.RoleDAO)(nil)
	_ ResourceStore = (*dao.ResourceDAO)(nil)
	_ RoleLister    = (*dao.RoleDAO)(nil)
)
