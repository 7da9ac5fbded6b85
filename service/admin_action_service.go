// service/admin_action_service.go
package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/audit"
	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/metrics"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/util"
)

// IAdminActionService runs one privileged action on behalf of an admin.
type IAdminActionService interface {
	Execute(ctx context.Context, actor model.Identity, req model.AdminActionRequest) (*model.ActionOutcome, error)
}

// preparedAction is a validated action whose mutation has not run yet.
type preparedAction struct {
	mutate  func(ctx context.Context) error
	outcome model.ActionOutcome
	event   *model.DonorAvailabilityEvent
}

// actionHandler validates the request's data and prepares the mutation. It
// must not touch the store.
type actionHandler func(req model.AdminActionRequest) (*preparedAction, error)

type AdminActionService struct {
	roles          RoleStore
	resources      ResourceStore
	auditService   audit.Service
	validationUtil *util.ValidationUtil
	publisher      EventPublisher
	handlers       map[model.AdminAction]actionHandler
}

var _ IAdminActionService = &AdminActionService{}

func NewAdminActionService(
	roles RoleStore,
	resources ResourceStore,
	auditService audit.Service,
	validationUtil *util.ValidationUtil,
	publisher EventPublisher,
) *AdminActionService {
	s := &AdminActionService{
		roles:          roles,
		resources:      resources,
		auditService:   auditService,
		validationUtil: validationUtil,
		publisher:      publisher,
	}
	s.handlers = map[model.AdminAction]actionHandler{
		model.ActionDeleteBloodRequest:       s.deleteBloodRequest,
		model.ActionDeleteDonor:              s.deleteDonor,
		model.ActionUpdateBloodRequestStatus: s.updateBloodRequestStatus,
		model.ActionToggleDonorAvailability:  s.toggleDonorAvailability,
		model.ActionGrantRole:                s.grantRole,
		model.ActionRevokeRole:               s.revokeRole,
	}
	return s
}

// SupportedActions lists the actions in the dispatch table, sorted.
func (s *AdminActionService) SupportedActions() []model.AdminAction {
	actions := make([]model.AdminAction, 0, len(s.handlers))
	for a := range s.handlers {
		actions = append(actions, a)
	}
	slices.Sort(actions)
	return actions
}

// Execute dispatches req. The mutation must complete before the audit entry
// is written; a failed audit write is logged and does not change the result.
func (s *AdminActionService) Execute(ctx context.Context, actor model.Identity, req model.AdminActionRequest) (*model.ActionOutcome, error) {
	start := time.Now()
	action := string(req.Action)
	req.ResourceID = strings.TrimSpace(req.ResourceID)

	handler, ok := s.handlers[req.Action]
	if !ok {
		metrics.ObserveAction("unknown", metrics.OutcomeRejected)
		return nil, fmt.Errorf("%w: %q (supported: %v)", bc_errors.ErrUnknownAction, action, s.SupportedActions())
	}

	if err := s.validationUtil.ValidateActionRequest(req); err != nil {
		metrics.ObserveAction(action, metrics.OutcomeRejected)
		return nil, err
	}

	prepared, err := handler(req)
	if err != nil {
		metrics.ObserveAction(action, metrics.OutcomeRejected)
		return nil, err
	}

	if err := prepared.mutate(ctx); err != nil {
		metrics.ObserveAction(action, metrics.OutcomeFailed)
		logger.Error("Admin action failed",
			zap.Error(err),
			zap.String("action", action),
			zap.String("resourceID", req.ResourceID),
			zap.String("actorID", actor.ID))
		return nil, &bc_errors.MutationError{Action: action, Err: err}
	}

	s.recordAudit(ctx, actor, req, prepared.outcome.Details)

	if prepared.event != nil && s.publisher != nil {
		s.publisher.Publish(ctx, util.EventDonorAvailability, *prepared.event)
	}

	metrics.ObserveAction(action, metrics.OutcomeSuccess)
	logger.Info("Admin action completed",
		zap.String("action", action),
		zap.String("resourceID", req.ResourceID),
		zap.String("actorID", actor.ID),
		zap.Duration("duration", time.Since(start)))

	outcome := prepared.outcome
	return &outcome, nil
}

func (s *AdminActionService) recordAudit(ctx context.Context, actor model.Identity, req model.AdminActionRequest, details map[string]any) {
	entry := audit.Entry{
		ActorID:      actor.ID,
		ActorEmail:   actor.Email,
		Action:       string(req.Action),
		ResourceType: req.ResourceType,
		ResourceID:   req.ResourceID,
		Details:      details,
	}
	if err := s.auditService.Record(ctx, entry); err != nil {
		metrics.AuditWriteFailed()
		logger.Error("Failed to write audit entry",
			zap.Error(err),
			zap.String("action", entry.Action),
			zap.String("resourceID", entry.ResourceID),
			zap.String("actorID", entry.ActorID))
	}
}

func (s *AdminActionService) deleteBloodRequest(req model.AdminActionRequest) (*preparedAction, error) {
	id := req.ResourceID
	return &preparedAction{
		mutate: func(ctx context.Context) error {
			return s.resources.DeleteBloodRequest(ctx, id)
		},
		outcome: model.ActionOutcome{
			Message: "Blood request deleted successfully",
			Details: map[string]any{"request_id": id},
		},
	}, nil
}

func (s *AdminActionService) deleteDonor(req model.AdminActionRequest) (*preparedAction, error) {
	id := req.ResourceID
	return &preparedAction{
		mutate: func(ctx context.Context) error {
			return s.resources.DeleteDonor(ctx, id)
		},
		outcome: model.ActionOutcome{
			Message: "Donor deleted successfully",
			Details: map[string]any{"donor_id": id},
		},
		event: &model.DonorAvailabilityEvent{Event: model.DonorEventDelete, DonorID: id},
	}, nil
}

func (s *AdminActionService) updateBloodRequestStatus(req model.AdminActionRequest) (*preparedAction, error) {
	status, err := s.validationUtil.RequireString(req.Data, "status")
	if err != nil {
		return nil, err
	}
	id := req.ResourceID
	return &preparedAction{
		mutate: func(ctx context.Context) error {
			return s.resources.UpdateBloodRequestStatus(ctx, id, status)
		},
		outcome: model.ActionOutcome{
			Message: "Blood request status updated successfully",
			Details: map[string]any{"request_id": id, "new_status": status},
		},
	}, nil
}

func (s *AdminActionService) toggleDonorAvailability(req model.AdminActionRequest) (*preparedAction, error) {
	available, err := s.validationUtil.RequireBool(req.Data, "is_available")
	if err != nil {
		return nil, err
	}
	id := req.ResourceID
	return &preparedAction{
		mutate: func(ctx context.Context) error {
			return s.resources.SetDonorAvailability(ctx, id, available)
		},
		outcome: model.ActionOutcome{
			Message: "Donor availability updated successfully",
			Details: map[string]any{"donor_id": id, "is_available": available},
		},
		event: &model.DonorAvailabilityEvent{Event: model.DonorEventUpdate, DonorID: id, IsAvailable: &available},
	}, nil
}

func (s *AdminActionService) grantRole(req model.AdminActionRequest) (*preparedAction, error) {
	role, err := s.validationUtil.RequireRole(req.Data, "role")
	if err != nil {
		return nil, err
	}
	userID := req.ResourceID
	return &preparedAction{
		mutate: func(ctx context.Context) error {
			return s.roles.GrantRole(ctx, userID, role)
		},
		outcome: model.ActionOutcome{
			Message: "Role granted successfully",
			Details: map[string]any{"user_id": userID, "role": string(role)},
		},
	}, nil
}

func (s *AdminActionService) revokeRole(req model.AdminActionRequest) (*preparedAction, error) {
	role, err := s.validationUtil.RequireRole(req.Data, "role")
	if err != nil {
		return nil, err
	}
	userID := req.ResourceID
	return &preparedAction{
		mutate: func(ctx context.Context) error {
			return s.roles.RevokeRole(ctx, userID, role)
		},
		outcome: model.ActionOutcome{
			Message: "Role revoked successfully",
			Details: map[string]any{"user_id": userID, "role": string(role)},
		},
	}, nil
}
