// service/user_deletion_service.go
package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/audit"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/dao"
	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/identity"
	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/metrics"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

// DefaultCleanupPlan lists the rows that reference a user, dependents first
// and the profile last.
var DefaultCleanupPlan = []dao.CleanupTarget{
	{Table: "user_roles", Column: "user_id"},
	{Table: "notifications", Column: "user_id"},
	{Table: "blood_requests", Column: "user_id"},
	{Table: "donors", Column: "user_id"},
	{Table: "user_profiles", Column: "id"},
}

// UserDeletionReport describes what cleanup managed to remove.
type UserDeletionReport struct {
	UserID        string            `json:"user_id"`
	CleanedTables []string          `json:"cleaned_tables"`
	Failures      map[string]string `json:"cleanup_failures,omitempty"`
}

type IUserDeletionService interface {
	DeleteUser(ctx context.Context, actor model.Identity, userID string) (*UserDeletionReport, error)
}

type UserDeletionService struct {
	resources    ResourceStore
	users        identity.UserAdmin
	auditService audit.Service
	plan         []dao.CleanupTarget
}

var _ IUserDeletionService = &UserDeletionService{}

func NewUserDeletionService(resources ResourceStore, users identity.UserAdmin, auditService audit.Service) *UserDeletionService {
	return &UserDeletionService{
		resources:    resources,
		users:        users,
		auditService: auditService,
		plan:         DefaultCleanupPlan,
	}
}

// DeleteUser removes dependent rows best-effort, then deletes the identity.
// Cleanup failures are warnings; an identity delete failure is returned and
// the completed cleanup is not rolled back.
func (s *UserDeletionService) DeleteUser(ctx context.Context, actor model.Identity, userID string) (*UserDeletionReport, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, bc_errors.ErrUserIDRequired
	}

	start := time.Now()
	report := &UserDeletionReport{UserID: userID}

	for _, target := range s.plan {
		n, err := s.resources.DeleteWhere(ctx, target, userID)
		if err != nil {
			metrics.CleanupFailed(target.Table)
			logger.Warn("Failed to clean up user rows, continuing",
				zap.Error(err),
				zap.String("table", target.Table),
				zap.String("userID", userID))
			if report.Failures == nil {
				report.Failures = make(map[string]string)
			}
			report.Failures[target.Table] = err.Error()
			continue
		}
		report.CleanedTables = append(report.CleanedTables, target.Table)
		logger.Debug("Cleaned up user rows",
			zap.String("table", target.Table),
			zap.String("userID", userID),
			zap.Int64("rows", n))
	}

	if err := s.users.DeleteUser(ctx, userID); err != nil {
		metrics.ObserveAction(string(model.ActionDeleteUser), metrics.OutcomeFailed)
		logger.Error("Failed to delete user identity",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("actorID", actor.ID))
		return report, fmt.Errorf("delete identity %s: %w", userID, err)
	}

	details := map[string]any{
		"user_id":        userID,
		"cleaned_tables": report.CleanedTables,
	}
	if len(report.Failures) > 0 {
		details["cleanup_failures"] = report.Failures
	}
	if err := s.auditService.Record(ctx, audit.Entry{
		ActorID:      actor.ID,
		ActorEmail:   actor.Email,
		Action:       string(model.ActionDeleteUser),
		ResourceType: "user",
		ResourceID:   userID,
		Details:      details,
	}); err != nil {
		metrics.AuditWriteFailed()
		logger.Error("Failed to write audit entry", zap.Error(err), zap.String("userID", userID))
	}

	metrics.ObserveAction(string(model.ActionDeleteUser), metrics.OutcomeSuccess)
	logger.Info("User deleted",
		zap.String("userID", userID),
		zap.String("actorID", actor.ID),
		zap.Int("cleanupFailures", len(report.Failures)),
		zap.Duration("duration", time.Since(start)))
	return report, nil
}
