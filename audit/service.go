// audit/service.go
package audit

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
)

type Service interface {
	Record(ctx context.Context, entry Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// Record stamps id and timestamp when absent and appends the entry.
func (s *service) Record(ctx context.Context, entry Entry) error {
	if strings.TrimSpace(entry.ID) == "" {
		entry.ID = uuid.NewString()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = s.now().UTC()
	}
	if entry.Details == nil {
		entry.Details = map[string]any{}
	}
	if err := s.repo.Append(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", bc_errors.ErrAuditWrite, err)
	}
	return nil
}

// Recent lists entries newest-first; limit is clamped to 1..MaxRecent.
func (s *service) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 || limit > MaxRecent {
		limit = MaxRecent
	}
	return s.repo.Recent(ctx, limit)
}
