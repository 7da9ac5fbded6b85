// audit/postgres.go
package audit

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Append(ctx context.Context, entry Entry) error {
	details := []byte("{}")
	if len(entry.Details) > 0 {
		b, err := json.Marshal(entry.Details)
		if err != nil {
			return fmt.Errorf("marshal details: %w", err)
		}
		details = b
	}

	_, err := r.db.ExecContext(ctx, `
		insert into audit_logs (id, actor_id, actor_email, action, resource_type, resource_id, details, created_at)
		values ($1, $2, $3, $4, $5, $6, $7::jsonb, $8)
	`, entry.ID, entry.ActorID, entry.ActorEmail, entry.Action, entry.ResourceType, entry.ResourceID, string(details), entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit entry: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Recent(ctx context.Context, limit int) ([]Entry, error) {
	rows, err := r.db.QueryContext(ctx, `
		select id, actor_id, coalesce(actor_email, ''), action, coalesce(resource_type, ''),
		       coalesce(resource_id, ''), details, created_at
		from audit_logs
		order by created_at desc
		limit $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			e          Entry
			rawDetails []byte
		)
		if err := rows.Scan(&e.ID, &e.ActorID, &e.ActorEmail, &e.Action, &e.ResourceType, &e.ResourceID, &rawDetails, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan audit entry: %w", err)
		}
		e.Details = map[string]any{}
		if len(rawDetails) > 0 {
			if err := json.Unmarshal(rawDetails, &e.Details); err != nil {
				return nil, fmt.Errorf("decode audit details: %w", err)
			}
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	return entries, nil
}
