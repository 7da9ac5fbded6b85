// dao/role_dao.go
package dao

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

// RoleDAO reads and writes the user_roles table. Roles are only ever looked
// up here, never derived.
type RoleDAO struct {
	DB *sql.DB
}

func NewRoleDAO(db *sql.DB) *RoleDAO {
	return &RoleDAO{DB: db}
}

func (dao *RoleDAO) HasRole(ctx context.Context, userID string, role model.Role) (bool, error) {
	var exists bool
	err := dao.DB.QueryRowContext(ctx, `
		select exists(select 1 from user_roles where user_id = $1 and role = $2)
	`, userID, string(role)).Scan(&exists)
	if err != nil {
		logger.Error("Failed to look up role",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("role", string(role)))
		return false, describeStoreError("look up role", err)
	}
	return exists, nil
}

// GrantRole is idempotent: granting an existing (user, role) pair leaves a
// single row.
func (dao *RoleDAO) GrantRole(ctx context.Context, userID string, role model.Role) error {
	start := time.Now()
	res, err := dao.DB.ExecContext(ctx, `
		insert into user_roles (user_id, role)
		values ($1, $2)
		on conflict (user_id, role) do nothing
	`, userID, string(role))
	if err != nil {
		logger.Error("Failed to grant role",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("role", string(role)))
		return describeStoreError("grant role", err)
	}

	inserted, _ := res.RowsAffected()
	logger.Info("Role granted",
		zap.String("userID", userID),
		zap.String("role", string(role)),
		zap.Bool("alreadyGranted", inserted == 0),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// RevokeRole deletes the pair. Revoking a role the user does not hold is not
// an error.
func (dao *RoleDAO) RevokeRole(ctx context.Context, userID string, role model.Role) error {
	start := time.Now()
	res, err := dao.DB.ExecContext(ctx, `
		delete from user_roles where user_id = $1 and role = $2
	`, userID, string(role))
	if err != nil {
		logger.Error("Failed to revoke role",
			zap.Error(err),
			zap.String("userID", userID),
			zap.String("role", string(role)))
		return describeStoreError("revoke role", err)
	}

	removed, _ := res.RowsAffected()
	logger.Info("Role revoked",
		zap.String("userID", userID),
		zap.String("role", string(role)),
		zap.Int64("removed", removed),
		zap.Duration("duration", time.Since(start)))
	return nil
}

func (dao *RoleDAO) ListRoles(ctx context.Context, userID string) ([]model.RoleAssignment, error) {
	rows, err := dao.DB.QueryContext(ctx, `
		select user_id, role, created_at
		from user_roles
		where user_id = $1
		order by role
	`, userID)
	if err != nil {
		return nil, describeStoreError("list roles", err)
	}
	defer rows.Close()

	var assignments []model.RoleAssignment
	for rows.Next() {
		var (
			a    model.RoleAssignment
			role string
		)
		if err := rows.Scan(&a.UserID, &role, &a.CreatedAt); err != nil {
			return nil, describeStoreError("scan role", err)
		}
		a.Role = model.Role(role)
		assignments = append(assignments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, describeStoreError("list roles", err)
	}
	return assignments, nil
}
