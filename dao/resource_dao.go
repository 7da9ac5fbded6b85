// dao/resource_dao.go
package dao

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	logger "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/logging"
)

// CleanupTarget names a table and the column holding a user's id in it.
type CleanupTarget struct {
	Table  string
	Column string
}

// ResourceDAO performs the id-addressed mutations the gateway is allowed to
// make on records it does not own.
type ResourceDAO struct {
	DB *sql.DB
}

func NewResourceDAO(db *sql.DB) *ResourceDAO {
	return &ResourceDAO{DB: db}
}

func (dao *ResourceDAO) DeleteDonor(ctx context.Context, donorID string) error {
	return dao.execByID(ctx, "delete donor", "donor", donorID,
		`delete from donors where id = $1`, donorID)
}

func (dao *ResourceDAO) DeleteBloodRequest(ctx context.Context, requestID string) error {
	return dao.execByID(ctx, "delete blood request", "blood request", requestID,
		`delete from blood_requests where id = $1`, requestID)
}

func (dao *ResourceDAO) UpdateBloodRequestStatus(ctx context.Context, requestID, status string) error {
	return dao.execByID(ctx, "update blood request status", "blood request", requestID,
		`update blood_requests set status = $2, updated_at = now() where id = $1`, requestID, status)
}

func (dao *ResourceDAO) SetDonorAvailability(ctx context.Context, donorID string, available bool) error {
	return dao.execByID(ctx, "update donor availability", "donor", donorID,
		`update donors set is_available = $2, updated_at = now() where id = $1`, donorID, available)
}

// DeleteWhere removes every row of target whose column equals value. The
// target must come from a fixed plan, never from request input.
func (dao *ResourceDAO) DeleteWhere(ctx context.Context, target CleanupTarget, value string) (int64, error) {
	query := fmt.Sprintf(`delete from %s where %s = $1`, target.Table, target.Column)
	res, err := dao.DB.ExecContext(ctx, query, value)
	if err != nil {
		return 0, describeStoreError("delete from "+target.Table, err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func (dao *ResourceDAO) execByID(ctx context.Context, op, kind, id, query string, args ...any) error {
	start := time.Now()
	res, err := dao.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.Error("Failed to "+op,
			zap.Error(err),
			zap.String("id", id),
			zap.Duration("duration", time.Since(start)))
		return describeStoreError(op, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return describeStoreError(op, err)
	}
	if n == 0 {
		return fmt.Errorf("%s %s not found: %w", kind, id, bc_errors.ErrResourceNotFound)
	}

	logger.Info("Resource mutated",
		zap.String("op", op),
		zap.String("id", id),
		zap.Duration("duration", time.Since(start)))
	return nil
}
