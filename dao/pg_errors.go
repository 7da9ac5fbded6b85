// dao/pg_errors.go
package dao

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
)

const (
	pgErrUniqueViolation     = "23505"
	pgErrForeignKeyViolation = "23503"
	pgErrCheckViolation      = "23514"
	pgErrInvalidText         = "22P02"
)

func maybePgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// describeStoreError keeps the store's own message for constraint failures so
// it can be surfaced to the caller unchanged.
func describeStoreError(op string, err error) error {
	if pgErr, ok := maybePgError(err); ok {
		switch pgErr.Code {
		case pgErrUniqueViolation, pgErrForeignKeyViolation, pgErrCheckViolation, pgErrInvalidText:
			return fmt.Errorf("%s: %w", pgErr.Message, err)
		}
	}
	return fmt.Errorf("%s: %w: %w", op, bc_errors.ErrDatabaseOperation, err)
}
