// dao/resource_dao_test.go
package dao_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/dao"
	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
)

func TestResourceDAO_DeleteDonor(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	resourceDAO := dao.NewResourceDAO(db)
	query := regexp.QuoteMeta(`delete from donors where id = $1`)

	mock.ExpectExec(query).WithArgs("42").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, resourceDAO.DeleteDonor(context.Background(), "42"))

	mock.ExpectExec(query).WithArgs("43").WillReturnResult(sqlmock.NewResult(0, 0))
	err = resourceDAO.DeleteDonor(context.Background(), "43")
	assert.ErrorIs(t, err, bc_errors.ErrResourceNotFound)
	assert.ErrorContains(t, err, "donor 43 not found")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceDAO_DeleteBloodRequest(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`delete from blood_requests where id = $1`)).
		WithArgs("r-1").
		WillReturnError(errors.New("connection reset by peer"))

	err = dao.NewResourceDAO(db).DeleteBloodRequest(context.Background(), "r-1")

	assert.ErrorContains(t, err, "delete blood request")
	assert.ErrorContains(t, err, "connection reset by peer")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceDAO_UpdateBloodRequestStatus(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	resourceDAO := dao.NewResourceDAO(db)
	query := regexp.QuoteMeta(`update blood_requests set status = $2, updated_at = now() where id = $1`)

	mock.ExpectExec(query).WithArgs("r-1", "fulfilled").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, resourceDAO.UpdateBloodRequestStatus(context.Background(), "r-1", "fulfilled"))

	checkErr := &pgconn.PgError{
		Code:    "23514",
		Message: `new row for relation "blood_requests" violates check constraint "blood_requests_status_check"`,
	}
	mock.ExpectExec(query).WithArgs("r-1", "lost").WillReturnError(checkErr)
	err = resourceDAO.UpdateBloodRequestStatus(context.Background(), "r-1", "lost")
	require.Error(t, err)
	assert.True(t, errors.Is(err, checkErr))
	assert.Contains(t, err.Error(), "violates check constraint")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceDAO_SetDonorAvailability(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`update donors set is_available = $2, updated_at = now() where id = $1`)).
		WithArgs("d-1", false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, dao.NewResourceDAO(db).SetDonorAvailability(context.Background(), "d-1", false))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResourceDAO_DeleteWhere(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`delete from notifications where user_id = $1`)).
		WithArgs("u-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := dao.NewResourceDAO(db).DeleteWhere(context.Background(),
		dao.CleanupTarget{Table: "notifications", Column: "user_id"}, "u-1")

	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
	assert.NoError(t, mock.ExpectationsWereMet())
}
