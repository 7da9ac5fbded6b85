// dao/role_dao_test.go
package dao_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/dao"
	bc_errors "github.com/AntazSamir/bd-lifeline-connect-35674-sub000/errors"
	"github.com/AntazSamir/bd-lifeline-connect-35674-sub000/model"
)

func TestRoleDAO_HasRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	roleDAO := dao.NewRoleDAO(db)
	query := regexp.QuoteMeta(`select exists(select 1 from user_roles where user_id = $1 and role = $2)`)

	mock.ExpectQuery(query).WithArgs("u-1", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	ok, err := roleDAO.HasRole(context.Background(), "u-1", model.RoleAdmin)
	require.NoError(t, err)
	assert.True(t, ok)

	mock.ExpectQuery(query).WithArgs("u-2", "admin").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
	ok, err = roleDAO.HasRole(context.Background(), "u-2", model.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	mock.ExpectQuery(query).WithArgs("u-3", "admin").WillReturnError(errors.New("connection refused"))
	_, err = roleDAO.HasRole(context.Background(), "u-3", model.RoleAdmin)
	assert.ErrorContains(t, err, "look up role")
	assert.ErrorIs(t, err, bc_errors.ErrDatabaseOperation)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleDAO_GrantRoleIsIdempotent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	roleDAO := dao.NewRoleDAO(db)
	query := regexp.QuoteMeta(`on conflict (user_id, role) do nothing`)

	mock.ExpectExec(query).WithArgs("u-1", "moderator").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(query).WithArgs("u-1", "moderator").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, roleDAO.GrantRole(context.Background(), "u-1", model.RoleModerator))
	require.NoError(t, roleDAO.GrantRole(context.Background(), "u-1", model.RoleModerator))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleDAO_RevokeMissingRoleIsNotAnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(`delete from user_roles where user_id = $1 and role = $2`)).
		WithArgs("u-1", "admin").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = dao.NewRoleDAO(db).RevokeRole(context.Background(), "u-1", model.RoleAdmin)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoleDAO_ListRoles(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	granted := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(`from user_roles`)).
		WithArgs("u-1").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "role", "created_at"}).
			AddRow("u-1", "admin", granted).
			AddRow("u-1", "moderator", granted))

	roles, err := dao.NewRoleDAO(db).ListRoles(context.Background(), "u-1")

	require.NoError(t, err)
	require.Len(t, roles, 2)
	assert.Equal(t, model.RoleAdmin, roles[0].Role)
	assert.Equal(t, model.RoleModerator, roles[1].Role)
	assert.Equal(t, granted, roles[1].CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}
