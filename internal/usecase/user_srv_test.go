package usecase

import (
	"context"
	"testing"

	"trip-booking/internal/data/repository"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserTestService(t *testing.T) (UserService, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	log := zap.NewNop()
	repo := repository.NewRepository(mock, log)
	return NewUserService(repo, log), mock
}

func TestDeactivateAccount(t *testing.T) {
	svc, mock := newUserTestService(t)
	user := testUser(t, "correct horse")

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(user.ID).
		WillReturnRows(userRowsFor(user))
	mock.ExpectExec("UPDATE users").
		WithArgs(user.ID, user.Name, user.Email, pgxmock.AnyArg(), false, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := svc.DeactivateAccount(context.Background(), user.ID)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateAccountAlreadyDeactivated(t *testing.T) {
	svc, mock := newUserTestService(t)
	user := testUser(t, "correct horse")
	user.IsActive = false

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(user.ID).
		WillReturnRows(userRowsFor(user))

	err := svc.DeactivateAccount(context.Background(), user.ID)
	assertKind(t, err, KindConflict)
	assert.Contains(t, err.Error(), "already deactivated")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeactivateAccountUnknownUser(t *testing.T) {
	svc, mock := newUserTestService(t)

	mock.ExpectQuery("FROM users WHERE id").
		WithArgs(int64(99)).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "uuid", "name", "email", "password", "phone", "role",
			"failed_login_attempts", "is_suspended", "is_active", "created_at", "updated_at",
		}))

	err := svc.DeactivateAccount(context.Background(), int64(99))
	assertKind(t, err, KindNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
