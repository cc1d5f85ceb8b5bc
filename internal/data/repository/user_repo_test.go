package repository

import (
	"context"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecordFailedLoginBelowThreshold(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery("failed_login_attempts").
		WithArgs(int64(3), 5).
		WillReturnRows(pgxmock.NewRows([]string{"failed_login_attempts", "is_suspended"}).
			AddRow(2, false))

	attempts, suspended, err := repo.RecordFailedLogin(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 2, attempts)
	assert.False(t, suspended)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordFailedLoginAtThreshold(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery("failed_login_attempts").
		WithArgs(int64(3), 5).
		WillReturnRows(pgxmock.NewRows([]string{"failed_login_attempts", "is_suspended"}).
			AddRow(5, true))

	attempts, suspended, err := repo.RecordFailedLogin(context.Background(), 3, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, attempts)
	assert.True(t, suspended)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindByEmailNotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewUserRepository(mock, zap.NewNop())

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	user, err := repo.FindByEmail(context.Background(), "nobody@example.com")
	assert.NoError(t, err)
	assert.Nil(t, user)

	assert.NoError(t, mock.ExpectationsWereMet())
}
