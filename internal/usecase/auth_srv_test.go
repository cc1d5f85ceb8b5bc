package usecase

import (
	"context"
	"testing"
	"time"

	"trip-booking/internal/data/entity"
	"trip-booking/internal/data/repository"
	"trip-booking/internal/dto/request"
	"trip-booking/pkg/utils"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeMailer records sends on a channel so async delivery can be
// observed without sleeping.
type fakeMailer struct {
	sent chan string
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{sent: make(chan string, 1)}
}

func (m *fakeMailer) Send(toEmail, toName, subject, plainText, htmlContent string) error {
	m.sent <- toEmail
	return nil
}

func testAuthConfig() *utils.Config {
	return &utils.Config{
		JWT: utils.JWTConfig{
			Secret:      "test-secret",
			Issuer:      "trip-booking-test",
			ExpiryHours: 1,
		},
		Auth: utils.AuthConfig{
			MaxFailedLogins:  5,
			OTPExpiryMinutes: 10,
			OTPLength:        6,
		},
	}
}

func newAuthTestService(t *testing.T) (AuthService, pgxmock.PgxPoolIface, *fakeMailer) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	log := zap.NewNop()
	repo := repository.NewRepository(mock, log)
	mail := newFakeMailer()
	return NewAuthService(testAuthConfig(), repo, mail, log), mock, mail
}

func userRowsFor(user *entity.User) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "uuid", "name", "email", "password", "phone", "role",
		"failed_login_attempts", "is_suspended", "is_active", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.UUID, user.Name, user.Email, user.PasswordHash, user.Phone, user.Role,
		user.FailedLoginAttempts, user.IsSuspended, user.IsActive, now, now,
	)
}

func testUser(t *testing.T, password string) *entity.User {
	t.Helper()

	hash, err := utils.HashPassword(password)
	require.NoError(t, err)

	user := &entity.User{
		Name:         "Rani",
		Email:        "rani@example.com",
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
		IsActive:     true,
	}
	user.ID = 11
	user.UUID = "3e8b1f6a-9c2d-4e7f-b5a0-1d4c8e6f2a93"
	return user
}

func TestLogin(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)
	user := testUser(t, "correct horse")

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(userRowsFor(user))

	resp, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "correct horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.UUID, resp.UserUUID)
	assert.NotEmpty(t, resp.Token)
	assert.True(t, resp.ExpiresAt.After(time.Now()))

	// Token carries the public uuid and role only
	claims, err := utils.ParseToken(testAuthConfig().JWT, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, user.UUID, claims.UserUUID)
	assert.Equal(t, "customer", claims.Role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPasswordIncrementsCounter(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)
	user := testUser(t, "correct horse")

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(userRowsFor(user))
	mock.ExpectQuery("failed_login_attempts").
		WithArgs(user.ID, 5).
		WillReturnRows(pgxmock.NewRows([]string{"failed_login_attempts", "is_suspended"}).
			AddRow(1, false))

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "wrong",
	})
	assertKind(t, err, KindUnauthenticated)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginSuspendsAtThreshold(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)
	user := testUser(t, "correct horse")
	user.FailedLoginAttempts = 4

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(userRowsFor(user))
	mock.ExpectQuery("failed_login_attempts").
		WithArgs(user.ID, 5).
		WillReturnRows(pgxmock.NewRows([]string{"failed_login_attempts", "is_suspended"}).
			AddRow(5, true))

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "wrong",
	})
	assertKind(t, err, KindUnauthenticated)
	assert.Contains(t, err.Error(), "suspended")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginSuspendedAccountRejected(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)
	user := testUser(t, "correct horse")
	user.IsSuspended = true

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(userRowsFor(user))

	// Even the right password does not get past suspension
	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "correct horse",
	})
	assertKind(t, err, KindUnauthenticated)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assertKind(t, err, KindUnauthenticated)
	assert.Contains(t, err.Error(), "invalid email or password")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginResetsCounterOnSuccess(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)
	user := testUser(t, "correct horse")
	user.FailedLoginAttempts = 3

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(userRowsFor(user))
	mock.ExpectExec("failed_login_attempts = 0").
		WithArgs(user.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Email:    user.Email,
		Password: "correct horse",
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)
	user := testUser(t, "correct horse")

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(userRowsFor(user))

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Someone Else",
		Email:    user.Email,
		Password: "another secret",
	})
	assertKind(t, err, KindConflict)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("new@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))
	mock.ExpectQuery("INSERT INTO users").
		WithArgs(pgxmock.AnyArg(), "Budi", "new@example.com", pgxmock.AnyArg(),
			pgxmock.AnyArg(), entity.RoleCustomer, 0, false, true, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(12)))

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Name:     "Budi",
		Email:    "new@example.com",
		Password: "a long password",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, resp.Role)
	assert.NotEmpty(t, resp.UserUUID)
	assert.Empty(t, resp.Token)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPasswordUnknownEmailStaysQuiet(t *testing.T) {
	svc, mock, mail := newAuthTestService(t)

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	err := svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{
		Email: "nobody@example.com",
	})
	assert.NoError(t, err)

	select {
	case addr := <-mail.sent:
		t.Fatalf("unexpected mail sent to %s", addr)
	default:
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestForgotPassword(t *testing.T) {
	svc, mock, mail := newAuthTestService(t)
	user := testUser(t, "correct horse")

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(userRowsFor(user))
	mock.ExpectExec("DELETE FROM password_resets").
		WithArgs(user.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))
	mock.ExpectExec("INSERT INTO password_resets").
		WithArgs(user.ID, pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := svc.ForgotPassword(context.Background(), &request.ForgotPasswordRequest{
		Email: user.Email,
	})
	require.NoError(t, err)

	select {
	case addr := <-mail.sent:
		assert.Equal(t, user.Email, addr)
	case <-time.After(2 * time.Second):
		t.Fatal("reset mail was never sent")
	}

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetPassword(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)
	user := testUser(t, "old password")

	resetRows := pgxmock.NewRows([]string{"id", "user_id", "otp_code", "expires_at", "created_at"}).
		AddRow(int64(5), user.ID, "483920", time.Now().Add(5*time.Minute), time.Now())

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(userRowsFor(user))
	mock.ExpectQuery("FROM password_resets").
		WithArgs(user.ID, "483920").
		WillReturnRows(resetRows)
	mock.ExpectExec("UPDATE users SET password").
		WithArgs(user.ID, pgxmock.AnyArg()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("DELETE FROM password_resets").
		WithArgs(user.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Email:       user.Email,
		OTP:         "483920",
		NewPassword: "a brand new password",
	})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestResetPasswordBadCode(t *testing.T) {
	svc, mock, _ := newAuthTestService(t)
	user := testUser(t, "old password")

	mock.ExpectQuery("FROM users WHERE email").
		WithArgs(user.Email).
		WillReturnRows(userRowsFor(user))
	mock.ExpectQuery("FROM password_resets").
		WithArgs(user.ID, "000000").
		WillReturnRows(pgxmock.NewRows([]string{"id"}))

	err := svc.ResetPassword(context.Background(), &request.ResetPasswordRequest{
		Email:       user.Email,
		OTP:         "000000",
		NewPassword: "a brand new password",
	})
	assertKind(t, err, KindUnauthenticated)

	assert.NoError(t, mock.ExpectationsWereMet())
}
