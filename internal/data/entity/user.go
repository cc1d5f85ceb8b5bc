package entity

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleProvider UserRole = "provider"
	RoleAdmin    UserRole = "admin"
)

type User struct {
	Base
	Name                string   `db:"name"`
	Email               string   `db:"email"`
	PasswordHash        string   `db:"password"`
	Phone               *string  `db:"phone"`
	Role                UserRole `db:"role"`
	FailedLoginAttempts int      `db:"failed_login_attempts"`
	IsSuspended         bool     `db:"is_suspended"`
	IsActive            bool     `db:"is_active"`
}
