package utils

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

const (
	UserIDKey   contextKey = "user_id"
	UserUUIDKey contextKey = "user_uuid"
	RoleKey     contextKey = "role"
)

// Identity is the resolved caller attached to each authenticated request.
// InternalID is the surrogate key and never leaves the process boundary.
type Identity struct {
	InternalID int64
	UUID       uuid.UUID
	Role       string
}

func SetUserContext(ctx context.Context, identity Identity) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, identity.InternalID)
	ctx = context.WithValue(ctx, UserUUIDKey, identity.UUID.String())
	ctx = context.WithValue(ctx, RoleKey, identity.Role)
	return ctx
}

func GetIdentityFromContext(ctx context.Context) (Identity, bool) {
	idVal := ctx.Value(UserIDKey)
	uuidVal := ctx.Value(UserUUIDKey)
	roleVal := ctx.Value(RoleKey)
	if idVal == nil || uuidVal == nil || roleVal == nil {
		return Identity{}, false
	}

	internalID, ok := idVal.(int64)
	if !ok {
		return Identity{}, false
	}

	uuidStr, ok := uuidVal.(string)
	if !ok {
		return Identity{}, false
	}
	userUUID, err := uuid.Parse(uuidStr)
	if err != nil {
		return Identity{}, false
	}

	role, ok := roleVal.(string)
	if !ok {
		return Identity{}, false
	}

	return Identity{InternalID: internalID, UUID: userUUID, Role: role}, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	roleVal := ctx.Value(RoleKey)
	if roleVal == nil {
		return "", false
	}

	role, ok := roleVal.(string)
	return role, ok
}
