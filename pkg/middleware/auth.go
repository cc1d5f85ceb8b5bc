package middleware

import (
	"net/http"
	"strings"

	"trip-booking/internal/data/repository"
	"trip-booking/pkg/utils"

	"go.uber.org/zap"
)

// AuthJWT validates the bearer token and loads the account behind it.
// The token carries only the public uuid; the internal id is resolved
// here on every request, so suspension and deactivation take effect
// immediately instead of at token expiry.
func AuthJWT(cfg utils.JWTConfig, userRepo repository.UserRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			claims, err := utils.ParseToken(cfg, parts[1])
			if err != nil {
				logger.Warn("Token rejected", zap.Error(err))
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			user, err := userRepo.FindByUUID(r.Context(), claims.UserUUID)
			if err != nil {
				logger.Error("Failed to load user for token", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}
			if user == nil {
				utils.ResponseUnauthorized(w, "Invalid or expired token")
				return
			}

			if user.IsSuspended {
				utils.ResponseUnauthorized(w, "Account is suspended")
				return
			}
			if !user.IsActive {
				utils.ResponseUnauthorized(w, "Account is deactivated")
				return
			}

			userUUID, err := utils.ParseUUID(user.UUID)
			if err != nil {
				logger.Error("Stored user UUID is invalid", zap.String("user_uuid", user.UUID), zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			ctx := utils.SetUserContext(r.Context(), utils.Identity{
				InternalID: user.ID,
				UUID:       userUUID,
				Role:       string(user.Role),
			})

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles rejects authenticated requests whose role is not listed.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := utils.GetRoleFromContext(r.Context())
			if !ok {
				utils.ResponseUnauthorized(w, "Authentication required")
				return
			}

			if _, ok := allowed[role]; !ok {
				utils.ResponseForbidden(w, "Insufficient permissions")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
