package middlewares

import (
	"context"
	"fmt"
	"healthlinker-service/internal/app/models"
	"healthlinker-service/internal/pkg/constvars"
	"healthlinker-service/internal/pkg/exceptions"
	"healthlinker-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and stores the caller's id and role in the context.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" || !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		claims, err := m.TokenManager.VerifyToken(r.Context(), token)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate token rejected",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_USER_ID_KEY, claims.UserID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ROLE_KEY, claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles lets the request through only when the authenticated role is one of allowed.
// It must run after Authenticate.
func (m *Middlewares) RequireRoles(allowed ...models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(constvars.CONTEXT_USER_ROLE_KEY).(models.UserRole)
			if !ok {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrMissingIdentity(nil))
				return
			}

			switch role {
			case models.RolePatient, models.RoleDoctor, models.RoleAdmin:
			default:
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidRoleType(nil))
				return
			}

			for _, candidate := range allowed {
				if role == candidate {
					next.ServeHTTP(w, r)
					return
				}
			}

			m.Log.Warn("Middlewares.RequireRoles role not allowed",
				zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
				zap.String(constvars.LoggingRoleKey, role.String()),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotMatchRoleType(fmt.Errorf("role %s not in %v", role, allowed)))
		})
	}
}
