package middleware

import (
	"context"
	"net/http"

	"buslink/infras/jwt"
	"buslink/permissions"
	"buslink/shared/constant"
	"buslink/shared/failure"
	"buslink/transport/http/response"
)

type AuthRole struct {
	jwt jwt.JWT
}

func NewAuthRole(jwtService jwt.JWT) *AuthRole {
	return &AuthRole{jwt: jwtService}
}

// Auth validates the bearer token and stores the caller's identity in the
// request context.
func (a *AuthRole) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := jwt.ExtractTokenFromHeader(r.Header.Get(constant.RequestHeaderAuthorization))
		if err != nil {
			response.WithError(w, failure.Unauthorized(err.Error()))

			return
		}

		claims, err := a.jwt.ValidateToken(token, jwt.AccessToken)
		if err != nil {
			response.WithError(w, failure.Unauthorized(err.Error()))

			return
		}

		ctx := r.Context()
		ctx = context.WithValue(ctx, constant.ContextKeyUserID, claims.UserID)
		ctx = context.WithValue(ctx, constant.ContextKeyUsername, claims.Username)
		ctx = context.WithValue(ctx, constant.ContextKeyUserRole, claims.Role)
		ctx = context.WithValue(ctx, constant.ContextKeyTokenID, claims.TokenID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// HasPermission gates an endpoint on the caller's role granting the named
// permission. It must run after Auth.
func (a *AuthRole) HasPermission(permission string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, _ := r.Context().Value(constant.ContextKeyUserRole).(string)

			if !permissions.HasPermission(role, permission) {
				response.WithError(w, failure.ForbiddenError)

				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
