package middleware

import (
	"context"
	"net/http"
	"strings"

	"user-directory/internal/http/api"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v5"
)

type key int

const RoleKey key = 1

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Auth accepts bearer tokens signed with either secret. The role claim must
// match the secret that verified the token; the role is stored under RoleKey.
func Auth(adminSecret, userSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
			if !ok || tokenString == "" {
				unauthorized(w, r, "missing bearer token")
				return
			}

			// Try admin token
			if role, ok := validateToken(tokenString, adminSecret); ok && role == RoleAdmin {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RoleKey, RoleAdmin)))
				return
			}

			// Try user token
			if role, ok := validateToken(tokenString, userSecret); ok && role == RoleUser {
				next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), RoleKey, RoleUser)))
				return
			}

			unauthorized(w, r, "invalid token")
		})
	}
}

func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role, _ := r.Context().Value(RoleKey).(string)

		if role != RoleAdmin {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, api.Error(api.ErrForbidden, "admin role required"))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, api.Error(api.ErrUnauthorized, msg))
}

func validateToken(tokenString, secret string) (string, bool) {
	if secret == "" {
		return "", false
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil || !token.Valid {
		return "", false
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok {
		roleVal, ok := claims["role"].(string)
		if !ok {
			return "", false
		}
		return roleVal, true
	}

	return "", false
}
