package middleware

import (
	"context"
	"net/http"

	jwt_internal "github.com/bulletin-dev/bulletin/backend/internal/utils/jwt"
	"github.com/bulletin-dev/bulletin/shared/domain"
	"github.com/bulletin-dev/bulletin/shared/utils"
	"github.com/golang-jwt/jwt/v5"
)

type key int

const userClaimsKey key = 0

// Auth validates the access-token cookie and stores the user in the request
// context. With adminOnly set, non-admin users get 403.
func Auth(jwtService jwt_internal.JwtService, adminOnly bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accessCookie, err := r.Cookie("accessToken")
			if err == http.ErrNoCookie {
				http.Error(w, "Please sign-in", http.StatusUnauthorized)
				return
			} else if err != nil {
				http.Error(w, "Invalid cookie", http.StatusInternalServerError)
				return
			}

			token, err := jwtService.DecodeToken(accessCookie.Value)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "Invalid access token", http.StatusUnauthorized)
				return
			}

			isAdmin, _ := claims["admin"].(bool)
			if adminOnly && !isAdmin {
				http.Error(w, "Access denied. Only for admin", http.StatusForbidden)
				return
			}

			uid, _ := claims["uid"].(float64)
			email, _ := claims["email"].(string)
			user := &domain.User{
				Id:    int64(uid),
				Email: email,
				Admin: isAdmin,
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func AdminOnly(jwtService jwt_internal.JwtService) func(http.Handler) http.Handler {
	return Auth(jwtService, true)
}

func NeedAuth(jwtService jwt_internal.JwtService) func(http.Handler) http.Handler {
	return Auth(jwtService, false)
}

// GetUserFromContext returns the authenticated user, or nil outside Auth.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}
