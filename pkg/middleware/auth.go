package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/vfg2006/exchange-analytics-api/internal/usecases/authenticating"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// publicPaths são as rotas acessíveis sem token: login, healthcheck e os
// endpoints de rastreamento de interação, que são chamados pelo site público
var publicPaths = []string{
	"/v1/login",
	"/healthcheck",
}

func isPublicPath(r *http.Request) bool {
	for _, path := range publicPaths {
		if r.URL.Path == path {
			return true
		}
	}

	// POST /v1/offices/:id/events/* são os cliques anônimos do site público
	return r.Method == http.MethodPost && strings.Contains(r.URL.Path, "/events/")
}

func AuthMiddleware(authService authenticating.Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				http.Error(w, "Authorization header is required", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				http.Error(w, "Bearer token is required", http.StatusUnauthorized)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				http.Error(w, "Invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
