package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/maison/pkg/auth"
	"github.com/shashiranjanraj/maison/pkg/response"
)

// bearerToken extracts the token from an "Authorization: Bearer xyz" header.
// Returns "" when the header is missing or not a Bearer scheme.
func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// RequireAuth rejects requests without a valid token. A missing token is
// 401; a token that is present but invalid or expired is 403. On success
// the caller's Identity is attached to the request context.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			response.Unauthorized(w)
			return
		}

		ident, err := auth.VerifyToken(token)
		if err != nil {
			response.Forbidden(w, "Invalid or expired token")
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithIdentity(r.Context(), ident)))
	})
}

// OptionalAuth attaches the caller's Identity when a valid token is
// present, but lets anonymous requests through. An invalid token is
// treated as anonymous rather than rejected.
func OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if token := bearerToken(r); token != "" {
			if ident, err := auth.VerifyToken(token); err == nil {
				r = r.WithContext(auth.WithIdentity(r.Context(), ident))
			}
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin gates a route to admin users. Wire it after RequireAuth:
//
//	admin.Use(middleware.RequireAuth, middleware.RequireAdmin)
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := auth.FromCtx(r.Context())
		if !ok {
			response.Unauthorized(w)
			return
		}
		if !ident.IsAdmin() {
			response.Forbidden(w, "Admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}
