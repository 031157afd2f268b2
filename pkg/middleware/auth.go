package middleware

import (
	"net/http"
	"strings"

	"github.com/lunarosa/shop/pkg/auth"
	"github.com/lunarosa/shop/pkg/response"
)

// AdminAuth guards the admin panel routes: it requires a valid Bearer token
// issued by the admin login endpoint.
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
		if token == "" {
			// WebSocket clients cannot set headers; they pass the token in
			// the query string instead.
			token = r.URL.Query().Get("token")
		}

		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil || claims.Role != auth.RoleAdmin {
			response.Unauthorized(w)
			return
		}

		next.ServeHTTP(w, r)
	})
}
