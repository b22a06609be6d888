package middleware

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-crm/crm-backend-go/internal/pkg/jwt"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

// TokenLogger must run after jwtauth.Verifier. When the request carries a
// valid bearer token its user_id is added to the request log line. Missing or
// invalid tokens are ignored and the request always proceeds.
func TokenLogger(next http.Handler) http.Handler {
	hfn := func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err == nil && token != nil {
			if userID, err := jwt.UserIDFromClaims(claims); err == nil {
				httplog.SetAttrs(r.Context(), slog.Int64("user_id", userID))
			}
		}
		next.ServeHTTP(w, r)
	}
	return http.HandlerFunc(hfn)
}
