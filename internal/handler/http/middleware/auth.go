package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/paybooks/paybooks-backend-go/internal/domain/auth"
	"github.com/paybooks/paybooks-backend-go/internal/handler/http/response"
)

// AuthRequired rejects any request whose context lacks a verified access
// token. It runs behind jwtauth.Verifier, which stashes the parsed token or
// its verification error on the request context.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			claims, err := token.AsMap(r.Context())
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			// Refresh tokens must never pass the API gate.
			if tokenType, ok := claims["type"].(string); !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
