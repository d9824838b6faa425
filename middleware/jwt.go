package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"

	"github.com/andrewpaige1/nodebook-study/auth"
	"github.com/andrewpaige1/nodebook-study/logger"
	"github.com/andrewpaige1/nodebook-study/utils"
)

// EnsureValidToken rejects requests that do not carry a token issued by the
// admin gate, read from the Authorization header or the admin cookie.
func EnsureValidToken(secret string, log *logger.Logger) func(next http.Handler) http.Handler {
	validate := func(ctx context.Context, token string) (interface{}, error) {
		return auth.VerifyToken(token, secret)
	}

	errorHandler := func(w http.ResponseWriter, r *http.Request, err error) {
		log.Warn("admin token rejected", "path", r.URL.Path, "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "admin access required", "redirect": "/"})
	}

	m := jwtmiddleware.New(
		validate,
		jwtmiddleware.WithErrorHandler(errorHandler),
		jwtmiddleware.WithTokenExtractor(jwtmiddleware.MultiTokenExtractor(
			jwtmiddleware.AuthHeaderTokenExtractor,
			jwtmiddleware.CookieTokenExtractor(utils.AdminCookieName),
		)),
	)

	return func(next http.Handler) http.Handler {
		return m.CheckJWT(next)
	}
}
