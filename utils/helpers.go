package utils

import (
	"net/http"

	jwtmiddleware "github.com/auth0/go-jwt-middleware/v2"

	"github.com/andrewpaige1/nodebook-study/auth"
)

func GetAdminSessionID(r *http.Request) (string, bool) {
	claims, ok := r.Context().Value(jwtmiddleware.ContextKey{}).(*auth.AdminClaims)
	if !ok || claims.SessionID == "" {
		return "", false
	}
	return claims.SessionID, true
}
