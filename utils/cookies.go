package utils

import "net/http"

const AdminCookieName = "admin_token"

// SetAdminCookie stores the admin token as a session cookie, so it is gone
// once the browser session ends.
func SetAdminCookie(w http.ResponseWriter, token, domain string, secure bool) {
	c := &http.Cookie{
		Name:     AdminCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	if domain != "" && domain != "localhost" {
		c.Domain = domain
	}
	http.SetCookie(w, c)
}
