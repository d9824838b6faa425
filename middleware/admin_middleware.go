package middleware

import (
	"context"
	"net/http"

	"github.com/andrewpaige1/nodebook-study/admin"
	"github.com/andrewpaige1/nodebook-study/utils"
)

type contextKey string

const editorKey contextKey = "editor"

// AdminEditorMiddleware attaches the editor of the caller's admin session to
// the request context. It must run after EnsureValidToken.
func AdminEditorMiddleware(editors *admin.Registry) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, ok := utils.GetAdminSessionID(r)
			if !ok {
				http.Error(w, "No admin session found", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), editorKey, editors.Editor(sessionID))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func EditorFromContext(ctx context.Context) (*admin.Editor, bool) {
	e, ok := ctx.Value(editorKey).(*admin.Editor)
	return e, ok
}
