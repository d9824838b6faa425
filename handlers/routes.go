package handlers

import (
	"net/http"

	"github.com/andrewpaige1/nodebook-study/admin"
	"github.com/andrewpaige1/nodebook-study/middleware"
)

// NewRouter maps every navigable view and API call onto h.
func NewRouter(h *Handler, editors *admin.Registry) http.Handler {
	mux := http.NewServeMux()

	// Views
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /study", h.Study)
	mux.HandleFunc("GET /favorites", h.Favorites)

	// Card viewer
	mux.HandleFunc("GET /api/sessions/{sessionID}", h.GetSession)
	mux.HandleFunc("POST /api/sessions/{sessionID}/flip", h.Flip)
	mux.HandleFunc("POST /api/sessions/{sessionID}/next", h.Next)
	mux.HandleFunc("POST /api/sessions/{sessionID}/previous", h.Previous)
	mux.HandleFunc("POST /api/sessions/{sessionID}/restart", h.Restart)
	mux.HandleFunc("POST /api/sessions/{sessionID}/favorite", h.Favorite)
	mux.HandleFunc("POST /api/sessions/{sessionID}/input", h.Input)
	mux.HandleFunc("DELETE /api/sessions/{sessionID}", h.CloseSession)

	// Admin gate
	mux.HandleFunc("POST /api/admin/login", h.Login)

	tokenMiddleware := middleware.EnsureValidToken(h.Env.JWTSecret, h.Log)
	editorMiddleware := middleware.AdminEditorMiddleware(editors)
	adminOnly := func(hf http.HandlerFunc) http.Handler {
		return tokenMiddleware(editorMiddleware(hf))
	}

	// Admin editor
	mux.Handle("GET /admin", adminOnly(h.AdminView))
	mux.Handle("POST /api/admin/courses", adminOnly(h.AddCourse))
	mux.Handle("POST /api/admin/courses/{courseID}/select", adminOnly(h.SelectCourse))
	mux.Handle("DELETE /api/admin/courses/{courseID}", adminOnly(h.DeleteCourse))
	mux.Handle("POST /api/admin/subjects", adminOnly(h.AddSubject))
	mux.Handle("POST /api/admin/subjects/{subjectID}/select", adminOnly(h.SelectSubject))
	mux.Handle("DELETE /api/admin/subjects/{subjectID}", adminOnly(h.DeleteSubject))
	mux.Handle("POST /api/admin/flashcards", adminOnly(h.AddFlashcard))
	mux.Handle("POST /api/admin/flashcards/{flashcardID}/edit", adminOnly(h.StartEdit))
	mux.Handle("PUT /api/admin/flashcards/{flashcardID}", adminOnly(h.UpdateFlashcard))
	mux.Handle("DELETE /api/admin/flashcards/{flashcardID}", adminOnly(h.DeleteFlashcard))
	mux.Handle("POST /api/admin/edit/cancel", adminOnly(h.CancelEdit))

	mux.HandleFunc("/", h.NotFound)

	return mux
}
