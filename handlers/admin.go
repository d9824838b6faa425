package handlers

import (
	"net/http"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/andrewpaige1/nodebook-study/admin"
	"github.com/andrewpaige1/nodebook-study/auth"
	"github.com/andrewpaige1/nodebook-study/middleware"
	"github.com/andrewpaige1/nodebook-study/utils"
)

// POST /api/admin/login
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Passphrase string `json:"passphrase"`
	}
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := auth.CheckPassphrase(req.Passphrase, h.Env.AdminPassphrase); err != nil {
		h.Log.Warn("admin gate rejected", "remote", r.RemoteAddr)
		writeError(w, http.StatusUnauthorized, "Incorrect passphrase. Check it and try again.")
		return
	}

	sessionID, err := gonanoid.New()
	if err != nil {
		h.Log.Error("Login: failed to generate session id", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	token, err := auth.CreateToken(sessionID, h.Env.JWTSecret)
	if err != nil {
		h.Log.Error("Login: failed to sign token", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	utils.SetAdminCookie(w, token, h.Env.Domain, h.Env.CookieSecure)
	h.Log.Info("admin gate unlocked", "admin_session", sessionID)
	writeJSON(w, http.StatusOK, map[string]string{"token": token, "notice": "Access granted"})
}

type editResponse struct {
	admin.Outcome
	View admin.View `json:"view"`
}

// editorAction resolves the caller's editor, runs act and responds with the
// outcome plus the refreshed editor view.
func (h *Handler) editorAction(act func(r *http.Request, e *admin.Editor) (admin.Outcome, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, ok := middleware.EditorFromContext(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "admin access required")
			return
		}

		out, err := act(r, e)
		if err != nil {
			h.Log.Error("admin edit failed", "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update content")
			return
		}
		writeJSON(w, http.StatusOK, editResponse{Outcome: out, View: e.View(r.Context())})
	}
}

type nameRequest struct {
	Name string `json:"name"`
}

type cardRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func decodeInto[T any](r *http.Request) (T, error) {
	var req T
	err := decodeOptional(r, &req)
	return req, err
}

// GET /admin
func (h *Handler) AdminView(w http.ResponseWriter, r *http.Request) {
	h.editorAction(func(*http.Request, *admin.Editor) (admin.Outcome, error) {
		return admin.Outcome{}, nil
	})(w, r)
}

func (h *Handler) SelectCourse(w http.ResponseWriter, r *http.Request) {
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		e.SelectCourse(r.PathValue("courseID"))
		return admin.Outcome{Applied: true}, nil
	})(w, r)
}

func (h *Handler) AddCourse(w http.ResponseWriter, r *http.Request) {
	req, err := decodeInto[nameRequest](r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		return e.AddCourse(r.Context(), req.Name)
	})(w, r)
}

func (h *Handler) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		return e.DeleteCourse(r.Context(), r.PathValue("courseID"))
	})(w, r)
}

func (h *Handler) SelectSubject(w http.ResponseWriter, r *http.Request) {
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		e.SelectSubject(r.PathValue("subjectID"))
		return admin.Outcome{Applied: true}, nil
	})(w, r)
}

func (h *Handler) AddSubject(w http.ResponseWriter, r *http.Request) {
	req, err := decodeInto[nameRequest](r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		return e.AddSubject(r.Context(), req.Name)
	})(w, r)
}

func (h *Handler) DeleteSubject(w http.ResponseWriter, r *http.Request) {
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		return e.DeleteSubject(r.Context(), r.PathValue("subjectID"))
	})(w, r)
}

func (h *Handler) AddFlashcard(w http.ResponseWriter, r *http.Request) {
	req, err := decodeInto[cardRequest](r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		return e.AddFlashcard(r.Context(), req.Question, req.Answer)
	})(w, r)
}

func (h *Handler) StartEdit(w http.ResponseWriter, r *http.Request) {
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		return admin.Outcome{Applied: e.StartEdit(r.Context(), r.PathValue("flashcardID"))}, nil
	})(w, r)
}

func (h *Handler) CancelEdit(w http.ResponseWriter, r *http.Request) {
	h.editorAction(func(_ *http.Request, e *admin.Editor) (admin.Outcome, error) {
		e.CancelEdit()
		return admin.Outcome{Applied: true}, nil
	})(w, r)
}

func (h *Handler) UpdateFlashcard(w http.ResponseWriter, r *http.Request) {
	req, err := decodeInto[cardRequest](r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		return e.UpdateFlashcard(r.Context(), r.PathValue("flashcardID"), req.Question, req.Answer)
	})(w, r)
}

func (h *Handler) DeleteFlashcard(w http.ResponseWriter, r *http.Request) {
	h.editorAction(func(r *http.Request, e *admin.Editor) (admin.Outcome, error) {
		return e.DeleteFlashcard(r.Context(), r.PathValue("flashcardID"))
	})(w, r)
}

