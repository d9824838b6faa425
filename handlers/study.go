package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/andrewpaige1/nodebook-study/models"
	"github.com/andrewpaige1/nodebook-study/session"
)

type emptyView struct {
	Mode     session.Mode `json:"mode"`
	Empty    bool         `json:"empty"`
	Message  string       `json:"message"`
	Redirect string       `json:"redirect"`
}

// GET /study?courseId=<id>&subjectIds=<a,b>
func (h *Handler) Study(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()
	courseID := strings.TrimSpace(q.Get("courseId"))
	subjectIDs := splitIDs(q.Get("subjectIds"))

	// An empty subjectIds value counts as missing and goes home rather than
	// opening an empty study list.
	if courseID == "" || len(subjectIDs) == 0 {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	cards, err := session.BuildForSelection(h.State.Courses(ctx), courseID, subjectIDs, h.State.Favorites(ctx))
	if errors.Is(err, session.ErrCourseNotFound) {
		h.Log.Info("study course not found, redirecting home", "course_id", courseID)
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.openViewer(w, session.ModeSelection, cards, "No cards found")
}

// GET /favorites
func (h *Handler) Favorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	cards := session.BuildFavorites(h.State.Courses(ctx), h.State.Favorites(ctx))
	h.openViewer(w, session.ModeFavorites, cards, "No favorite cards yet. Favorite some cards while studying to see them here.")
}

func (h *Handler) openViewer(w http.ResponseWriter, mode session.Mode, cards []models.StudyCard, emptyMessage string) {
	if len(cards) == 0 {
		writeJSON(w, http.StatusOK, emptyView{Mode: mode, Empty: true, Message: emptyMessage, Redirect: "/"})
		return
	}

	v := session.NewViewer(mode, cards, h.State)
	id, err := h.Sessions.Open(v)
	if err != nil {
		h.Log.Error("open study session failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Failed to open study session")
		return
	}

	view := v.Snapshot()
	view.SessionID = id
	writeJSON(w, http.StatusOK, view)
}

// viewerAction runs act against the viewer named in the path and responds
// with the resulting view.
func (h *Handler) viewerAction(act func(r *http.Request, v *session.Viewer) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("sessionID")
		v, err := h.Sessions.Get(id)
		if err != nil {
			writeNotFound(w, "Study session not found")
			return
		}

		if err := act(r, v); err != nil {
			h.Log.Error("study session action failed", "session_id", id, "path", r.URL.Path, "error", err)
			writeError(w, http.StatusInternalServerError, "Failed to update study session")
			return
		}

		view := v.Snapshot()
		view.SessionID = id
		writeJSON(w, http.StatusOK, view)
	}
}

// GET /api/sessions/{sessionID}
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.viewerAction(func(*http.Request, *session.Viewer) error { return nil })(w, r)
}

func (h *Handler) Flip(w http.ResponseWriter, r *http.Request) {
	h.viewerAction(func(_ *http.Request, v *session.Viewer) error { v.Flip(); return nil })(w, r)
}

func (h *Handler) Next(w http.ResponseWriter, r *http.Request) {
	h.viewerAction(func(_ *http.Request, v *session.Viewer) error { v.Next(); return nil })(w, r)
}

func (h *Handler) Previous(w http.ResponseWriter, r *http.Request) {
	h.viewerAction(func(_ *http.Request, v *session.Viewer) error { v.Previous(); return nil })(w, r)
}

func (h *Handler) Restart(w http.ResponseWriter, r *http.Request) {
	h.viewerAction(func(_ *http.Request, v *session.Viewer) error { v.Restart(); return nil })(w, r)
}

// POST /api/sessions/{sessionID}/favorite
// The body may name a card; otherwise the displayed card is toggled.
func (h *Handler) Favorite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		CardID string `json:"cardId"`
	}
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	h.viewerAction(func(r *http.Request, v *session.Viewer) error {
		return v.ToggleFavorite(r.Context(), req.CardID)
	})(w, r)
}

type inputRequest struct {
	Kind   string   `json:"kind"`
	Key    string   `json:"key"`
	StartX float64  `json:"startX"`
	EndX   *float64 `json:"endX"`
}

type inputResponse struct {
	Action         session.Action `json:"action"`
	PreventDefault bool           `json:"preventDefault"`
	View           session.View   `json:"view"`
}

// POST /api/sessions/{sessionID}/input
// Forwards a key press or swipe to the same entry points as the buttons.
func (h *Handler) Input(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("sessionID")
	v, err := h.Sessions.Get(id)
	if err != nil {
		writeNotFound(w, "Study session not found")
		return
	}

	var req inputRequest
	if err := decodeOptional(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	action := session.ActionNone
	switch req.Kind {
	case "key":
		action = v.HandleKey(req.Key)
	case "swipe":
		action = v.HandleSwipe(session.Gesture{StartX: req.StartX, EndX: req.EndX})
	default:
		writeError(w, http.StatusBadRequest, "Input kind must be key or swipe")
		return
	}

	view := v.Snapshot()
	view.SessionID = id
	writeJSON(w, http.StatusOK, inputResponse{
		Action:         action,
		PreventDefault: req.Kind == "key" && action != session.ActionNone,
		View:           view,
	})
}

// DELETE /api/sessions/{sessionID}
// Tears the viewer down; later input for this id is not found.
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	if err := h.Sessions.Close(r.PathValue("sessionID")); err != nil {
		writeNotFound(w, "Study session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
