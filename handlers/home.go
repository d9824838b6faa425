package handlers

import (
	"net/http"
	"strings"

	"github.com/andrewpaige1/nodebook-study/session"
)

type subjectSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CardCount int    `json:"cardCount"`
}

type courseSummary struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	CardCount int              `json:"cardCount"`
	Subjects  []subjectSummary `json:"subjects"`
}

type selectionSummary struct {
	CourseID   string   `json:"courseId"`
	SubjectIDs []string `json:"subjectIds"`
	CardCount  int      `json:"cardCount"`
}

type homeView struct {
	Courses        []courseSummary   `json:"courses"`
	FavoritesCount int               `json:"favoritesCount"`
	Selection      *selectionSummary `json:"selection,omitempty"`
}

// GET /
func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	courses := h.State.Courses(ctx)

	view := homeView{
		Courses:        make([]courseSummary, 0, len(courses)),
		FavoritesCount: len(session.BuildFavorites(courses, h.State.Favorites(ctx))),
	}
	for _, c := range courses {
		summary := courseSummary{ID: c.ID, Name: c.Name, Subjects: make([]subjectSummary, 0, len(c.Subjects))}
		for _, s := range c.Subjects {
			summary.Subjects = append(summary.Subjects, subjectSummary{ID: s.ID, Name: s.Name, CardCount: len(s.Flashcards)})
			summary.CardCount += len(s.Flashcards)
		}
		view.Courses = append(view.Courses, summary)
	}

	q := r.URL.Query()
	if courseID := strings.TrimSpace(q.Get("courseId")); courseID != "" {
		subjectIDs := splitIDs(q.Get("subjectIds"))
		if subjectIDs == nil {
			subjectIDs = []string{}
		}
		view.Selection = &selectionSummary{
			CourseID:   courseID,
			SubjectIDs: subjectIDs,
			CardCount:  session.CountSelection(courses, courseID, subjectIDs),
		}
	}

	writeJSON(w, http.StatusOK, view)
}

// NotFound answers every path no other route claims.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeNotFound(w, "Page not found")
}
