// Package admin edits the content tree. Every change rebuilds the tree by
// replacing only the affected branch and hands the whole result to AppState.
package admin

import (
	"context"
	"strings"
	"sync"

	"github.com/andrewpaige1/nodebook-study/models"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// ContentState is the slice of AppState the editor needs.
type ContentState interface {
	Courses(ctx context.Context) []models.Course
	FavoriteIDs(ctx context.Context) []string
	ModifyCourses(ctx context.Context, fn func([]models.Course) ([]models.Course, bool)) (bool, error)
}

// Draft holds the card form while a card is being edited.
type Draft struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Outcome reports whether a mutation was applied. Rejected input, or an edit
// whose target no longer exists, yields a zero Outcome and no error.
type Outcome struct {
	Applied bool   `json:"applied"`
	Notice  string `json:"notice,omitempty"`
}

type Editor struct {
	mu      sync.Mutex
	content ContentState
	newID   func() (string, error)

	selectedCourse  string
	selectedSubject string
	editingCard     string
	draft           Draft
}

func NewEditor(content ContentState) *Editor {
	return &Editor{content: content, newID: func() (string, error) { return gonanoid.New() }}
}

// View is what the admin page renders.
type View struct {
	Courses           []models.Course `json:"courses"`
	SelectedCourse    string          `json:"selectedCourse,omitempty"`
	SelectedSubject   string          `json:"selectedSubject,omitempty"`
	EditingCard       string          `json:"editingCard,omitempty"`
	Draft             Draft           `json:"draft"`
	OrphanedFavorites []string        `json:"orphanedFavorites"`
}

func (e *Editor) View(ctx context.Context) View {
	e.mu.Lock()
	defer e.mu.Unlock()

	courses := e.content.Courses(ctx)
	return View{
		Courses:           courses,
		SelectedCourse:    e.selectedCourse,
		SelectedSubject:   e.selectedSubject,
		EditingCard:       e.editingCard,
		Draft:             e.draft,
		OrphanedFavorites: models.OrphanedFavorites(courses, e.content.FavoriteIDs(ctx)),
	}
}

// SelectCourse also clears the subject selection.
func (e *Editor) SelectCourse(courseID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectedCourse = courseID
	e.selectedSubject = ""
	e.exitEdit()
}

func (e *Editor) SelectSubject(subjectID string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.selectedSubject = subjectID
	e.exitEdit()
}

func (e *Editor) AddCourse(ctx context.Context, name string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return Outcome{}, nil
	}
	id, err := e.newID()
	if err != nil {
		return Outcome{}, err
	}

	course := models.Course{ID: id, Name: name, Subjects: []models.Subject{}}
	return e.apply(ctx, "Course added", func(courses []models.Course) ([]models.Course, bool) {
		return append(courses, course), true
	})
}

// DeleteCourse removes the course with all its subjects and flashcards.
func (e *Editor) DeleteCourse(ctx context.Context, courseID string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out, err := e.apply(ctx, "Course removed", func(courses []models.Course) ([]models.Course, bool) {
		kept := make([]models.Course, 0, len(courses))
		for _, c := range courses {
			if c.ID != courseID {
				kept = append(kept, c)
			}
		}
		return kept, len(kept) != len(courses)
	})
	if err != nil {
		return Outcome{}, err
	}
	if e.selectedCourse == courseID {
		e.selectedCourse = ""
		e.selectedSubject = ""
		e.exitEdit()
	}
	return out, nil
}

// AddSubject appends a subject to the selected course.
func (e *Editor) AddSubject(ctx context.Context, name string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" || e.selectedCourse == "" {
		return Outcome{}, nil
	}
	id, err := e.newID()
	if err != nil {
		return Outcome{}, err
	}

	subject := models.Subject{ID: id, Name: name, Flashcards: []models.Flashcard{}}
	return e.apply(ctx, "Subject added", e.mapCourse(func(c models.Course) (models.Course, bool) {
		c.Subjects = append(c.Subjects, subject)
		return c, true
	}))
}

// DeleteSubject removes a subject of the selected course and its flashcards.
func (e *Editor) DeleteSubject(ctx context.Context, subjectID string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.selectedCourse == "" {
		return Outcome{}, nil
	}
	out, err := e.apply(ctx, "Subject removed", e.mapCourse(func(c models.Course) (models.Course, bool) {
		kept := make([]models.Subject, 0, len(c.Subjects))
		for _, s := range c.Subjects {
			if s.ID != subjectID {
				kept = append(kept, s)
			}
		}
		removed := len(kept) != len(c.Subjects)
		c.Subjects = kept
		return c, removed
	}))
	if err != nil {
		return Outcome{}, err
	}
	if e.selectedSubject == subjectID {
		e.selectedSubject = ""
		e.exitEdit()
	}
	return out, nil
}

// AddFlashcard appends a card to the selected subject.
func (e *Editor) AddFlashcard(ctx context.Context, question, answer string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	question, answer = strings.TrimSpace(question), strings.TrimSpace(answer)
	if question == "" || answer == "" || e.selectedCourse == "" || e.selectedSubject == "" {
		return Outcome{}, nil
	}
	id, err := e.newID()
	if err != nil {
		return Outcome{}, err
	}

	card := models.Flashcard{ID: id, Question: question, Answer: answer}
	out, err := e.apply(ctx, "Card added", e.mapSubject(func(s models.Subject) (models.Subject, bool) {
		s.Flashcards = append(s.Flashcards, card)
		return s, true
	}))
	if err != nil {
		return Outcome{}, err
	}
	if out.Applied {
		e.exitEdit()
	}
	return out, nil
}

// StartEdit enters edit mode for a card of the selected subject and fills
// the draft with its current text.
func (e *Editor) StartEdit(ctx context.Context, cardID string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	course, ok := models.FindCourse(e.content.Courses(ctx), e.selectedCourse)
	if !ok {
		return false
	}
	subject, ok := course.FindSubject(e.selectedSubject)
	if !ok {
		return false
	}
	for _, card := range subject.Flashcards {
		if card.ID == cardID {
			e.editingCard = card.ID
			e.draft.Question, e.draft.Answer = card.Question, card.Answer
			return true
		}
	}
	return false
}

func (e *Editor) CancelEdit() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.exitEdit()
}

// UpdateFlashcard replaces the question and answer of a card in the selected
// subject. Its id and position are kept.
func (e *Editor) UpdateFlashcard(ctx context.Context, cardID, question, answer string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	question, answer = strings.TrimSpace(question), strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return Outcome{}, nil
	}
	out, err := e.apply(ctx, "Card updated", e.mapSubject(func(s models.Subject) (models.Subject, bool) {
		found := false
		for i := range s.Flashcards {
			if s.Flashcards[i].ID == cardID {
				s.Flashcards[i].Question = question
				s.Flashcards[i].Answer = answer
				found = true
			}
		}
		return s, found
	}))
	if err != nil {
		return Outcome{}, err
	}
	e.exitEdit()
	return out, nil
}

func (e *Editor) DeleteFlashcard(ctx context.Context, cardID string) (Outcome, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	out, err := e.apply(ctx, "Card removed", e.mapSubject(func(s models.Subject) (models.Subject, bool) {
		kept := make([]models.Flashcard, 0, len(s.Flashcards))
		for _, card := range s.Flashcards {
			if card.ID != cardID {
				kept = append(kept, card)
			}
		}
		removed := len(kept) != len(s.Flashcards)
		s.Flashcards = kept
		return s, removed
	}))
	if err != nil {
		return Outcome{}, err
	}
	if e.editingCard == cardID {
		e.exitEdit()
	}
	return out, nil
}

func (e *Editor) exitEdit() {
	e.editingCard = ""
	e.draft.Question, e.draft.Answer = "", ""
}

// apply hands fn to the content state and reports notice only when the tree
// actually changed.
func (e *Editor) apply(ctx context.Context, notice string, fn func([]models.Course) ([]models.Course, bool)) (Outcome, error) {
	changed, err := e.content.ModifyCourses(ctx, fn)
	if err != nil || !changed {
		return Outcome{}, err
	}
	return Outcome{Applied: true, Notice: notice}, nil
}

// mapCourse substitutes the selected course with fn's result. The edit counts
// as a change only if the course exists and fn reports one.
func (e *Editor) mapCourse(fn func(models.Course) (models.Course, bool)) func([]models.Course) ([]models.Course, bool) {
	selected := e.selectedCourse
	return func(courses []models.Course) ([]models.Course, bool) {
		out := make([]models.Course, len(courses))
		changed := false
		for i, c := range courses {
			if c.ID == selected {
				var ok bool
				c, ok = fn(c)
				changed = changed || ok
			}
			out[i] = c
		}
		return out, changed
	}
}

// mapSubject substitutes the selected subject of the selected course.
func (e *Editor) mapSubject(fn func(models.Subject) (models.Subject, bool)) func([]models.Course) ([]models.Course, bool) {
	selected := e.selectedSubject
	return e.mapCourse(func(c models.Course) (models.Course, bool) {
		subjects := make([]models.Subject, len(c.Subjects))
		changed := false
		for i, s := range c.Subjects {
			if s.ID == selected {
				var ok bool
				s, ok = fn(s)
				changed = changed || ok
			}
			subjects[i] = s
		}
		c.Subjects = subjects
		return c, changed
	})
}
