package admin

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/andrewpaige1/nodebook-study/logger"
	"github.com/andrewpaige1/nodebook-study/models"
	"github.com/andrewpaige1/nodebook-study/state"
	"github.com/andrewpaige1/nodebook-study/store"
	"github.com/andrewpaige1/nodebook-study/testutil"
)

func newTestEditor(t *testing.T) (*Editor, *state.AppState) {
	t.Helper()
	app := state.New(testutil.Store(t), models.DefaultCourses)
	e := NewEditor(app)
	n := 0
	e.newID = func() (string, error) {
		n++
		return "id" + strconv.Itoa(n), nil
	}
	return e, app
}

func TestAddCourse_TrimsAndAppends(t *testing.T) {
	ctx := context.Background()
	e, app := newTestEditor(t)

	out, err := e.AddCourse(ctx, "  Física  ")
	if err != nil || !out.Applied {
		t.Fatalf("expected applied, got %+v %v", out, err)
	}
	courses := app.Courses(ctx)
	last := courses[len(courses)-1]
	if len(courses) != 3 || last.Name != "Física" || last.ID != "id1" {
		t.Fatalf("unexpected tree %+v", courses)
	}
}

func TestAdd_BlankInputIsSilentNoop(t *testing.T) {
	ctx := context.Background()
	e, app := newTestEditor(t)
	e.SelectCourse("1")
	e.SelectSubject("1")

	for name, run := range map[string]func() (Outcome, error){
		"course":  func() (Outcome, error) { return e.AddCourse(ctx, "   ") },
		"subject": func() (Outcome, error) { return e.AddSubject(ctx, "\t") },
		"card":    func() (Outcome, error) { return e.AddFlashcard(ctx, "q", " ") },
		"update":  func() (Outcome, error) { return e.UpdateFlashcard(ctx, "1", "", "a") },
	} {
		out, err := run()
		if err != nil || out.Applied {
			t.Fatalf("%s: expected silent no-op, got %+v %v", name, out, err)
		}
	}
	if n := models.CountCards(app.Courses(ctx)); n != 4 {
		t.Fatalf("tree should be unchanged, got %d cards", n)
	}
}

func TestAddSubject_RequiresSelectedCourse(t *testing.T) {
	ctx := context.Background()
	e, app := newTestEditor(t)

	if out, _ := e.AddSubject(ctx, "Trigonometria"); out.Applied {
		t.Fatalf("expected no-op without a selected course")
	}
	e.SelectCourse("1")
	if out, _ := e.AddSubject(ctx, "Trigonometria"); !out.Applied {
		t.Fatalf("expected subject added")
	}
	course, _ := models.FindCourse(app.Courses(ctx), "1")
	if len(course.Subjects) != 3 || course.Subjects[2].Name != "Trigonometria" {
		t.Fatalf("unexpected subjects %+v", course.Subjects)
	}
	other, _ := models.FindCourse(app.Courses(ctx), "2")
	if len(other.Subjects) != 1 {
		t.Fatalf("other course must be untouched")
	}
}

func TestFlashcardLifecycle(t *testing.T) {
	ctx := context.Background()
	e, app := newTestEditor(t)
	e.SelectCourse("1")
	e.SelectSubject("2")

	if out, _ := e.AddFlashcard(ctx, "Área do quadrado?", "l²"); !out.Applied {
		t.Fatalf("expected card added")
	}
	if !e.StartEdit(ctx, "id1") {
		t.Fatalf("expected to enter edit mode")
	}
	if v := e.View(ctx); v.EditingCard != "id1" || v.Draft.Question != "Área do quadrado?" {
		t.Fatalf("draft not prefilled: %+v", v)
	}
	if out, _ := e.UpdateFlashcard(ctx, "id1", " Área do quadrado de lado l? ", "l²"); !out.Applied {
		t.Fatalf("expected update")
	}
	v := e.View(ctx)
	if v.EditingCard != "" || v.Draft != (Draft{}) {
		t.Fatalf("update must exit edit mode and clear the draft: %+v", v)
	}

	course, _ := models.FindCourse(app.Courses(ctx), "1")
	subject, _ := course.FindSubject("2")
	if len(subject.Flashcards) != 2 || subject.Flashcards[1].Question != "Área do quadrado de lado l?" {
		t.Fatalf("unexpected flashcards %+v", subject.Flashcards)
	}

	if out, _ := e.DeleteFlashcard(ctx, "id1"); !out.Applied {
		t.Fatalf("expected delete")
	}
	course, _ = models.FindCourse(app.Courses(ctx), "1")
	subject, _ = course.FindSubject("2")
	if len(subject.Flashcards) != 1 || subject.Flashcards[0].ID != "3" {
		t.Fatalf("unexpected flashcards after delete %+v", subject.Flashcards)
	}
}

func TestStartEdit_UnknownCard(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SelectCourse("1")
	e.SelectSubject("1")
	if e.StartEdit(context.Background(), "4") {
		t.Fatalf("card 4 belongs to another subject")
	}
}

func TestCancelEdit(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEditor(t)
	e.SelectCourse("1")
	e.SelectSubject("1")
	e.StartEdit(ctx, "1")
	e.CancelEdit()
	if v := e.View(ctx); v.EditingCard != "" || v.Draft != (Draft{}) {
		t.Fatalf("cancel must clear edit state: %+v", v)
	}
}

func TestSelectCourse_ResetsSubject(t *testing.T) {
	e, _ := newTestEditor(t)
	e.SelectCourse("1")
	e.SelectSubject("2")
	e.SelectCourse("2")
	if v := e.View(context.Background()); v.SelectedSubject != "" || v.SelectedCourse != "2" {
		t.Fatalf("unexpected selection %+v", v)
	}
}

func TestDeleteCourse_CascadesAndClearsSelection(t *testing.T) {
	ctx := context.Background()
	e, app := newTestEditor(t)
	e.SelectCourse("1")
	e.SelectSubject("1")

	if out, _ := e.DeleteCourse(ctx, "1"); !out.Applied {
		t.Fatalf("expected delete")
	}
	v := e.View(ctx)
	if v.SelectedCourse != "" || v.SelectedSubject != "" {
		t.Fatalf("selection must be cleared, got %+v", v)
	}
	courses := app.Courses(ctx)
	if len(courses) != 1 || models.CountCards(courses) != 1 {
		t.Fatalf("course and its cards must be gone, got %+v", courses)
	}
}

func TestDeleteCourse_OtherCourseKeepsSelection(t *testing.T) {
	ctx := context.Background()
	e, _ := newTestEditor(t)
	e.SelectCourse("1")
	e.SelectSubject("1")
	_, _ = e.DeleteCourse(ctx, "2")
	if v := e.View(ctx); v.SelectedCourse != "1" || v.SelectedSubject != "1" {
		t.Fatalf("selection should survive deleting another course, got %+v", v)
	}
}

func TestDeleteSubject_ClearsSelection(t *testing.T) {
	ctx := context.Background()
	e, app := newTestEditor(t)
	e.SelectCourse("1")
	e.SelectSubject("1")

	if out, _ := e.DeleteSubject(ctx, "1"); !out.Applied {
		t.Fatalf("expected delete")
	}
	if v := e.View(ctx); v.SelectedSubject != "" || v.SelectedCourse != "1" {
		t.Fatalf("unexpected selection %+v", v)
	}
	course, _ := models.FindCourse(app.Courses(ctx), "1")
	if len(course.Subjects) != 1 || course.Subjects[0].ID != "2" {
		t.Fatalf("unexpected subjects %+v", course.Subjects)
	}
}

func TestView_ReportsOrphanedFavorites(t *testing.T) {
	ctx := context.Background()
	e, app := newTestEditor(t)
	_, _ = app.ToggleFavorite(ctx, "4")
	e.SelectCourse("2")
	e.SelectSubject("3")
	_, _ = e.DeleteFlashcard(ctx, "4")

	v := e.View(ctx)
	if len(v.OrphanedFavorites) != 1 || v.OrphanedFavorites[0] != "4" {
		t.Fatalf("expected orphan 4, got %v", v.OrphanedFavorites)
	}
	if !app.Favorites(ctx).Has("4") {
		t.Fatalf("orphans must not be removed automatically")
	}
}

func TestAddCourse_IDFailure(t *testing.T) {
	e, _ := newTestEditor(t)
	e.newID = func() (string, error) { return "", errors.New("no entropy") }
	if _, err := e.AddCourse(context.Background(), "X"); err == nil {
		t.Fatalf("expected id generation error")
	}
}

func TestRegistry_OneEditorPerSession(t *testing.T) {
	app := state.New(testutil.Store(t), models.DefaultCourses)
	r := NewRegistry(app, 0)
	if r.Editor("a") != r.Editor("a") {
		t.Fatalf("expected the same editor for the same session")
	}
	if r.Editor("a") == r.Editor("b") {
		t.Fatalf("expected distinct editors per session")
	}
}

func TestEdits_MissingTargetIsNotApplied(t *testing.T) {
	ctx := context.Background()
	backend := &testutil.FlakyBackend{Backend: store.NewGormBackend(testutil.DB(t))}
	app := state.New(store.New(backend, logger.NewNop()), models.DefaultCourses)
	e := NewEditor(app)
	e.SelectCourse("1")
	e.SelectSubject("1")

	tests := map[string]func() (Outcome, error){
		"delete course":  func() (Outcome, error) { return e.DeleteCourse(ctx, "missing") },
		"delete subject": func() (Outcome, error) { return e.DeleteSubject(ctx, "missing") },
		"update card":    func() (Outcome, error) { return e.UpdateFlashcard(ctx, "missing", "q", "a") },
		"delete card":    func() (Outcome, error) { return e.DeleteFlashcard(ctx, "missing") },
	}
	for name, run := range tests {
		out, err := run()
		if err != nil || out.Applied || out.Notice != "" {
			t.Fatalf("%s: expected not applied, got %+v %v", name, out, err)
		}
	}
	if backend.Saves != 0 {
		t.Fatalf("unchanged tree must not be stored, got %d saves", backend.Saves)
	}
}

func TestAddSubject_SelectedCourseDeletedElsewhere(t *testing.T) {
	ctx := context.Background()
	app := state.New(testutil.Store(t), models.DefaultCourses)
	mine, other := NewEditor(app), NewEditor(app)
	mine.SelectCourse("2")

	if out, err := other.DeleteCourse(ctx, "2"); err != nil || !out.Applied {
		t.Fatalf("expected delete, got %+v %v", out, err)
	}
	out, err := mine.AddSubject(ctx, "Império")
	if err != nil || out.Applied {
		t.Fatalf("expected not applied for a vanished course, got %+v %v", out, err)
	}
	if courses := app.Courses(ctx); len(courses) != 1 || len(courses[0].Subjects) != 2 {
		t.Fatalf("tree must be unchanged, got %+v", courses)
	}
}

func TestRegistry_EvictsOldestSession(t *testing.T) {
	app := state.New(testutil.Store(t), models.DefaultCourses)
	r := NewRegistry(app, 2)

	first := r.Editor("a")
	first.SelectCourse("1")
	r.Editor("b")
	r.Editor("c")

	if r.Len() != 2 {
		t.Fatalf("expected 2 editors, got %d", r.Len())
	}
	if again := r.Editor("a"); again == first || again.View(context.Background()).SelectedCourse != "" {
		t.Fatalf("evicted session should get a fresh editor")
	}
}
