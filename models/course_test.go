package models

import "testing"

func TestCloneCourses_DoesNotAlias(t *testing.T) {
	orig := DefaultCourses()
	clone := CloneCourses(orig)

	clone[0].Name = "changed"
	clone[0].Subjects[0].Flashcards[0].Question = "changed"

	if orig[0].Name == "changed" || orig[0].Subjects[0].Flashcards[0].Question == "changed" {
		t.Fatalf("clone shares memory with the original tree")
	}
}

func TestCloneCourses_NilSlicesBecomeEmpty(t *testing.T) {
	clone := CloneCourses([]Course{{ID: "a", Name: "A"}})
	if clone[0].Subjects == nil {
		t.Fatalf("expected non-nil subjects slice")
	}
}

func TestOrphanedFavorites(t *testing.T) {
	orphans := OrphanedFavorites(DefaultCourses(), []string{"4", "gone", "1", "also-gone"})
	if len(orphans) != 2 || orphans[0] != "gone" || orphans[1] != "also-gone" {
		t.Fatalf("unexpected orphans: %v", orphans)
	}
}

func TestCountCards(t *testing.T) {
	if n := CountCards(DefaultCourses()); n != 4 {
		t.Fatalf("expected 4 seed cards, got %d", n)
	}
}
