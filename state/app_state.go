// Package state holds the single application-wide content tree and favorite
// set. Every mutation goes through AppState and is persisted immediately.
package state

import (
	"context"
	"sync"

	"github.com/andrewpaige1/nodebook-study/models"
	"github.com/andrewpaige1/nodebook-study/store"
)

const (
	CoursesKey   = "courses"
	FavoritesKey = "favoriteCards"
)

type AppState struct {
	mu        sync.Mutex
	courses   *store.Binding[[]models.Course]
	favorites *store.Binding[[]string]
}

// New binds the application state to s. seed supplies the content tree used
// while nothing is stored under CoursesKey.
func New(s *store.Store, seed func() []models.Course) *AppState {
	if seed == nil {
		seed = func() []models.Course { return []models.Course{} }
	}
	return &AppState{
		courses:   store.Bind(s, CoursesKey, seed),
		favorites: store.Bind(s, FavoritesKey, func() []string { return []string{} }),
	}
}

// Courses returns a private copy of the content tree.
func (a *AppState) Courses(ctx context.Context) []models.Course {
	return a.courses.Get(ctx)
}

// FavoriteIDs returns favorite ids in the order they were added.
func (a *AppState) FavoriteIDs(ctx context.Context) []string {
	return a.favorites.Get(ctx)
}

func (a *AppState) Favorites(ctx context.Context) models.FavoriteSet {
	return models.NewFavoriteSet(a.favorites.Get(ctx))
}

// UpdateCourses applies fn to a copy of the tree and stores the whole result.
// Together with ModifyCourses this is the only path by which the content
// tree changes.
func (a *AppState) UpdateCourses(ctx context.Context, fn func([]models.Course) []models.Course) ([]models.Course, error) {
	next, _, err := a.modifyCourses(ctx, func(courses []models.Course) ([]models.Course, bool) {
		return fn(courses), true
	})
	return next, err
}

// ModifyCourses is UpdateCourses for edits that may find nothing to change.
// The tree is stored only when fn reports a change.
func (a *AppState) ModifyCourses(ctx context.Context, fn func([]models.Course) ([]models.Course, bool)) (bool, error) {
	_, changed, err := a.modifyCourses(ctx, fn)
	return changed, err
}

func (a *AppState) modifyCourses(ctx context.Context, fn func([]models.Course) ([]models.Course, bool)) ([]models.Course, bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	current, err := a.courses.Load(ctx)
	if err != nil {
		return nil, false, err
	}
	next, changed := fn(current)
	if !changed {
		return nil, false, nil
	}
	if next == nil {
		next = []models.Course{}
	}
	if err := a.courses.Set(ctx, next); err != nil {
		return nil, false, err
	}
	return models.CloneCourses(next), true, nil
}

func (a *AppState) ReplaceCourses(ctx context.Context, courses []models.Course) error {
	_, err := a.UpdateCourses(ctx, func([]models.Course) []models.Course {
		return models.CloneCourses(courses)
	})
	return err
}

// ToggleFavorite flips the favorite status of id and reports the new status.
func (a *AppState) ToggleFavorite(ctx context.Context, id string) (bool, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids, err := a.favorites.Load(ctx)
	if err != nil {
		return false, err
	}
	next, removed := without(ids, id)
	if !removed {
		next = append(next, id)
	}
	if err := a.favorites.Set(ctx, next); err != nil {
		return false, err
	}
	return !removed, nil
}

// RemoveFavorite drops id from the favorite set. Absent ids are a no-op.
func (a *AppState) RemoveFavorite(ctx context.Context, id string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	ids, err := a.favorites.Load(ctx)
	if err != nil {
		return err
	}
	next, removed := without(ids, id)
	if !removed {
		return nil
	}
	return a.favorites.Set(ctx, next)
}

func without(ids []string, id string) ([]string, bool) {
	out := make([]string, 0, len(ids))
	removed := false
	for _, existing := range ids {
		if existing == id {
			removed = true
			continue
		}
		out = append(out, existing)
	}
	return out, removed
}
