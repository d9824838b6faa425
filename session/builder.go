// Package session turns the content tree into ordered study lists and drives
// the one-card-at-a-time viewer over them.
package session

import (
	"errors"

	"github.com/andrewpaige1/nodebook-study/models"
)

var (
	ErrCourseNotFound  = errors.New("course not found")
	ErrSessionNotFound = errors.New("study session not found")
)

// BuildForSelection lists the cards of the chosen subjects of one course.
// Subjects keep the course's order, not the order of subjectIDs, and every
// card's favorite flag comes from favs.
func BuildForSelection(courses []models.Course, courseID string, subjectIDs []string, favs models.FavoriteSet) ([]models.StudyCard, error) {
	course, ok := models.FindCourse(courses, courseID)
	if !ok {
		return nil, ErrCourseNotFound
	}

	wanted := make(map[string]struct{}, len(subjectIDs))
	for _, id := range subjectIDs {
		wanted[id] = struct{}{}
	}

	cards := []models.StudyCard{}
	for _, subject := range course.Subjects {
		if _, ok := wanted[subject.ID]; !ok {
			continue
		}
		for _, card := range subject.Flashcards {
			cards = append(cards, models.StudyCard{Flashcard: card, IsFavorited: favs.Has(card.ID)})
		}
	}
	return cards, nil
}

// BuildFavorites lists every favorited card in course, subject, card order.
func BuildFavorites(courses []models.Course, favs models.FavoriteSet) []models.StudyCard {
	cards := []models.StudyCard{}
	for _, course := range courses {
		for _, subject := range course.Subjects {
			for _, card := range subject.Flashcards {
				if favs.Has(card.ID) {
					cards = append(cards, models.StudyCard{Flashcard: card, IsFavorited: true})
				}
			}
		}
	}
	return cards
}

// CountSelection is the number of cards BuildForSelection would return, or 0
// for an unknown course.
func CountSelection(courses []models.Course, courseID string, subjectIDs []string) int {
	cards, err := BuildForSelection(courses, courseID, subjectIDs, nil)
	if err != nil {
		return 0
	}
	return len(cards)
}
