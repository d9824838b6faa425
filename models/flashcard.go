package models

// Flashcard is a single question/answer pair inside a subject.
// Favorite status is not stored here; see FavoriteSet.
type Flashcard struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// StudyCard is a flashcard as it appears in a study list, with its favorite
// flag looked up from the favorite set when the list was built.
type StudyCard struct {
	Flashcard
	IsFavorited bool `json:"isFavorited"`
}
