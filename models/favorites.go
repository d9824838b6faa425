package models

// FavoriteSet is the authoritative record of which flashcard ids are
// favorited. It is keyed by flashcard id alone.
type FavoriteSet map[string]struct{}

func NewFavoriteSet(ids []string) FavoriteSet {
	set := make(FavoriteSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (f FavoriteSet) Has(id string) bool {
	_, ok := f[id]
	return ok
}

// OrphanedFavorites lists favorite ids, in the given order, that no longer
// match any flashcard in the tree.
func OrphanedFavorites(courses []Course, favoriteIDs []string) []string {
	present := make(map[string]struct{})
	for _, c := range courses {
		for _, s := range c.Subjects {
			for _, card := range s.Flashcards {
				present[card.ID] = struct{}{}
			}
		}
	}
	orphans := []string{}
	for _, id := range favoriteIDs {
		if _, ok := present[id]; !ok {
			orphans = append(orphans, id)
		}
	}
	return orphans
}
