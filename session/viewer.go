package session

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/andrewpaige1/nodebook-study/models"
)

type Mode string

const (
	ModeSelection Mode = "selection"
	ModeFavorites Mode = "favorites"
)

// FavoriteToggler is the write side of the favorite set. AppState implements it.
type FavoriteToggler interface {
	ToggleFavorite(ctx context.Context, id string) (bool, error)
	RemoveFavorite(ctx context.Context, id string) error
}

// Viewer shows one card of a study list at a time. The flip state belongs to
// the displayed card: whenever the card's id changes the front is shown again.
type Viewer struct {
	mu        sync.Mutex
	mode      Mode
	cards     []models.StudyCard
	index     int
	flipped   bool
	favorites FavoriteToggler
}

func NewViewer(mode Mode, cards []models.StudyCard, favorites FavoriteToggler) *Viewer {
	owned := make([]models.StudyCard, len(cards))
	copy(owned, cards)
	return &Viewer{mode: mode, cards: owned, favorites: favorites}
}

// View is the serializable state of a viewer.
type View struct {
	SessionID string            `json:"sessionId,omitempty"`
	Mode      Mode              `json:"mode"`
	Empty     bool              `json:"empty"`
	Card      *models.StudyCard `json:"card,omitempty"`
	Index     int               `json:"index"`
	Total     int               `json:"total"`
	Flipped   bool              `json:"flipped"`
	Progress  int               `json:"progress"`
	Counter   string            `json:"counter,omitempty"`
}

func (v *Viewer) Snapshot() View {
	v.mu.Lock()
	defer v.mu.Unlock()

	view := View{
		Mode:    v.mode,
		Empty:   len(v.cards) == 0,
		Index:   v.index,
		Total:   len(v.cards),
		Flipped: v.flipped,
	}
	if card, ok := v.current(); ok {
		view.Card = &card
		view.Progress = int(math.Round(float64(v.index+1) / float64(len(v.cards)) * 100))
		view.Counter = fmt.Sprintf("%d of %d", v.index+1, len(v.cards))
	}
	return view
}

func (v *Viewer) Current() (models.StudyCard, bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current()
}

func (v *Viewer) Len() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.cards)
}

func (v *Viewer) Flip() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if len(v.cards) == 0 {
		return
	}
	v.flipped = !v.flipped
}

// Next stops at the last card.
func (v *Viewer) Next() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.index < len(v.cards)-1 {
		v.moveTo(v.index + 1)
	}
}

// Previous stops at the first card.
func (v *Viewer) Previous() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.index > 0 {
		v.moveTo(v.index - 1)
	}
}

func (v *Viewer) Restart() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.moveTo(0)
}

// ToggleFavorite flips the favorite status of cardID, or of the displayed
// card when cardID is empty. In favorites mode the card leaves the list.
// Neither the index nor the flip state changes except as a consequence of
// the displayed card leaving the list.
func (v *Viewer) ToggleFavorite(ctx context.Context, cardID string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	if cardID == "" {
		card, ok := v.current()
		if !ok {
			return nil
		}
		cardID = card.ID
	}

	if v.mode == ModeFavorites {
		if err := v.favorites.RemoveFavorite(ctx, cardID); err != nil {
			return err
		}
		v.removeCard(cardID)
		return nil
	}

	favorited, err := v.favorites.ToggleFavorite(ctx, cardID)
	if err != nil {
		return err
	}
	for i := range v.cards {
		if v.cards[i].ID == cardID {
			v.cards[i].IsFavorited = favorited
		}
	}
	return nil
}

func (v *Viewer) current() (models.StudyCard, bool) {
	if v.index < 0 || v.index >= len(v.cards) {
		return models.StudyCard{}, false
	}
	return v.cards[v.index], true
}

func (v *Viewer) currentID() string {
	card, _ := v.current()
	return card.ID
}

func (v *Viewer) moveTo(index int) {
	before := v.currentID()
	v.index = index
	v.settleFlip(before)
}

// removeCard drops every entry for cardID. The index only moves when it
// would otherwise point past the end of the shrunk list.
func (v *Viewer) removeCard(cardID string) {
	before := v.currentID()
	kept := v.cards[:0]
	for _, card := range v.cards {
		if card.ID != cardID {
			kept = append(kept, card)
		}
	}
	v.cards = kept
	if v.index >= len(v.cards) {
		v.index = max(0, len(v.cards)-1)
	}
	v.settleFlip(before)
}

func (v *Viewer) settleFlip(previousID string) {
	if v.currentID() != previousID || len(v.cards) == 0 {
		v.flipped = false
	}
}
