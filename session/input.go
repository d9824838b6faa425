package session

// MinSwipeDistance is the horizontal travel, in logical pixels, a drag must
// exceed to count as navigation.
const MinSwipeDistance = 50.0

type Action string

const (
	ActionNone     Action = "none"
	ActionFlip     Action = "flip"
	ActionNext     Action = "next"
	ActionPrevious Action = "previous"
)

// Key codes as reported by the browser's KeyboardEvent.code.
const (
	KeySpace      = "Space"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
)

// Gesture is a horizontal drag. EndX is nil when the pointer never moved.
type Gesture struct {
	StartX float64  `json:"startX"`
	EndX   *float64 `json:"endX"`
}

// HandleKey dispatches a key press to the viewer. Any action other than
// ActionNone means the client must suppress the key's default behavior.
func (v *Viewer) HandleKey(code string) Action {
	switch code {
	case KeySpace:
		v.Flip()
		return ActionFlip
	case KeyArrowLeft:
		v.Previous()
		return ActionPrevious
	case KeyArrowRight:
		v.Next()
		return ActionNext
	default:
		return ActionNone
	}
}

// HandleSwipe treats a leftward drag as next and a rightward drag as previous.
func (v *Viewer) HandleSwipe(g Gesture) Action {
	if g.EndX == nil {
		return ActionNone
	}
	distance := g.StartX - *g.EndX
	switch {
	case distance > MinSwipeDistance:
		v.Next()
		return ActionNext
	case distance < -MinSwipeDistance:
		v.Previous()
		return ActionPrevious
	default:
		return ActionNone
	}
}
