package admin

import "sync"

// DefaultMaxEditors bounds how many admin sessions keep an editor; the
// oldest session loses its editor state first.
const DefaultMaxEditors = 256

// Registry keeps one editor per admin session.
type Registry struct {
	mu      sync.Mutex
	content ContentState
	editors map[string]*Editor
	order   []string
	max     int
}

func NewRegistry(content ContentState, maxEditors int) *Registry {
	if maxEditors <= 0 {
		maxEditors = DefaultMaxEditors
	}
	return &Registry{content: content, editors: make(map[string]*Editor), max: maxEditors}
}

// Editor returns the session's editor, creating it on first use. An evicted
// session gets a fresh editor with nothing selected.
func (r *Registry) Editor(sessionID string) *Editor {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.editors[sessionID]; ok {
		return e
	}

	for len(r.order) >= r.max {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.editors, oldest)
	}
	e := NewEditor(r.content)
	r.editors[sessionID] = e
	r.order = append(r.order, sessionID)
	return e
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.editors)
}
