package session

import (
	"fmt"
	"sync"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultMaxViewers bounds how many open viewers the registry keeps; the
// oldest is dropped first.
const DefaultMaxViewers = 1024

// Registry holds the viewers of open study views. A viewer receives input
// only while it is registered.
type Registry struct {
	mu      sync.RWMutex
	viewers map[string]*Viewer
	order   []string
	max     int
}

func NewRegistry(maxViewers int) *Registry {
	if maxViewers <= 0 {
		maxViewers = DefaultMaxViewers
	}
	return &Registry{viewers: make(map[string]*Viewer), max: maxViewers}
}

func (r *Registry) Open(v *Viewer) (string, error) {
	id, err := gonanoid.New()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for len(r.order) >= r.max {
		oldest := r.order[0]
		r.order = r.order[1:]
		delete(r.viewers, oldest)
	}
	r.viewers[id] = v
	r.order = append(r.order, id)
	return id, nil
}

func (r *Registry) Get(id string) (*Viewer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.viewers[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return v, nil
}

// Close deregisters the viewer. Closing an unknown id reports ErrSessionNotFound.
func (r *Registry) Close(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.viewers[id]; !ok {
		return ErrSessionNotFound
	}
	delete(r.viewers, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.viewers)
}
