// Package store is a durable key/value store of JSON values with an
// in-memory mirror that stays authoritative for the life of the process.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/andrewpaige1/nodebook-study/logger"
)

var ErrNotFound = errors.New("key not found")

// Backend is the durable side of the store.
type Backend interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, raw []byte) error
}

type Store struct {
	backend Backend
	log     *logger.Logger

	mu     sync.RWMutex
	mirror map[string][]byte
}

func New(backend Backend, log *logger.Logger) *Store {
	if log == nil {
		log = logger.NewNop()
	}
	return &Store{
		backend: backend,
		log:     log.With("component", "store"),
		mirror:  make(map[string][]byte),
	}
}

// Read decodes the value stored under key into dst. It reports false with a
// nil error when the key is absent or fails to parse; dst is left untouched
// then. A backend failure is returned as an error so callers never mistake an
// unreadable value for a missing one.
func (s *Store) Read(ctx context.Context, key string, dst any) (bool, error) {
	s.mu.RLock()
	raw, ok := s.mirror[key]
	s.mu.RUnlock()

	if !ok {
		loaded, err := s.backend.Load(ctx, key)
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("load %q: %w", key, err)
		}
		raw = loaded
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		s.log.Warn("stored value does not parse, using default", "key", key, "error", err)
		return false, nil
	}

	if !ok {
		s.mu.Lock()
		if _, exists := s.mirror[key]; !exists {
			s.mirror[key] = raw
		}
		s.mu.Unlock()
	}
	return true, nil
}

// Write updates the mirror and then the backend. A backend failure is logged
// and swallowed; only values that cannot be encoded are reported.
func (s *Store) Write(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}

	s.mu.Lock()
	s.mirror[key] = raw
	s.mu.Unlock()

	if err := s.backend.Save(ctx, key, raw); err != nil {
		s.log.Error("persist failed, keeping in-memory value", "key", key, "error", err)
	}
	return nil
}

// Binding ties one key to a typed value with a default.
type Binding[T any] struct {
	store *Store
	key   string
	def   func() T
}

// Bind returns a binding whose Get falls back to def() when nothing usable
// is stored. def is called on every fallback so callers get a fresh value.
func Bind[T any](s *Store, key string, def func() T) *Binding[T] {
	return &Binding[T]{store: s, key: key, def: def}
}

func (b *Binding[T]) Key() string { return b.key }

// Get is the read used for rendering: any failure yields the default.
func (b *Binding[T]) Get(ctx context.Context) T {
	v, err := b.Load(ctx)
	if err != nil {
		b.store.log.Warn("read failed, using default", "key", b.key, "error", err)
		return b.def()
	}
	return v
}

// Load is the read used before a write. It falls back to the default only
// when nothing usable is stored and reports backend failures.
func (b *Binding[T]) Load(ctx context.Context) (T, error) {
	var v T
	found, err := b.store.Read(ctx, b.key, &v)
	if err != nil {
		var zero T
		return zero, err
	}
	if !found {
		return b.def(), nil
	}
	return v, nil
}

func (b *Binding[T]) Set(ctx context.Context, v T) error {
	return b.store.Write(ctx, b.key, v)
}
