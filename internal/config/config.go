// Package config holds the process-wide default scheme per item kind. Stores
// are explicit, injectable values rather than package statics so tests can
// run against isolated instances; swapping a store's scheme is the sole
// trigger for the change broadcast that drives binding resynchronization.
package config

import (
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/swatchkit/swatch/internal/item"
	"github.com/swatchkit/swatch/internal/notify"
	"github.com/swatchkit/swatch/internal/scheme"
	"github.com/swatchkit/swatch/internal/style"
)

// Store is the current default scheme for one item kind. Any caller may
// reassign it at any time; every assignment broadcasts, with no debouncing
// beyond the serial delivery queue.
type Store[T any] struct {
	mu      sync.RWMutex
	current item.Scheme[T]
	hub     *notify.Hub
}

// NewStore creates a store with initial as the default scheme, broadcasting
// on queue.
func NewStore[T any](initial item.Scheme[T], queue *notify.Queue) *Store[T] {
	return &Store[T]{current: initial, hub: notify.NewHub(queue)}
}

// Current returns the default scheme. May be nil when never configured.
func (s *Store[T]) Current() item.Scheme[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set replaces the default scheme and broadcasts the change, even when next
// equals the previous value.
func (s *Store[T]) Set(next item.Scheme[T]) {
	s.mu.Lock()
	s.current = next
	s.mu.Unlock()
	s.hub.Broadcast()
}

// Subscribe registers fn for asynchronous delivery on every Set.
func (s *Store[T]) Subscribe(fn func()) *notify.Subscription {
	return s.hub.Subscribe(fn)
}

// Config groups the per-kind default-scheme stores on one shared delivery
// queue.
type Config struct {
	queue *notify.Queue

	Colors     *Store[style.Color]
	Glyphs     *Store[style.Glyph]
	TextStyles *Store[lipgloss.Style]
	Texts      *Store[string]
}

// New creates a Config whose stores all start empty (resolving nothing).
func New() *Config {
	q := notify.NewQueue()
	return &Config{
		queue:      q,
		Colors:     NewStore(scheme.Empty[style.Color](), q),
		Glyphs:     NewStore(scheme.Empty[style.Glyph](), q),
		TextStyles: NewStore(scheme.Empty[lipgloss.Style](), q),
		Texts:      NewStore(scheme.Empty[string](), q),
	}
}

// Queue exposes the shared delivery queue. Sync it in tests to observe
// deferred refreshes deterministically.
func (c *Config) Queue() *notify.Queue { return c.queue }

// Close stops the delivery queue.
func (c *Config) Close() { c.queue.Close() }
