// Package scheme provides reusable implementations of the per-kind lookup
// protocol: function adapters, map-backed tables with hierarchical ancestor
// fallback, and an always-empty scheme.
package scheme

import (
	"strings"

	"github.com/swatchkit/swatch/internal/item"
)

// Func adapts a plain function to the lookup protocol.
type Func[T any] func(name string) (T, bool)

// Lookup calls the adapted function.
func (f Func[T]) Lookup(name string) (T, bool) {
	return f(name)
}

// Table is a map-backed scheme. With ancestor fallback enabled, a miss on
// "primary.lvl2.accent" retries "primary.lvl2", then "primary", stripping one
// dot segment per step, and fails only when no ancestor is present either.
// The chain is linear in the number of segments.
type Table[T any] struct {
	entries  map[string]T
	fallback bool
}

// TableOption configures a Table.
type TableOption[T any] func(*Table[T])

// WithAncestorFallback controls the ancestor fallback chain. It is enabled
// by default.
func WithAncestorFallback[T any](enabled bool) TableOption[T] {
	return func(t *Table[T]) {
		t.fallback = enabled
	}
}

// NewTable builds a Table over entries. The map is copied; later mutation of
// the argument does not affect the scheme.
func NewTable[T any](entries map[string]T, opts ...TableOption[T]) *Table[T] {
	copied := make(map[string]T, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	t := &Table[T]{entries: copied, fallback: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Lookup resolves name, walking the ancestor chain on a miss when fallback
// is enabled.
func (t *Table[T]) Lookup(name string) (T, bool) {
	for {
		if v, ok := t.entries[name]; ok {
			return v, true
		}
		if !t.fallback {
			break
		}
		idx := strings.LastIndexByte(name, '.')
		if idx < 0 {
			break
		}
		name = name[:idx]
	}
	var zero T
	return zero, false
}

// Len reports the number of direct entries.
func (t *Table[T]) Len() int { return len(t.entries) }

// Empty returns a scheme that resolves nothing. Useful as a pinned override
// that blanks every optional binding.
func Empty[T any]() item.Scheme[T] {
	return Func[T](func(string) (T, bool) {
		var zero T
		return zero, false
	})
}
