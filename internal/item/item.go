// Package item implements the symbolic style-token engine: resolvable
// descriptors, deferred (lazy) transformations, and prefix matching of
// dot-separated token names.
package item

import "fmt"

// Scheme is the per-kind lookup protocol. Implementations must be pure:
// repeated lookups with the same name return the same result for as long as
// the scheme value itself is unchanged. Returning ok=false signals an
// unsupported or unknown name; the engine propagates it upward unchanged.
type Scheme[T any] interface {
	Lookup(name string) (T, bool)
}

// Item is a symbolic, resolvable descriptor for a value of kind T. An Item is
// either named (resolved by handing its name to the scheme) or derived
// (resolved locally through a Lazy computation that never exposes a name to
// the scheme). The zero Item means "no item" and resolves to nothing.
type Item[T any] struct {
	name string
	lazy *Lazy[T]
}

// Named returns an item that resolves by direct scheme lookup of name.
// Names are conventionally dot-separated hierarchical segments, e.g.
// "primary.lvl1".
func Named[T any](name string) Item[T] {
	return Item[T]{name: name}
}

// FromLazy wraps a deferred computation as an item.
func FromLazy[T any](lz *Lazy[T]) Item[T] {
	return Item[T]{lazy: lz}
}

// Name reports the symbolic name of a named item. Derived items have no name.
func (it Item[T]) Name() (string, bool) {
	if it.lazy != nil || it.name == "" {
		return "", false
	}
	return it.name, true
}

// IsZero reports whether the item is the "no item" zero value.
func (it Item[T]) IsZero() bool {
	return it.name == "" && it.lazy == nil
}

// String returns a human-readable description of the resolution recipe.
func (it Item[T]) String() string {
	if it.lazy != nil {
		return it.lazy.Description()
	}
	return it.name
}

// Key returns the structural recipe key used for equality. Operators embed
// their operands' keys when assembling derived recipes.
func (it Item[T]) Key() string {
	if it.lazy != nil {
		return it.lazy.Key()
	}
	return "named(" + it.name + ")"
}

// Equal reports whether two items share the same resolution recipe: named
// items compare by name, derived items by their recipe keys. Transform
// functions are not part of the recipe, so two transforms built from equal
// sources under the same transform name compare equal even when their
// functions differ.
func (it Item[T]) Equal(other Item[T]) bool {
	return it.Key() == other.Key()
}

// Resolve evaluates the item against s. Named items delegate to the scheme;
// derived items run their deferred computation, passing s through to any
// nested items. A zero item never resolves.
func (it Item[T]) Resolve(s Scheme[T]) (T, bool) {
	if it.lazy != nil {
		return it.lazy.Resolve(s)
	}
	if it.name == "" || s == nil {
		var zero T
		return zero, false
	}
	return s.Lookup(it.name)
}

// Transform returns a derived item that applies fn to the resolution of it.
// The derived item fails to resolve whenever the source does. Its description
// is "<source>->[name]"; name also identifies the transform for equality.
func Transform[T any](it Item[T], name string, fn func(T) T) Item[T] {
	key := fmt.Sprintf("transform(%s,%s)", name, it.Key())
	desc := it.String() + "->[" + name + "]"
	return FromLazy(NewLazy(key, desc, func(s Scheme[T]) (T, bool) {
		v, ok := it.Resolve(s)
		if !ok {
			var zero T
			return zero, false
		}
		return fn(v), true
	}))
}
