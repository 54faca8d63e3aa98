package item

// Lazy is an immutable deferred computation from a scheme to a value of kind
// T. It is the building block behind every derived item: blends, opacity,
// rendering modes, and arbitrary transforms all produce a new Lazy wrapping
// the prior recipe.
//
// Equality of derived items is structural: each Lazy carries a recipe key
// assembled recursively by its constructor, so two independently built
// identical recipes compare equal without comparing closures. The resolver
// must be a pure function of the scheme; two schemes may be resolved against
// the same Lazy concurrently without interference.
type Lazy[T any] struct {
	key  string
	desc string
	fn   func(Scheme[T]) (T, bool)
}

// NewLazy constructs a deferred computation. key is the structural recipe
// identity (equal keys mean equal recipes); desc is the human-readable form
// used in debug output.
func NewLazy[T any](key, desc string, fn func(Scheme[T]) (T, bool)) *Lazy[T] {
	if fn == nil {
		panic("item: nil lazy resolver")
	}
	return &Lazy[T]{key: key, desc: desc, fn: fn}
}

// Direct wraps an already-concrete value. The description doubles as the
// recipe identity: two Direct nodes compare equal iff their descriptions
// match, since arbitrary concrete values are not required to be comparable.
func Direct[T any](desc string, v T) *Lazy[T] {
	return &Lazy[T]{
		key:  "direct(" + desc + ")",
		desc: desc,
		fn: func(Scheme[T]) (T, bool) {
			return v, true
		},
	}
}

// Key returns the structural recipe key.
func (lz *Lazy[T]) Key() string { return lz.key }

// Description returns the human-readable recipe.
func (lz *Lazy[T]) Description() string { return lz.desc }

// Resolve runs the deferred computation against s.
func (lz *Lazy[T]) Resolve(s Scheme[T]) (T, bool) {
	return lz.fn(s)
}
