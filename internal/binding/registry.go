// Package binding ties symbolic items to mutable properties and keeps them
// synchronized with scheme changes. Each Registry is a per-owner binding
// table for one item kind: it holds at most one live binding per property
// key, applies new bindings synchronously, and re-applies every binding
// asynchronously whenever the followed default scheme changes.
package binding

import (
	"sync"
	"weak"

	"github.com/swatchkit/swatch/internal/item"
	"github.com/swatchkit/swatch/internal/notify"
)

// Source is the feed a registry follows: the current default scheme for its
// kind plus change notifications. *config.Store satisfies it.
type Source[T any] interface {
	Current() item.Scheme[T]
	Subscribe(fn func()) *notify.Subscription
}

type update[T any] struct {
	it     item.Item[T]
	resync func(item.Scheme[T])
}

// Registry is a binding table for one (owner, kind) pair. It subscribes to
// its source only while it has at least one binding and no local override
// scheme; a pinned registry refreshes only on manual Resync or local-scheme
// reassignment. Registries for different owners are independent.
type Registry[T any] struct {
	mu      sync.Mutex
	source  Source[T]
	local   item.Scheme[T]
	updates map[string]*update[T]
	sub     *notify.Subscription
}

// NewRegistry creates an empty registry following source.
func NewRegistry[T any](source Source[T]) *Registry[T] {
	if source == nil {
		panic("binding: nil source")
	}
	return &Registry[T]{
		source:  source,
		updates: make(map[string]*update[T]),
	}
}

// Set installs or replaces the binding for key and applies it immediately
// against the effective scheme. apply receives each successfully resolved
// value; a failed resolution leaves the target at its previous value. A zero
// item (or nil apply) removes the binding instead.
func (r *Registry[T]) Set(key string, it item.Item[T], apply func(T)) {
	if it.IsZero() || apply == nil {
		r.Remove(key)
		return
	}
	r.install(key, &update[T]{
		it: it,
		resync: func(s item.Scheme[T]) {
			if v, ok := it.Resolve(s); ok {
				apply(v)
			}
		},
	})
}

// SetOptional is Set for optional-valued targets: a failed resolution applies
// nil, clearing the target rather than holding its previous value.
func (r *Registry[T]) SetOptional(key string, it item.Item[T], apply func(*T)) {
	if it.IsZero() || apply == nil {
		r.Remove(key)
		return
	}
	r.install(key, &update[T]{
		it: it,
		resync: func(s item.Scheme[T]) {
			if v, ok := it.Resolve(s); ok {
				apply(&v)
			} else {
				apply(nil)
			}
		},
	})
}

// OnChange installs a closure binding under key: fn runs with the effective
// scheme on every refresh. When applyNow is true fn also runs synchronously
// before OnChange returns. A nil fn removes the binding.
func (r *Registry[T]) OnChange(key string, applyNow bool, fn func(item.Scheme[T])) {
	if fn == nil {
		r.Remove(key)
		return
	}
	u := &update[T]{resync: fn}

	r.mu.Lock()
	r.updates[key] = u
	eff := r.effectiveLocked()
	r.refreshSubscriptionLocked()
	r.mu.Unlock()

	if applyNow {
		u.resync(eff)
	}
}

// Remove drops the binding for key. Dropping the last binding unsubscribes
// the registry from its source, and removal wins over any pending deferred
// refresh: the entry is gone before that refresh runs.
func (r *Registry[T]) Remove(key string) {
	r.mu.Lock()
	delete(r.updates, key)
	r.refreshSubscriptionLocked()
	r.mu.Unlock()
}

// Item returns the symbolic item bound under key, if any. Closure bindings
// report a zero item.
func (r *Registry[T]) Item(key string) (item.Item[T], bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.updates[key]
	if !ok {
		return item.Item[T]{}, false
	}
	return u.it, true
}

// Len reports the number of live bindings.
func (r *Registry[T]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.updates)
}

// SetLocal pins the registry to an override scheme, detaching it from source
// changes, and resynchronizes every binding immediately — even when s equals
// the previous override. Passing nil clears the pin, re-subscribes, and
// resynchronizes against the source's current scheme.
func (r *Registry[T]) SetLocal(s item.Scheme[T]) {
	r.mu.Lock()
	r.local = s
	r.refreshSubscriptionLocked()
	eff := r.effectiveLocked()
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	for _, u := range snapshot {
		u.resync(eff)
	}
}

// ClearLocal removes the override scheme.
func (r *Registry[T]) ClearLocal() {
	r.SetLocal(nil)
}

// Local reports whether a local override scheme is set.
func (r *Registry[T]) Local() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.local != nil
}

// Resync synchronously re-applies every binding against the effective
// scheme.
func (r *Registry[T]) Resync() {
	r.mu.Lock()
	eff := r.effectiveLocked()
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	for _, u := range snapshot {
		u.resync(eff)
	}
}

// Close removes every binding and detaches from the source.
func (r *Registry[T]) Close() {
	r.mu.Lock()
	r.updates = make(map[string]*update[T])
	r.refreshSubscriptionLocked()
	r.mu.Unlock()
}

func (r *Registry[T]) install(key string, u *update[T]) {
	r.mu.Lock()
	r.updates[key] = u
	eff := r.effectiveLocked()
	r.refreshSubscriptionLocked()
	r.mu.Unlock()

	// Initial application is synchronous so the caller observes the value
	// immediately on assignment.
	u.resync(eff)
}

func (r *Registry[T]) effectiveLocked() item.Scheme[T] {
	if r.local != nil {
		return r.local
	}
	return r.source.Current()
}

func (r *Registry[T]) snapshotLocked() []*update[T] {
	snapshot := make([]*update[T], 0, len(r.updates))
	for _, u := range r.updates {
		snapshot = append(snapshot, u)
	}
	return snapshot
}

// refreshSubscriptionLocked keeps the source subscription alive exactly
// while the registry is auto-following: at least one binding and no pin.
func (r *Registry[T]) refreshSubscriptionLocked() {
	want := len(r.updates) > 0 && r.local == nil
	switch {
	case want && r.sub == nil:
		r.sub = r.source.Subscribe(r.deferredResync)
	case !want && r.sub != nil:
		r.sub.Unsubscribe()
		r.sub = nil
	}
}

// deferredResync runs on the shared delivery queue for each broadcast.
func (r *Registry[T]) deferredResync() {
	r.mu.Lock()
	eff := r.effectiveLocked()
	snapshot := r.snapshotLocked()
	r.mu.Unlock()

	for _, u := range snapshot {
		u.resync(eff)
	}
}

// Bind installs a weak-target binding: apply writes each resolved value onto
// target, which the binding references only weakly so it never extends the
// target's lifetime. Once the target is collected the binding becomes an
// inert no-op until removed. Failed resolutions hold the previous value.
func Bind[T any, O any](r *Registry[T], key string, it item.Item[T], target *O, apply func(*O, T)) {
	if target == nil || apply == nil {
		r.Remove(key)
		return
	}
	wp := weak.Make(target)
	r.Set(key, it, func(v T) {
		if o := wp.Value(); o != nil {
			apply(o, v)
		}
	})
}

// BindOptional is Bind for optional-valued properties: failed resolutions
// apply nil, clearing the property.
func BindOptional[T any, O any](r *Registry[T], key string, it item.Item[T], target *O, apply func(*O, *T)) {
	if target == nil || apply == nil {
		r.Remove(key)
		return
	}
	wp := weak.Make(target)
	r.SetOptional(key, it, func(v *T) {
		if o := wp.Value(); o != nil {
			apply(o, v)
		}
	})
}
