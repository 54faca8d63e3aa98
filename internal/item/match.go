package item

import (
	"strings"
	"sync/atomic"
)

// MatchPolicy is the per-kind switch controlling prefix matching. Each item
// kind owns one policy; matching is enabled by default.
type MatchPolicy struct {
	disabled atomic.Bool
}

// NewMatchPolicy returns a policy with prefix matching set as given.
func NewMatchPolicy(enabled bool) *MatchPolicy {
	p := &MatchPolicy{}
	p.disabled.Store(!enabled)
	return p
}

// SetEnabled flips prefix matching on or off.
func (p *MatchPolicy) SetEnabled(enabled bool) {
	p.disabled.Store(!enabled)
}

// Enabled reports whether prefix matching is active.
func (p *MatchPolicy) Enabled() bool {
	return !p.disabled.Load()
}

// MatchWith reports whether pattern matches value under policy p. With prefix
// matching enabled, a coarser-grained pattern name matches any value name it
// prefixes: "primary" matches "primary.lvl2" but not the other way around.
// With it disabled the relation degrades to exact name equality. Only named
// items participate; a derived item never matches on either side.
func MatchWith[T any](p *MatchPolicy, pattern, value Item[T]) bool {
	pname, ok := pattern.Name()
	if !ok {
		return false
	}
	vname, ok := value.Name()
	if !ok {
		return false
	}
	if p != nil && p.Enabled() {
		return strings.HasPrefix(vname, pname)
	}
	return pname == vname
}
