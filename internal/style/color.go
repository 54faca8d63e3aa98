package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/swatchkit/swatch/internal/item"
)

// Color is the concrete color value produced by color schemes: RGB plus
// alpha, all in [0, 1]. Alpha is carried through blend and opacity math and
// applied when converting to a terminal color.
type Color struct {
	R, G, B, A float64
}

// FromHex parses "#rrggbb" (or "#rgb") into a fully opaque Color.
func FromHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1.0}, nil
}

// MustHex is FromHex for trusted literals; it panics on malformed input.
func MustHex(hex string) Color {
	c, err := FromHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex renders the color as "#rrggbb". Alpha is not representable in hex and
// is dropped.
func (c Color) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// Lipgloss converts the color for use in lipgloss styles.
func (c Color) Lipgloss() lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// WithAlpha returns the color with its alpha multiplied by amount.
func (c Color) WithAlpha(amount float64) Color {
	c.A *= amount
	return c
}

// Blend mixes c toward other; t=0 returns c unchanged, t=1 returns other
// unchanged. Interpolation runs in RGB with alpha lerped alongside.
func (c Color) Blend(other Color, t float64) Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return other
	}
	mixed := colorful.Color{R: c.R, G: c.G, B: c.B}.
		BlendRgb(colorful.Color{R: other.R, G: other.G, B: other.B}, t)
	return Color{
		R: mixed.R,
		G: mixed.G,
		B: mixed.B,
		A: c.A + (other.A-c.A)*t,
	}
}

// ColorItem is a symbolic color descriptor.
type ColorItem = item.Item[Color]

// Colors is the prefix-match policy for the color kind.
var Colors = item.NewMatchPolicy(true)

// NamedColor returns a color item resolved by scheme lookup of name.
func NamedColor(name string) ColorItem {
	return item.Named[Color](name)
}

// DirectColor wraps a concrete color as an item.
func DirectColor(c Color) ColorItem {
	return item.FromLazy(item.Direct(c.Hex(), c))
}

// MatchColor reports whether pattern prefix-matches value under the color
// kind's policy.
func MatchColor(pattern, value ColorItem) bool {
	return item.MatchWith(Colors, pattern, value)
}

// Opacity derives a color item whose alpha is multiplied by amount on every
// resolution. Applying it twice compounds; Opacity(it, 1.0) resolves to the
// same concrete value as it.
func Opacity(it ColorItem, amount float64) ColorItem {
	key := fmt.Sprintf("opacity(%.2f,%s)", amount, it.Key())
	desc := fmt.Sprintf("%s->[opacity:%.2f]", it, amount)
	return item.FromLazy(item.NewLazy(key, desc, func(s item.Scheme[Color]) (Color, bool) {
		v, ok := it.Resolve(s)
		if !ok {
			return Color{}, false
		}
		return v.WithAlpha(amount), true
	}))
}

// Blend derives a color item mixing from toward to. amount weighs from:
// 1.0 resolves to from alone, 0.0 to to alone. When only one side resolves
// it passes through unchanged; the blend fails only when both sides fail.
// The one-sided pass-through is deliberate policy, not a fallback accident.
func Blend(amount float64, from, to ColorItem) ColorItem {
	key := fmt.Sprintf("blend(%.2f,%s,%s)", amount, from.Key(), to.Key())
	desc := fmt.Sprintf("[%s:%.2f:%s]", from, amount, to)
	return item.FromLazy(item.NewLazy(key, desc, func(s item.Scheme[Color]) (Color, bool) {
		a, okA := from.Resolve(s)
		b, okB := to.Resolve(s)
		switch {
		case okA && okB:
			return a.Blend(b, 1-amount), true
		case okA:
			return a, true
		case okB:
			return b, true
		default:
			return Color{}, false
		}
	}))
}
