package style

import (
	"fmt"

	"github.com/swatchkit/swatch/internal/item"
)

// GlyphMode selects which form of a glyph is rendered.
type GlyphMode int

const (
	// GlyphModeAuto prefers the unicode form and falls back to ASCII.
	GlyphModeAuto GlyphMode = iota
	// GlyphModeUnicode forces the unicode form.
	GlyphModeUnicode
	// GlyphModeASCII forces the ASCII form.
	GlyphModeASCII
)

func (m GlyphMode) String() string {
	switch m {
	case GlyphModeUnicode:
		return "unicode"
	case GlyphModeASCII:
		return "ascii"
	default:
		return "auto"
	}
}

// Glyph is the concrete icon value produced by glyph schemes: a unicode form,
// an ASCII fallback form, and the mode deciding which one Render emits.
type Glyph struct {
	Unicode string
	ASCII   string
	Mode    GlyphMode
}

// Render returns the form selected by the glyph's mode.
func (g Glyph) Render() string {
	switch g.Mode {
	case GlyphModeUnicode:
		return g.Unicode
	case GlyphModeASCII:
		return g.ASCII
	default:
		if g.Unicode != "" {
			return g.Unicode
		}
		return g.ASCII
	}
}

// GlyphItem is a symbolic glyph descriptor.
type GlyphItem = item.Item[Glyph]

// Glyphs is the prefix-match policy for the glyph kind.
var Glyphs = item.NewMatchPolicy(true)

// NamedGlyph returns a glyph item resolved by scheme lookup of name.
func NamedGlyph(name string) GlyphItem {
	return item.Named[Glyph](name)
}

// DirectGlyph wraps a concrete glyph as an item.
func DirectGlyph(g Glyph) GlyphItem {
	return item.FromLazy(item.Direct(g.Render(), g))
}

// MatchGlyph reports whether pattern prefix-matches value under the glyph
// kind's policy.
func MatchGlyph(pattern, value GlyphItem) bool {
	return item.MatchWith(Glyphs, pattern, value)
}

// RenderMode derives a glyph item pinned to mode. There is no fallback: when
// the underlying glyph is unavailable the derived item fails to resolve.
func RenderMode(it GlyphItem, mode GlyphMode) GlyphItem {
	key := fmt.Sprintf("rendermode(%s,%s)", mode, it.Key())
	desc := fmt.Sprintf("%s->[mode:%s]", it, mode)
	return item.FromLazy(item.NewLazy(key, desc, func(s item.Scheme[Glyph]) (Glyph, bool) {
		g, ok := it.Resolve(s)
		if !ok {
			return Glyph{}, false
		}
		g.Mode = mode
		return g, true
	}))
}
