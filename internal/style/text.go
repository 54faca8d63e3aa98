package style

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/swatchkit/swatch/internal/item"
)

// TextStyleItem is a symbolic typography descriptor resolving to a lipgloss
// style. Derivations (bolding, foreground overrides, ...) go through
// item.Transform; styles themselves are value types so transforms never
// mutate the scheme's copy.
type TextStyleItem = item.Item[lipgloss.Style]

// TextItem is a symbolic localized-string descriptor.
type TextItem = item.Item[string]

// TextStyles is the prefix-match policy for the typography kind.
var TextStyles = item.NewMatchPolicy(true)

// Texts is the prefix-match policy for the localized-string kind.
var Texts = item.NewMatchPolicy(true)

// NamedTextStyle returns a typography item resolved by scheme lookup of name.
func NamedTextStyle(name string) TextStyleItem {
	return item.Named[lipgloss.Style](name)
}

// DirectTextStyle wraps a concrete style as an item. desc identifies the
// style in recipes since lipgloss styles have no canonical textual form.
func DirectTextStyle(desc string, s lipgloss.Style) TextStyleItem {
	return item.FromLazy(item.Direct(desc, s))
}

// NamedText returns a string item resolved by scheme lookup of name.
func NamedText(name string) TextItem {
	return item.Named[string](name)
}

// DirectText wraps a concrete string as an item.
func DirectText(s string) TextItem {
	return item.FromLazy(item.Direct(s, s))
}

// MatchTextStyle reports whether pattern prefix-matches value under the
// typography kind's policy.
func MatchTextStyle(pattern, value TextStyleItem) bool {
	return item.MatchWith(TextStyles, pattern, value)
}

// MatchText reports whether pattern prefix-matches value under the
// localized-string kind's policy.
func MatchText(pattern, value TextItem) bool {
	return item.MatchWith(Texts, pattern, value)
}

// Emphasize derives a typography item with bold applied.
func Emphasize(it TextStyleItem) TextStyleItem {
	return item.Transform(it, "emphasize", func(s lipgloss.Style) lipgloss.Style {
		return s.Bold(true)
	})
}

// Foreground derives a typography item with its foreground replaced.
func Foreground(it TextStyleItem, c Color) TextStyleItem {
	return item.Transform(it, "fg:"+c.Hex(), func(s lipgloss.Style) lipgloss.Style {
		return s.Foreground(c.Lipgloss())
	})
}
