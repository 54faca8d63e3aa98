// Package platform bridges terminal environment signals (background
// appearance, window size class) to theme swaps. The core never discovers
// these signals itself; the host detects or receives them and forwards a
// pulse through a Watcher.
package platform

import (
	"sync"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/themefile"
)

// Appearance is the terminal background class.
type Appearance int

const (
	// AppearanceLight indicates a light terminal background.
	AppearanceLight Appearance = iota
	// AppearanceDark indicates a dark terminal background.
	AppearanceDark
)

func (a Appearance) String() string {
	if a == AppearanceDark {
		return "dark"
	}
	return "light"
}

// DetectAppearance queries the terminal background.
func DetectAppearance() Appearance {
	if termenv.HasDarkBackground() {
		return AppearanceDark
	}
	return AppearanceLight
}

// SizeClass is a coarse terminal width class, the terminal's analogue of a
// content-size category.
type SizeClass int

const (
	// SizeClassCompact is a narrow terminal.
	SizeClassCompact SizeClass = iota
	// SizeClassRegular is a regular-width terminal.
	SizeClassRegular
)

// compactWidthLimit is the widest column count still considered compact.
const compactWidthLimit = 99

// DetectSizeClass classifies the terminal attached to fd. Unqueryable
// terminals count as regular.
func DetectSizeClass(fd int) SizeClass {
	width, _, err := term.GetSize(fd)
	if err != nil {
		return SizeClassRegular
	}
	return SizeClassFor(width)
}

// SizeClassFor classifies an already-known column count.
func SizeClassFor(width int) SizeClass {
	if width > 0 && width <= compactWidthLimit {
		return SizeClassCompact
	}
	return SizeClassRegular
}

var (
	watchedMu sync.Mutex
	watched   = make(map[*config.Config]struct{})
)

// Watcher swaps a light and a dark theme into a Config in response to
// appearance pulses forwarded by the host.
type Watcher struct {
	cfg   *config.Config
	light *themefile.Theme
	dark  *themefile.Theme

	mu      sync.Mutex
	current Appearance
}

// Watch installs a watcher on cfg and applies the theme for initial
// immediately. Installing a second watcher on the same Config is a one-time
// setup call made twice and panics.
func Watch(cfg *config.Config, light, dark *themefile.Theme, initial Appearance) *Watcher {
	if cfg == nil || light == nil || dark == nil {
		panic("platform: Watch requires a config and both themes")
	}

	watchedMu.Lock()
	if _, dup := watched[cfg]; dup {
		watchedMu.Unlock()
		panic("platform: config already has an appearance watcher")
	}
	watched[cfg] = struct{}{}
	watchedMu.Unlock()

	w := &Watcher{cfg: cfg, light: light, dark: dark, current: initial}
	w.apply(initial)
	return w
}

// Notify forwards an appearance pulse. Every pulse reapplies the matching
// theme, even when the appearance is unchanged.
func (w *Watcher) Notify(a Appearance) {
	w.mu.Lock()
	w.current = a
	w.mu.Unlock()
	w.apply(a)
}

// Current returns the last observed appearance.
func (w *Watcher) Current() Appearance {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.current
}

// Close releases the watcher's claim on its Config.
func (w *Watcher) Close() {
	watchedMu.Lock()
	delete(watched, w.cfg)
	watchedMu.Unlock()
}

func (w *Watcher) apply(a Appearance) {
	if a == AppearanceDark {
		w.dark.Apply(w.cfg)
		return
	}
	w.light.Apply(w.cfg)
}
