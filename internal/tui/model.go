// Package tui implements the live theme preview. Every visible property of
// the preview is populated through the binding engine, so cycling themes or
// pinning an override exercises the same paths a host application would.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/swatchkit/swatch/internal/binding"
	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/style"
	"github.com/swatchkit/swatch/internal/themefile"
)

// previewState is the UI object whose properties the binding registries keep
// in sync.
type previewState struct {
	Title      string
	TitleStyle lipgloss.Style

	Primary   style.Color
	Secondary style.Color
	Accent    style.Color
	Muted     *style.Color

	StatusGlyph style.Glyph
}

// refreshMsg signals that deferred binding refreshes have been delivered and
// the view should re-render.
type refreshMsg struct{}

// Model contains the Bubbletea state for the preview.
type Model struct {
	cfg    *config.Config
	themes []*themefile.Theme
	index  int
	pinned bool

	colors     *binding.Registry[style.Color]
	glyphs     *binding.Registry[style.Glyph]
	textStyles *binding.Registry[lipgloss.Style]
	texts      *binding.Registry[string]

	state *previewState
	keys  keyMap

	width  int
	height int
}

// NewModel constructs the preview over the loaded themes, installs the
// bindings, and applies the first theme.
func NewModel(cfg *config.Config, themes []*themefile.Theme) Model {
	m := Model{
		cfg:        cfg,
		themes:     themes,
		colors:     binding.NewRegistry[style.Color](cfg.Colors),
		glyphs:     binding.NewRegistry[style.Glyph](cfg.Glyphs),
		textStyles: binding.NewRegistry[lipgloss.Style](cfg.TextStyles),
		texts:      binding.NewRegistry[string](cfg.Texts),
		state:      &previewState{Title: "swatch"},
		keys:       newKeyMap(),
		width:      80,
		height:     24,
	}

	if len(m.themes) > 0 {
		m.themes[0].Apply(m.cfg)
		m.cfg.Queue().Sync()
	}

	st := m.state
	binding.Bind(m.colors, "preview.primary", style.NamedColor("primary"), st,
		func(o *previewState, c style.Color) { o.Primary = c })
	binding.Bind(m.colors, "preview.secondary", style.NamedColor("secondary"), st,
		func(o *previewState, c style.Color) { o.Secondary = c })
	binding.Bind(m.colors, "preview.accent",
		style.Blend(0.5, style.NamedColor("primary"), style.NamedColor("secondary")), st,
		func(o *previewState, c style.Color) { o.Accent = c })
	binding.BindOptional(m.colors, "preview.muted", style.NamedColor("muted"), st,
		func(o *previewState, c *style.Color) { o.Muted = c })
	binding.Bind(m.glyphs, "preview.status", style.NamedGlyph("status.ok"), st,
		func(o *previewState, g style.Glyph) { o.StatusGlyph = g })
	binding.Bind(m.textStyles, "preview.title.style", style.NamedTextStyle("title"), st,
		func(o *previewState, s lipgloss.Style) { o.TitleStyle = s })
	binding.Bind(m.texts, "preview.title", style.NamedText("app.title"), st,
		func(o *previewState, s string) { o.Title = s })

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Theme returns the selected theme, or nil when none are loaded.
func (m Model) Theme() *themefile.Theme {
	if len(m.themes) == 0 {
		return nil
	}
	return m.themes[m.index]
}

// Pinned reports whether the preview is pinned to its local override.
func (m Model) Pinned() bool {
	return m.pinned
}

// syncCmd drains the delivery queue off the UI loop, then triggers a
// re-render once deferred refreshes have landed.
func (m Model) syncCmd() tea.Cmd {
	queue := m.cfg.Queue()
	return func() tea.Msg {
		queue.Sync()
		return refreshMsg{}
	}
}
