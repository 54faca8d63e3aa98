package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case refreshMsg:
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.shutdown()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.selectTheme(m.index + 1)
		case key.Matches(msg, m.keys.Prev):
			return m.selectTheme(m.index - 1)
		case key.Matches(msg, m.keys.Pin):
			return m.togglePin()
		case key.Matches(msg, m.keys.Appearance):
			return m.toggleAppearance()
		}
	}

	return m, nil
}

// selectTheme applies the theme at idx (wrapping) as the new process-wide
// default, then schedules a sync so deferred refreshes become visible.
func (m Model) selectTheme(idx int) (tea.Model, tea.Cmd) {
	if len(m.themes) == 0 {
		return m, nil
	}
	m.index = (idx + len(m.themes)) % len(m.themes)
	m.themes[m.index].Apply(m.cfg)
	return m, m.syncCmd()
}

// togglePin pins the color registry to the currently selected theme's color
// scheme, or releases the pin. While pinned, global theme changes leave the
// color swatches untouched.
func (m Model) togglePin() (tea.Model, tea.Cmd) {
	theme := m.Theme()
	if theme == nil {
		return m, nil
	}
	if m.pinned {
		m.colors.ClearLocal()
		m.pinned = false
	} else {
		m.colors.SetLocal(theme.Colors)
		m.pinned = true
	}
	return m, nil
}

// toggleAppearance jumps to the first theme tagged with the opposite
// appearance of the selected one. Untagged themes count as light.
func (m Model) toggleAppearance() (tea.Model, tea.Cmd) {
	theme := m.Theme()
	if theme == nil {
		return m, nil
	}
	want := "dark"
	if theme.Appearance == "dark" {
		want = "light"
	}
	for i, candidate := range m.themes {
		if candidate.Appearance == want {
			return m.selectTheme(i)
		}
	}
	return m, nil
}

func (m Model) shutdown() {
	m.colors.Close()
	m.glyphs.Close()
	m.textStyles.Close()
	m.texts.Close()
}
