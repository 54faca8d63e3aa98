package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/swatchkit/swatch/internal/style"
)

// View renders the current state of the preview.
func (m Model) View() string {
	var sections []string

	title := m.state.TitleStyle.Render(m.state.Title)
	if theme := m.Theme(); theme != nil {
		title = fmt.Sprintf("%s %s %s", m.state.StatusGlyph.Render(), title, labelStyle.Render("• "+theme.Name))
	}
	if m.pinned {
		title += " " + pinnedStyle.Render("[pinned]")
	}
	sections = append(sections, title)

	sections = append(sections, sectionStyle.Render("Colors"))
	sections = append(sections, strings.Join([]string{
		swatchBlock("primary", m.state.Primary),
		swatchBlock("secondary", m.state.Secondary),
		swatchBlock("accent", m.state.Accent),
		optionalSwatchBlock("muted", m.state.Muted),
	}, "  "))

	sections = append(sections, helpStyle.Render(m.helpLine()))

	return frameStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func swatchBlock(label string, c style.Color) string {
	block := lipgloss.NewStyle().Background(c.Lipgloss()).Render("      ")
	return lipgloss.JoinVertical(lipgloss.Left, block, labelStyle.Render(label), labelStyle.Render(c.Hex()))
}

func optionalSwatchBlock(label string, c *style.Color) string {
	if c == nil {
		return lipgloss.JoinVertical(lipgloss.Left, "......", labelStyle.Render(label), labelStyle.Render("unset"))
	}
	return swatchBlock(label, *c)
}

func (m Model) helpLine() string {
	parts := []string{
		m.keys.Next.Help().Key + " " + m.keys.Next.Help().Desc,
		m.keys.Pin.Help().Key + " " + m.keys.Pin.Help().Desc,
		m.keys.Quit.Help().Key + " " + m.keys.Quit.Help().Desc,
	}
	return strings.Join(parts, "  •  ")
}
