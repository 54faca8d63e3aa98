package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/swatchkit/swatch/internal/themefile"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// advance applies a message and runs any returned command to completion,
// feeding resulting messages back into the model.
func advance(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, cmd := m.Update(msg)
	model := next.(Model)
	for cmd != nil {
		out := cmd()
		if out == nil {
			break
		}
		next, cmd = model.Update(out)
		model = next.(Model)
	}
	return model
}

func TestUpdateNextThemePropagates(t *testing.T) {
	cfg := testConfig(t)
	themes := []*themefile.Theme{
		testTheme(t, "dawn", "#ff0000", "#0000ff"),
		testTheme(t, "dusk", "#00ff00", "#111111"),
	}
	m := NewModel(cfg, themes)

	m = advance(t, m, keyMsg("n"))

	require.Equal(t, "dusk", m.Theme().Name)
	require.Equal(t, "#00ff00", m.state.Primary.Hex())
}

func TestUpdateWrapsAroundThemeList(t *testing.T) {
	cfg := testConfig(t)
	themes := []*themefile.Theme{
		testTheme(t, "dawn", "#ff0000", "#0000ff"),
		testTheme(t, "dusk", "#00ff00", "#111111"),
	}
	m := NewModel(cfg, themes)

	m = advance(t, m, keyMsg("n"))
	m = advance(t, m, keyMsg("n"))

	require.Equal(t, "dawn", m.Theme().Name)
	require.Equal(t, "#ff0000", m.state.Primary.Hex())
}

func TestUpdatePinHoldsColorsAcrossThemeChanges(t *testing.T) {
	cfg := testConfig(t)
	themes := []*themefile.Theme{
		testTheme(t, "dawn", "#ff0000", "#0000ff"),
		testTheme(t, "dusk", "#00ff00", "#111111"),
	}
	m := NewModel(cfg, themes)

	m = advance(t, m, keyMsg("p"))
	require.True(t, m.Pinned())

	m = advance(t, m, keyMsg("n"))

	// Colors stay pinned to dawn; non-pinned kinds follow the new theme.
	require.Equal(t, "dusk", m.Theme().Name)
	require.Equal(t, "#ff0000", m.state.Primary.Hex())

	m = advance(t, m, keyMsg("p"))
	require.False(t, m.Pinned())
	require.Equal(t, "#00ff00", m.state.Primary.Hex())
}

func taggedTheme(t *testing.T, name, appearance, primary string) *themefile.Theme {
	t.Helper()
	doc := fmt.Sprintf(`
name: %s
appearance: %s
colors:
  primary: "%s"
`, name, appearance, primary)
	theme, err := themefile.Parse([]byte(doc), name+".yaml")
	require.NoError(t, err)
	return theme
}

func TestUpdateAppearanceToggleJumpsToOppositeTheme(t *testing.T) {
	cfg := testConfig(t)
	themes := []*themefile.Theme{
		taggedTheme(t, "day", "light", "#ffffff"),
		taggedTheme(t, "night", "dark", "#000000"),
	}
	m := NewModel(cfg, themes)

	m = advance(t, m, keyMsg("d"))
	require.Equal(t, "night", m.Theme().Name)
	require.Equal(t, "#000000", m.state.Primary.Hex())

	m = advance(t, m, keyMsg("d"))
	require.Equal(t, "day", m.Theme().Name)
}

func TestUpdateAppearanceToggleWithoutOppositeThemeIsNoop(t *testing.T) {
	cfg := testConfig(t)
	m := NewModel(cfg, []*themefile.Theme{taggedTheme(t, "day", "light", "#ffffff")})

	m = advance(t, m, keyMsg("d"))
	require.Equal(t, "day", m.Theme().Name)
}

func TestUpdateWindowSize(t *testing.T) {
	cfg := testConfig(t)
	m := NewModel(cfg, nil)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	require.Equal(t, 120, m.width)
	require.Equal(t, 40, m.height)
}

func TestUpdateQuit(t *testing.T) {
	cfg := testConfig(t)
	m := NewModel(cfg, []*themefile.Theme{testTheme(t, "dawn", "#ff0000", "#0000ff")})

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	require.Equal(t, tea.Quit(), cmd())
	require.Zero(t, m.colors.Len())
}
