package scheme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFuncAdapter(t *testing.T) {
	t.Parallel()

	s := Func[int](func(name string) (int, bool) {
		if name == "answer" {
			return 42, true
		}
		return 0, false
	})

	v, ok := s.Lookup("answer")
	require.True(t, ok)
	require.Equal(t, 42, v)

	_, ok = s.Lookup("question")
	require.False(t, ok)
}

func TestTableDirectHit(t *testing.T) {
	t.Parallel()

	table := NewTable(map[string]string{
		"primary":      "purple",
		"primary.lvl1": "violet",
	})

	v, ok := table.Lookup("primary.lvl1")
	require.True(t, ok)
	require.Equal(t, "violet", v)
	require.Equal(t, 2, table.Len())
}

func TestTableAncestorFallback(t *testing.T) {
	t.Parallel()

	table := NewTable(map[string]string{"primary": "purple"})

	// Strips one segment per step until an ancestor resolves.
	v, ok := table.Lookup("primary.lvl2.accent")
	require.True(t, ok)
	require.Equal(t, "purple", v)

	_, ok = table.Lookup("secondary.lvl1")
	require.False(t, ok)
}

func TestTableFallbackDisabled(t *testing.T) {
	t.Parallel()

	table := NewTable(map[string]string{"primary": "purple"},
		WithAncestorFallback[string](false))

	_, ok := table.Lookup("primary.lvl2")
	require.False(t, ok)

	v, ok := table.Lookup("primary")
	require.True(t, ok)
	require.Equal(t, "purple", v)
}

func TestTableCopiesEntries(t *testing.T) {
	t.Parallel()

	entries := map[string]string{"primary": "purple"}
	table := NewTable(entries)
	entries["primary"] = "mutated"

	v, _ := table.Lookup("primary")
	require.Equal(t, "purple", v)
}

func TestEmptySchemeResolvesNothing(t *testing.T) {
	t.Parallel()

	_, ok := Empty[string]().Lookup("anything")
	require.False(t, ok)
}
