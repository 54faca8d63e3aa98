package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("dusk.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "dusk.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "dusk.yaml")
	require.Contains(t, err.Error(), ":12:")
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("dusk.yaml", 0, fmt.Errorf("empty document"))
	require.NotContains(t, err.Error(), ":0:")
	require.Contains(t, err.Error(), "empty document")
}

func TestValidationErrorReportsField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("colors[primary.lvl1]", "not a hex color", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "colors[primary.lvl1]", validationErr.Field)
	require.Contains(t, validationErr.Message, "not a hex color")
}

func TestPackErrorIncludesURL(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("repository not found")
	err := NewPackError("https://example.com/themes.git", underlying)

	var packErr *PackError
	require.ErrorAs(t, err, &packErr)
	require.Equal(t, "https://example.com/themes.git", packErr.URL)
	require.True(t, stdErrors.Is(err, underlying))
}
