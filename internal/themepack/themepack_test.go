package themepack

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swatchkit/swatch/internal/logger"
	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

const midnightTheme = `
name: midnight
appearance: dark
colors:
  primary: "#7f5af0"
`

const daylightTheme = `
name: daylight
appearance: light
colors:
  primary: "#ff8906"
`

func testLogger(t *testing.T) *logger.Logger {
	t.Helper()
	log, err := logger.New(logger.Options{Level: "error", Writer: io.Discard})
	require.NoError(t, err)
	return log
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// newPackRepo builds a local git repository holding theme documents, usable
// as a clone source.
func newPackRepo(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()

	repo, err := git.PlainInit(dir, false)
	require.NoError(t, err)

	worktree, err := repo.Worktree()
	require.NoError(t, err)

	for name, content := range files {
		writeFile(t, dir, name, content)
		_, err = worktree.Add(name)
		require.NoError(t, err)
	}

	_, err = worktree.Commit("add themes", &git.CommitOptions{
		Author: &object.Signature{
			Name:  "pack author",
			Email: "author@example.com",
			When:  time.Now(),
		},
	})
	require.NoError(t, err)

	return dir
}

func TestDiscoverFindsThemeDocuments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "b.yaml", midnightTheme)
	writeFile(t, dir, "a.yml", daylightTheme)
	writeFile(t, dir, "nested/c.yaml", midnightTheme)
	writeFile(t, dir, "README.md", "# not a theme")
	writeFile(t, dir, ".git/config", "[core]")
	writeFile(t, dir, ".hidden/d.yaml", midnightTheme)

	paths, err := Discover(dir)
	require.NoError(t, err)

	require.Equal(t, []string{
		filepath.Join(dir, "a.yml"),
		filepath.Join(dir, "b.yaml"),
		filepath.Join(dir, "nested", "c.yaml"),
	}, paths, "sorted, yaml-only, hidden trees skipped")
}

func TestDiscoverMissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := Discover(filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)

	var perr *swatcherrors.PackError
	require.True(t, errors.As(err, &perr))
}

func TestLoadAllSkipsBrokenDocuments(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "good.yaml", midnightTheme)
	writeFile(t, dir, "broken.yaml", "name: [unclosed")

	themes, err := LoadAll(dir, testLogger(t))
	require.NoError(t, err)

	require.Len(t, themes, 1)
	assert.Equal(t, "midnight", themes[0].Name)
}

func TestFetchClonesLocalPack(t *testing.T) {
	t.Parallel()

	src := newPackRepo(t, map[string]string{
		"midnight.yaml": midnightTheme,
		"daylight.yaml": daylightTheme,
	})
	dest := filepath.Join(t.TempDir(), "pack")

	got, err := Fetch(context.Background(), Spec{URL: src, Destination: dest}, testLogger(t))
	require.NoError(t, err)
	require.Equal(t, dest, got)

	themes, err := LoadAll(dest, testLogger(t))
	require.NoError(t, err)
	require.Len(t, themes, 2)
}

func TestFetchUpdatesExistingClone(t *testing.T) {
	t.Parallel()

	src := newPackRepo(t, map[string]string{"midnight.yaml": midnightTheme})
	dest := filepath.Join(t.TempDir(), "pack")
	spec := Spec{URL: src, Destination: dest}
	log := testLogger(t)

	_, err := Fetch(context.Background(), spec, log)
	require.NoError(t, err)

	// Second fetch takes the update path; nothing changed upstream.
	got, err := Fetch(context.Background(), spec, log)
	require.NoError(t, err)
	require.Equal(t, dest, got)
}

func TestFetchRejectsMissingURL(t *testing.T) {
	t.Parallel()

	_, err := Fetch(context.Background(), Spec{Destination: t.TempDir()}, testLogger(t))
	require.Error(t, err)

	var perr *swatcherrors.PackError
	require.True(t, errors.As(err, &perr))
}

func TestFetchRejectsMissingDestination(t *testing.T) {
	t.Parallel()

	_, err := Fetch(context.Background(), Spec{URL: "https://example.com/pack.git"}, testLogger(t))
	require.Error(t, err)

	var perr *swatcherrors.PackError
	require.True(t, errors.As(err, &perr))
	assert.Contains(t, perr.Error(), "destination")
}

func TestFetchReportsCloneFailure(t *testing.T) {
	t.Parallel()

	spec := Spec{
		URL:         filepath.Join(t.TempDir(), "no-such-repo"),
		Destination: filepath.Join(t.TempDir(), "pack"),
	}

	_, err := Fetch(context.Background(), spec, testLogger(t))
	require.Error(t, err)

	var perr *swatcherrors.PackError
	require.True(t, errors.As(err, &perr))
}
