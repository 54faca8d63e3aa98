// Package themepack fetches git-distributed collections of theme documents
// and loads every theme they contain.
package themepack

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/themefile"
	swatcherrors "github.com/swatchkit/swatch/pkg/errors"
)

// Spec describes where a pack lives and where to materialize it.
type Spec struct {
	URL         string
	Branch      string
	Depth       int
	Destination string
}

// Fetch clones the pack into its destination, or fast-forwards an existing
// clone. It returns the destination directory.
func Fetch(ctx context.Context, spec Spec, log *logger.Logger) (string, error) {
	if spec.URL == "" {
		return "", swatcherrors.NewPackError("", fmt.Errorf("pack URL is required"))
	}
	if spec.Destination == "" {
		return "", swatcherrors.NewPackError(spec.URL, fmt.Errorf("destination is required"))
	}

	gitDir := filepath.Join(spec.Destination, ".git")
	if _, err := os.Stat(gitDir); err == nil {
		if err := update(ctx, spec, log); err != nil {
			return "", err
		}
		return spec.Destination, nil
	}

	cloneOpts := &git.CloneOptions{URL: spec.URL}
	if spec.Depth > 0 {
		cloneOpts.Depth = spec.Depth
	}
	if spec.Branch != "" {
		cloneOpts.ReferenceName = plumbing.NewBranchReferenceName(spec.Branch)
		cloneOpts.SingleBranch = true
	}

	log.WithFields(map[string]any{"url": spec.URL, "dest": spec.Destination}).Info("cloning theme pack")
	if _, err := git.PlainCloneContext(ctx, spec.Destination, false, cloneOpts); err != nil {
		return "", swatcherrors.NewPackError(spec.URL, fmt.Errorf("clone: %w", err))
	}
	return spec.Destination, nil
}

func update(ctx context.Context, spec Spec, log *logger.Logger) error {
	repo, err := git.PlainOpen(spec.Destination)
	if err != nil {
		return swatcherrors.NewPackError(spec.URL, fmt.Errorf("open existing clone: %w", err))
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return swatcherrors.NewPackError(spec.URL, fmt.Errorf("worktree: %w", err))
	}

	pullOpts := &git.PullOptions{RemoteName: "origin"}
	if spec.Branch != "" {
		pullOpts.ReferenceName = plumbing.NewBranchReferenceName(spec.Branch)
		pullOpts.SingleBranch = true
	}

	log.WithFields(map[string]any{"url": spec.URL, "dest": spec.Destination}).Info("updating theme pack")
	if err := worktree.PullContext(ctx, pullOpts); err != nil {
		if errors.Is(err, git.NoErrAlreadyUpToDate) {
			log.Debug("theme pack already up to date")
			return nil
		}
		return swatcherrors.NewPackError(spec.URL, fmt.Errorf("pull: %w", err))
	}
	return nil
}

// Discover lists the theme documents under dir, sorted by path. Hidden
// directories and the git metadata tree are skipped.
func Discover(dir string) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (name == ".git" || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		switch filepath.Ext(d.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, swatcherrors.NewPackError("", fmt.Errorf("scan %s: %w", dir, err))
	}
	sort.Strings(paths)
	return paths, nil
}

// LoadAll loads every theme document under dir. Documents that fail to load
// are reported and skipped rather than failing the pack.
func LoadAll(dir string, log *logger.Logger) ([]*themefile.Theme, error) {
	paths, err := Discover(dir)
	if err != nil {
		return nil, err
	}

	themes := make([]*themefile.Theme, 0, len(paths))
	for _, path := range paths {
		theme, err := themefile.Load(path)
		if err != nil {
			log.Error(err, "skipping theme document")
			continue
		}
		themes = append(themes, theme)
	}
	return themes, nil
}
