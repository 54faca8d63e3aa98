package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/config"
	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/platform"
	"github.com/swatchkit/swatch/internal/themefile"
	"github.com/swatchkit/swatch/internal/tui"
)

func newPreviewCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var autoAppearance bool

	cmd := &cobra.Command{
		Use:   "preview <theme.yaml>...",
		Short: "Preview themes live, with bindings resynchronized on every switch",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			themes := make([]*themefile.Theme, 0, len(args))
			for _, path := range args {
				theme, err := themefile.Load(path)
				if err != nil {
					return err
				}
				themes = append(themes, theme)
			}

			appearance := platform.DetectAppearance()
			sizeClass := platform.DetectSizeClass(int(os.Stdout.Fd()))
			if flags.verbose {
				log.WithFields(map[string]any{
					"appearance": appearance.String(),
					"compact":    sizeClass == platform.SizeClassCompact,
					"themes":     len(themes),
				}).Info("starting preview")
			}
			if autoAppearance {
				themes = orderByAppearance(themes, appearance)
			}

			cfg := config.New()
			defer cfg.Close()

			program := tea.NewProgram(tui.NewModel(cfg, themes), tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("preview: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&autoAppearance, "auto-appearance", true,
		"Start on the theme matching the terminal's light/dark background")

	return cmd
}

// orderByAppearance moves the first theme tagged with the detected appearance
// to the front so the preview opens on it.
func orderByAppearance(themes []*themefile.Theme, a platform.Appearance) []*themefile.Theme {
	for i, theme := range themes {
		if theme.Appearance == a.String() {
			reordered := make([]*themefile.Theme, 0, len(themes))
			reordered = append(reordered, theme)
			reordered = append(reordered, themes[:i]...)
			reordered = append(reordered, themes[i+1:]...)
			return reordered
		}
	}
	return themes
}
