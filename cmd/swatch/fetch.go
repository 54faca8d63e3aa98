package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/themepack"
)

func newFetchCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	var (
		dest   string
		branch string
		depth  int
	)

	cmd := &cobra.Command{
		Use:   "fetch <git-url>",
		Short: "Fetch a theme pack from a git repository and list its themes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			packLog := log.WithComponent("themepack")

			dir, err := themepack.Fetch(cmd.Context(), themepack.Spec{
				URL:         args[0],
				Branch:      branch,
				Depth:       depth,
				Destination: dest,
			}, packLog)
			if err != nil {
				return err
			}

			themes, err := themepack.LoadAll(dir, packLog)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "fetched %d theme(s) into %s\n", len(themes), dir)
			for _, theme := range themes {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s", theme.Name)
				if theme.Description != "" {
					fmt.Fprintf(cmd.OutOrStdout(), " — %s", theme.Description)
				}
				fmt.Fprintln(cmd.OutOrStdout())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dest, "dest", filepath.Join(".", "themes"), "Directory to clone the pack into")
	cmd.Flags().StringVar(&branch, "branch", "", "Branch to fetch")
	cmd.Flags().IntVar(&depth, "depth", 1, "Clone depth (0 for full history)")

	return cmd
}
