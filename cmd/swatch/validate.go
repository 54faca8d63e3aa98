package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/logger"
	"github.com/swatchkit/swatch/internal/themefile"
)

func newValidateCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <theme.yaml>...",
		Short: "Validate theme documents",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var failures int
			for _, path := range args {
				theme, err := themefile.Load(path)
				if err != nil {
					failures++
					fmt.Fprintf(cmd.OutOrStdout(), "✗ %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "✓ %s (%s: %d colors, %d glyphs, %d text styles, %d strings)\n",
					path, theme.Name,
					theme.Colors.Len(), theme.Glyphs.Len(), theme.TextStyles.Len(), theme.Strings.Len())
			}
			if failures > 0 {
				return fmt.Errorf("%d of %d theme document(s) failed validation", failures, len(args))
			}
			return nil
		},
	}
	return cmd
}
