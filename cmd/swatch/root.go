package main

import (
	"github.com/spf13/cobra"

	"github.com/swatchkit/swatch/internal/logger"
)

type rootFlags struct {
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "swatch",
		Short:         "Swatch resolves symbolic style tokens against swappable theme schemes",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newValidateCmd(flags, log))
	cmd.AddCommand(newPreviewCmd(flags, log))
	cmd.AddCommand(newFetchCmd(flags, log))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
