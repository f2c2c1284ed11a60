package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ressKim-io/phishguard/internal/adapter/tui"
)

func newTUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the form in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.close()

			// ctrl+c reaches the model as a key, so only SIGTERM is trapped here.
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM)
			defer stop()

			return tui.Run(ctx, a.submissionUC)
		},
	}
}
