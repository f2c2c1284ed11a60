package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ressKim-io/phishguard/internal/domain/entity"
)

// errConnection marks a check whose classifier call failed
var errConnection = errors.New("classifier request failed")

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <url>",
		Short: "Submit one URL and print the verdict",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			state, done, err := a.submissionUC.Submit(ctx, strings.Join(args, " "))
			if err != nil {
				return errors.New(state.Alert)
			}

			select {
			case settled, ok := <-done:
				if ok {
					state = settled
				}
			case <-ctx.Done():
				return ctx.Err()
			}

			writeResult(cmd.OutOrStdout(), state)

			if state.Result.Status == entity.ResultStatusConnectionError {
				return errConnection
			}
			return nil
		},
	}
}

// writeResult prints the settled result region
func writeResult(w io.Writer, s entity.FormState) {
	fmt.Fprintf(w, "URL:      %s\n", s.EnteredURL.Text)
	fmt.Fprintf(w, "Result:   %s\n", s.Result.Text)
	if s.Result.Category != entity.CategoryNone {
		fmt.Fprintf(w, "Category: %s\n", s.Result.Category)
	}
	if s.ExtraReasons.Visible {
		for _, reason := range s.ExtraReasons.Items {
			fmt.Fprintln(w, reason)
		}
	}
}
