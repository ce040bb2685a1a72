package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newLogCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "List recorded events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.Events.List(context.Background(), app.Subject)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(log) == 0 {
				fmt.Fprintln(out, formatter.Dim("No events recorded for "+app.Subject+"."))
				return nil
			}
			log = log.Sorted()
			if limit > 0 && len(log) > limit {
				log = log[len(log)-limit:]
			}
			fmt.Fprint(out, formatter.FormatLog(log, app.location()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Show only the last N events")

	return cmd
}
