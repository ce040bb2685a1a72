package cli

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/spf13/cobra"
)

func newStatusCmd(app *App) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current status and the attendance log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Status.GetStatus(context.Background(), statusRequest(app))
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, contract.NewStatusResult(resp))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatStatus(resp, app.location()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the status result as JSON")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
