package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Append events from a JSON attendance log",
		Long: `Append events from a JSON file of the form
  {"subject": "alice", "attendanceLog": [{"kind": "work_start", "timestamp": "2025-03-03T09:00:00Z"}]}
The whole file is validated first and written in one transaction. Events
already stored with the same kind and instant are skipped. --subject, when
given, replaces the subject named in the file.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			subject := ""
			if cmd.Flags().Changed("subject") {
				subject = app.Subject
			}
			result, err := app.Import.ImportFile(context.Background(), args[0], subject)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d events for %s", result.Imported, formatter.Bold(result.Subject))
			if result.Skipped > 0 {
				fmt.Fprint(cmd.OutOrStdout(), formatter.Dim(fmt.Sprintf(" (%d already present)", result.Skipped)))
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}
}
