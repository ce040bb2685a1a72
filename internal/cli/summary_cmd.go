package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/export"
	"github.com/spf13/cobra"
)

type summaryFlags struct {
	from     *timeValue
	to       *timeValue
	asStatus string
}

func (f *summaryFlags) request(app *App) (contract.SummaryRequest, error) {
	req := contract.NewSummaryRequest(app.Subject)
	now := app.now()
	req.Now = &now
	req.From = f.from.Ptr()
	req.To = f.to.Ptr()
	if f.asStatus != "" {
		status, err := domain.ParseStatus(f.asStatus)
		if err != nil {
			return req, err
		}
		req.StatusOverride = &status
	}
	return req, nil
}

func newSummaryCmd(app *App) *cobra.Command {
	flags := &summaryFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show active time per day, week and month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := runSummary(app, flags)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, contract.NewSummaryResult(resp.Report))
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSummary(resp))
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	flags.from = addTimeFlag(pf, app, "from", "Count only time at or after this instant")
	flags.to = addTimeFlag(pf, app, "to", "Count only time before this instant")
	pf.StringVar(&flags.asStatus, "as-status", "", "Authoritative current status (unregistered, working, on_break)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the summary result as JSON")

	cmd.AddCommand(newSummaryExportCmd(app, flags))

	return cmd
}

func newSummaryExportCmd(app *App, flags *summaryFlags) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the summary to an .xlsx workbook",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := runSummary(app, flags)
			if err != nil {
				return err
			}

			meta := export.Meta{Subject: resp.Subject, Status: resp.Status, GeneratedAt: resp.GeneratedAt}
			if err := export.SaveSummaryXLSX(outPath, meta, resp.Report); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%s total)\n", outPath, formatter.FormatDuration(resp.Report.Total))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Destination .xlsx file")
	_ = cmd.MarkFlagRequired("out")

	return cmd
}

func runSummary(app *App, flags *summaryFlags) (*contract.SummaryResponse, error) {
	req, err := flags.request(app)
	if err != nil {
		return nil, err
	}
	return app.Summary.GetSummary(context.Background(), req)
}
