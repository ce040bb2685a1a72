package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/alexanderramin/punchclock/internal/cli/formatter"
	"github.com/alexanderramin/punchclock/internal/contract"
	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/spf13/cobra"
)

var errKindRequired = errors.New("event kind required")

func newPunchCmd(app *App) *cobra.Command {
	var note string
	var at *timeValue

	cmd := &cobra.Command{
		Use:       "punch [kind]",
		Short:     "Record an attendance event",
		Long:      "Record one of work_start, work_end, break_start or break_end.\nWithout a kind, an interactive terminal offers the events that can follow the current status.",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: kindNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 1 {
				kind, err := domain.ParseEventKind(args[0])
				if err != nil {
					return err
				}
				return recordPunch(ctx, cmd, app, kind, at, note)
			}

			if !app.interactive() {
				return fmt.Errorf("%w: one of %s", errKindRequired, strings.Join(kindNames(), ", "))
			}
			status, err := app.Status.GetStatus(ctx, statusRequest(app))
			if err != nil {
				return err
			}
			var kind domain.EventKind
			if err := punchForm(status.Status, status.NextKinds, &kind, &note).Run(); err != nil {
				return err
			}
			return recordPunch(ctx, cmd, app, kind, at, note)
		},
	}

	at = addTimeFlag(cmd.Flags(), app, "at", "When the event happened (default now)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note stored with the event")

	return cmd
}

func newShortcutCmd(app *App, use, short string, kind domain.EventKind) *cobra.Command {
	var note string
	var at *timeValue

	cmd := &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("%s (%s)", short, kind),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return recordPunch(context.Background(), cmd, app, kind, at, note)
		},
	}

	at = addTimeFlag(cmd.Flags(), app, "at", "When the event happened (default now)")
	cmd.Flags().StringVar(&note, "note", "", "Free-form note stored with the event")

	return cmd
}

// recordPunch stores the event and prints the resulting status. Events that
// do not follow from the current status are recorded anyway, with a warning.
func recordPunch(ctx context.Context, cmd *cobra.Command, app *App, kind domain.EventKind, at *timeValue, note string) error {
	out := cmd.OutOrStdout()

	before, err := app.Status.GetStatus(ctx, statusRequest(app))
	if err != nil {
		return err
	}

	when := before.GeneratedAt
	if t := at.Ptr(); t != nil {
		when = *t
	}
	event, err := app.Events.Record(ctx, contract.RecordEventRequest{
		Subject: app.Subject,
		Kind:    kind,
		At:      &when,
		Note:    note,
	})
	if err != nil {
		return err
	}

	if prior := statusAt(before.Log, when); !slices.Contains(domain.NextKinds(prior), kind) {
		fmt.Fprintln(out, formatter.StyleYellow.Render(
			fmt.Sprintf("warning: %s does not follow %s", kind, prior)))
	}
	fmt.Fprintf(out, "Recorded %s for %s at %s\n",
		formatter.KindLabel(event.Kind), formatter.Bold(app.Subject), formatter.Clock(event.Timestamp, app.location()))

	after, err := app.Status.GetStatus(ctx, statusRequest(app))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.FormatStatusLine(after))
	return nil
}

// statusAt derives the status from the events at or before when, so a
// backdated punch is judged against the log as it stood then.
func statusAt(log domain.EventLog, when time.Time) domain.Status {
	var prefix domain.EventLog
	for _, e := range log.Sorted() {
		if e.Timestamp.After(when) {
			break
		}
		prefix = append(prefix, e)
	}
	return domain.DeriveStatus(prefix)
}

func statusRequest(app *App) contract.StatusRequest {
	req := contract.NewStatusRequest(app.Subject)
	now := app.now()
	req.Now = &now
	return req
}

func kindNames() []string {
	return []string{
		string(domain.EventWorkStart),
		string(domain.EventWorkEnd),
		string(domain.EventBreakStart),
		string(domain.EventBreakEnd),
	}
}
