package cli

import (
	"time"

	"github.com/alexanderramin/punchclock/internal/domain"
	"github.com/alexanderramin/punchclock/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Events  service.EventService
	Status  service.StatusService
	Summary service.SummaryService
	Import  service.ImportService

	// Subject is the default subject; --subject overrides it.
	Subject string
	// Location is the zone times are shown and parsed in.
	Location *time.Location
	// IsInteractive reports whether prompts may be shown.
	IsInteractive func() bool
	// Now overrides the clock when set.
	Now func() time.Time
}

func (a *App) now() time.Time {
	if a.Now != nil {
		return a.Now().UTC()
	}
	return time.Now().UTC()
}

func (a *App) location() *time.Location {
	if a.Location == nil {
		return time.UTC
	}
	return a.Location
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "punchclock" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "punchclock",
		Short:         "Attendance log with day, week and month totals",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&app.Subject, "subject", app.Subject, "Subject whose log is read or written")
	// Read by cmd/punchclock before the App is wired; declared here so
	// cobra accepts it.
	root.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")

	root.AddCommand(
		newPunchCmd(app),
		newShortcutCmd(app, "in", "Start working", domain.EventWorkStart),
		newShortcutCmd(app, "out", "Stop working", domain.EventWorkEnd),
		newShortcutCmd(app, "break", "Start a break", domain.EventBreakStart),
		newShortcutCmd(app, "resume", "End a break", domain.EventBreakEnd),
		newStatusCmd(app),
		newSummaryCmd(app),
		newLogCmd(app),
		newImportCmd(app),
		newWatchCmd(app),
	)

	return root
}
