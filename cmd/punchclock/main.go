package main

import (
	"fmt"
	"io"
	"os"
	_ "time/tzdata"

	"github.com/alexanderramin/punchclock/internal/cli"
	"github.com/alexanderramin/punchclock/internal/config"
	"github.com/alexanderramin/punchclock/internal/db"
	"github.com/alexanderramin/punchclock/internal/repository"
	"github.com/alexanderramin/punchclock/internal/service"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Load(configPathFromArgs(args))
	if err != nil {
		return err
	}

	rule, err := cfg.BoundaryRule()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	policy, err := cfg.Policy()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	events := repository.NewSQLiteEventRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	settings := service.Settings{Rule: rule, Policy: policy}

	observer := useCaseObserver(cfg.LogUseCases, os.Stderr)

	app := &cli.App{
		Events:   service.NewEventService(events, uow, observer),
		Status:   service.NewStatusService(events, settings, observer),
		Summary:  service.NewSummaryService(events, settings, observer),
		Import:   service.NewImportService(uow, observer),
		Subject:  cfg.Subject,
		Location: rule.Location,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

// configPathFromArgs picks --config out of the command line before cobra
// runs, since the config decides how everything else is wired.
func configPathFromArgs(args []string) string {
	fs := pflag.NewFlagSet("punchclock", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}
	path := fs.String("config", "", "")
	_ = fs.Parse(args)
	return *path
}

func useCaseObserver(enabled bool, w io.Writer) service.UseCaseObserver {
	if !enabled {
		return service.NoopUseCaseObserver{}
	}
	return service.NewLogUseCaseObserver(w)
}
