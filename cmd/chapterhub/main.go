package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/chapterhub/internal/calendar"
	"github.com/alexanderramin/chapterhub/internal/cli"
	"github.com/alexanderramin/chapterhub/internal/config"
	"github.com/alexanderramin/chapterhub/internal/db"
	"github.com/alexanderramin/chapterhub/internal/service"
	"github.com/alexanderramin/chapterhub/internal/source"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	var data source.DataSource = source.NewSQLiteSource(database)
	if cfg.DemoTasks > 0 {
		data = source.WithTasks(data, source.DemoTasks{Count: cfg.DemoTasks, Location: cfg.Location})
	}

	// Dropped records are reported to the user; the normalizer log is only
	// wanted alongside use-case logging.
	var logOut io.Writer = io.Discard
	var observer service.UseCaseObserver = service.NoopUseCaseObserver{}
	if cfg.LogUseCases {
		logOut = os.Stderr
		observer = service.NewLogUseCaseObserver(os.Stderr)
	}
	logger := slog.New(slog.NewTextHandler(logOut, nil))

	clock := calendar.SystemClock{}
	windower := calendar.NewWindower(calendar.NewDates(cfg.Location), clock,
		calendar.WithSixWeekGrid(cfg.SixWeekGrid))
	normalizer := calendar.NewNormalizer(clock,
		calendar.WithLocation(cfg.Location),
		calendar.WithLogger(logger),
		calendar.WithRecurrenceHorizon(cfg.RecurrenceHorizon))

	uow := db.NewSQLiteUnitOfWork(database)

	app := &cli.App{
		Calendar: service.NewCalendarService(data, normalizer, windower, calendar.Routes{}, observer),
		Seed:     service.NewSeedService(uow, observer),
		Windower: windower,
		UserID:   cfg.UserID,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
		},
	}

	return cli.NewRootCmd(app).Execute()
}
