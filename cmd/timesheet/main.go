package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexanderramin/timesheet/internal/cli"
	"github.com/alexanderramin/timesheet/internal/config"
	"github.com/alexanderramin/timesheet/internal/db"
	"github.com/alexanderramin/timesheet/internal/observability"
	"github.com/alexanderramin/timesheet/internal/repository"
	"github.com/alexanderramin/timesheet/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", cli.ErrorMessage(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cfg.LogLevel)
	defer func() { _ = logger.Sync() }()

	shutdown, err := observability.InitTracer(cfg.OTLPEndpoint, "timesheet")
	if err != nil {
		logger.Warn("tracing disabled", zap.Error(err))
	} else {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := shutdown(ctx); err != nil {
				logger.Warn("flushing traces", zap.Error(err))
			}
		}()
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories, unit of work and services
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	observer := service.NewZapUseCaseObserver(logger)
	metrics := observability.NewMetrics()

	profiles := service.NewProfileService(profileRepo, uow, observer)
	app := &cli.App{
		Reports:  service.NewReportService(profiles, metrics, observer),
		Profiles: profiles,
		Config:   cfg,
		Logger:   logger,
	}

	// Detect interactive terminal for the wizard entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	execErr := cli.NewRootCmd(app).ExecuteContext(ctx)

	sum := metrics.Summary()
	logger.Debug("run summary",
		zap.Int("files", sum.FilesRead),
		zap.Int("rows", sum.RowsRead),
		zap.Int("records", sum.RecordsKept),
		zap.Int("cell_issues", sum.CellIssues),
		zap.Int("reports", sum.Succeeded),
	)

	// --metrics-file updates app.Config during flag parsing.
	if path := app.Config.MetricsFile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			logger.Warn("writing metrics", zap.Error(err))
		}
	}
	return execErr
}
