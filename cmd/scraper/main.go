// Command scraper runs the IDX suspension pipeline: fetch the
// announcement feed, extract suspension records from each document,
// reconcile against the long-suspension registry, and upsert the clean
// set to PostgreSQL. Incomplete records go to the append-only CSV side
// file. With SCHEDULER_ENABLED the process stays resident and reruns the
// pipeline on a cron schedule; otherwise it runs once and exits.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension/repository"
	"github.com/jakartadata/idx-suspension-tracker/internal/domain/suspension/service"
	"github.com/jakartadata/idx-suspension-tracker/internal/idx"
	"github.com/jakartadata/idx-suspension-tracker/pkg/config"
	"github.com/jakartadata/idx-suspension-tracker/pkg/cron"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("scraper failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	client, err := idx.NewClient(cfg.IDX.BaseURL, cfg.IDX.ProxyURL, logger)
	if err != nil {
		return fmt.Errorf("failed to create IDX client: %w", err)
	}

	sidecar, err := service.NewSidecarWriter(cfg.Sidecar.Path)
	if err != nil {
		return fmt.Errorf("failed to create sidecar writer: %w", err)
	}

	repo := repository.NewPostgresSuspensionRepository(pool)
	svc := service.NewSuspensionService(client, client.BaseURL(), logger).
		WithIncompleteSink(sidecar)

	scrape := func(ctx context.Context) error {
		return runPipeline(ctx, cfg, client, svc, repo, logger)
	}

	if !cfg.Scheduler.Enabled {
		return scrape(ctx)
	}

	scheduler := cron.NewScheduler(scrape, logger)
	if err := scheduler.Start(cfg.Scheduler.Spec); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}

	<-ctx.Done()
	<-scheduler.Stop().Done()
	return nil
}

func runPipeline(ctx context.Context, cfg *config.Config, client *idx.Client, svc *service.SuspensionService, repo repository.SuspensionRepository, logger *slog.Logger) error {
	symbols, err := repo.AllowedSymbols(ctx)
	if err != nil {
		return fmt.Errorf("failed to load allowed symbols: %w", err)
	}
	allowed := service.NewSymbolSet(symbols)

	entries, err := client.FetchAnnouncements(ctx, cfg.IDX.DateFrom, cfg.IDX.DateTo)
	if err != nil {
		return fmt.Errorf("failed to fetch announcements: %w", err)
	}

	reg, err := client.FetchRegistry(ctx, cfg.IDX.RegistryPageURL)
	if err != nil {
		// A missing registry degrades reconciliation but the extraction
		// batch is still worth running.
		logger.Warn("failed to load long-suspension registry", slog.Any("error", err))
		reg = nil
	}

	result, err := svc.Process(ctx, allowed, entries, reg)
	if err != nil {
		return err
	}

	if err := repo.UpsertRecords(ctx, result.Clean); err != nil {
		return fmt.Errorf("failed to upsert records: %w", err)
	}

	logger.Info("pipeline run complete",
		slog.String("run_id", result.RunID.String()),
		slog.Int("upserted", len(result.Clean)),
		slog.Int("incomplete", len(result.Incomplete)),
	)
	return nil
}
