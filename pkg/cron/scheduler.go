// Package cron provides the scheduled scrape job using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// ScrapeFunc runs one full pipeline pass.
type ScrapeFunc func(ctx context.Context) error

// Scheduler runs the suspension scrape on a cron schedule.
type Scheduler struct {
	cron   *cron.Cron
	scrape ScrapeFunc
	logger *slog.Logger
}

// NewScheduler creates a new job scheduler.
func NewScheduler(scrape ScrapeFunc, logger *slog.Logger) *Scheduler {
	// Standard 5-field cron format, no seconds
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:   c,
		scrape: scrape,
		logger: logger,
	}
}

// Start registers the scrape job with the given cron spec and begins
// scheduling.
func (s *Scheduler) Start(spec string) error {
	_, err := s.cron.AddFunc(spec, s.runScrape)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.String("spec", spec),
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers the scrape (for testing/admin).
func (s *Scheduler) RunNow() {
	go s.runScrape()
}

func (s *Scheduler) runScrape() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	s.logger.Info("starting scheduled suspension scrape")
	if err := s.scrape(ctx); err != nil {
		s.logger.Error("scheduled scrape failed", slog.Any("error", err))
		return
	}
	s.logger.Info("scheduled suspension scrape done")
}
