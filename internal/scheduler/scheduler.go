// Package scheduler runs the recurring back-office jobs: the monthly stock
// counter rollover and the nightly operations digest.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/mekdelawit/paperops/internal/config"
	"github.com/mekdelawit/paperops/internal/service/reporting"
	"github.com/mekdelawit/paperops/pkg/clients/webhook"
)

// StockRoller resets the current-month stock counters.
type StockRoller interface {
	MonthlyRollover(ctx context.Context) error
}

// Scheduler manages the cron jobs.
type Scheduler struct {
	cron      *cron.Cron
	stock     StockRoller
	reporting *reporting.Service
	notifier  webhook.Notifier
	cfg       config.Config
	logger    *zap.Logger
}

// NewScheduler creates a scheduler in the configured timezone.
func NewScheduler(cfg config.Config, stock StockRoller, reportingSvc *reporting.Service, notifier webhook.Notifier, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	location, err := time.LoadLocation(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warn("invalid timezone, falling back to local",
			zap.String("timezone", cfg.Scheduler.Timezone), zap.Error(err))
		location = time.Local
	}

	return &Scheduler{
		cron:      cron.New(cron.WithLocation(location)),
		stock:     stock,
		reporting: reportingSvc,
		notifier:  notifier,
		cfg:       cfg,
		logger:    logger,
	}
}

// Start registers and starts the jobs.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	if _, err := s.cron.AddFunc(s.cfg.Scheduler.RolloverCronSchedule, s.runMonthlyRollover); err != nil {
		s.logger.Error("failed to schedule monthly rollover", zap.Error(err))
	}

	if s.notifier != nil {
		if _, err := s.cron.AddFunc(s.cfg.Digest.CronSchedule, s.runDailyDigest); err != nil {
			s.logger.Error("failed to schedule daily digest", zap.Error(err))
		}
	} else {
		s.logger.Info("digest webhook not configured, nightly digest disabled")
	}

	s.cron.Start()
}

// Stop stops the scheduler.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	s.cron.Stop()
}

func (s *Scheduler) runMonthlyRollover() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := s.stock.MonthlyRollover(ctx); err != nil {
		s.logger.Error("monthly rollover failed", zap.Error(err))
		return
	}
	s.logger.Info("monthly rollover completed")
}

func (s *Scheduler) runDailyDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	digest, err := s.reporting.DailyDigest(ctx)
	if err != nil {
		s.logger.Error("failed to build daily digest", zap.Error(err))
		return
	}

	if err := s.notifier.Notify(ctx, digest); err != nil {
		s.logger.Error("failed to send daily digest", zap.Error(err))
		return
	}
	s.logger.Info("daily digest sent")
}
