// Package scheduler runs the background job that materializes due recurring
// transactions on a cron cadence.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	portssvc "github.com/finanzas-app/finanzas_backend/internal/core/ports/services"
	"github.com/robfig/cron/v3"
)

// Scheduler owns the cron runner. One job: process due recurring templates.
type Scheduler struct {
	cron      *cron.Cron
	recurring portssvc.RecurringSvcFacade
	logger    *slog.Logger
}

// New creates a scheduler around the recurring service.
func New(recurring portssvc.RecurringSvcFacade, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		recurring: recurring,
		logger:    logger,
	}
}

// Start registers the recurring job with the given cron spec and begins
// running it. The job also fires once at startup so a restart never leaves
// occurrences pending until the next tick.
func (s *Scheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.processDue); err != nil {
		return err
	}
	s.cron.Start()
	s.logger.Info("Scheduler started", slog.String("spec", spec))

	go s.processDue()
	return nil
}

// Stop halts the cron runner and waits for a running job to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) processDue() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	created, err := s.recurring.ProcessDue(ctx, time.Now())
	if err != nil {
		s.logger.Error("Recurring processing failed", slog.String("error", err.Error()))
		return
	}
	if created > 0 {
		s.logger.Info("Recurring transactions materialized", slog.Int("created", created))
	}
}
