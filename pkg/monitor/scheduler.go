package monitor

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is a unit of scheduled work.
type Job interface {
	Run() error
	Name() string
}

// Scheduler drives jobs on cron cadences.
type Scheduler struct {
	cron *cron.Cron
	log  zerolog.Logger
}

// NewScheduler creates a scheduler. Schedules use the six-field cron
// format with a leading seconds column.
func NewScheduler(log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron: cron.New(cron.WithSeconds()),
		log:  log.With().Str("component", "scheduler").Logger(),
	}
}

// AddJob registers a job on the given cron schedule.
func (s *Scheduler) AddJob(schedule string, job Job) error {
	_, err := s.cron.AddFunc(schedule, func() {
		s.log.Debug().Str("job", job.Name()).Msg("Starting scheduled job")
		if err := job.Run(); err != nil {
			s.log.Error().Err(err).Str("job", job.Name()).Msg("Scheduled job failed")
			return
		}
		s.log.Debug().Str("job", job.Name()).Msg("Scheduled job completed")
	})
	if err != nil {
		return fmt.Errorf("failed to schedule job %s: %w", job.Name(), err)
	}

	s.log.Info().Str("job", job.Name()).Str("schedule", schedule).Msg("Job scheduled")
	return nil
}

// RunNow executes a job immediately, outside its schedule.
func (s *Scheduler) RunNow(job Job) error {
	s.log.Info().Str("job", job.Name()).Msg("Running job on demand")
	if err := job.Run(); err != nil {
		return fmt.Errorf("job %s failed: %w", job.Name(), err)
	}
	return nil
}

// Start begins executing scheduled jobs and blocks until the context is
// cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	s.log.Info().Msg("Scheduler starting")
	s.cron.Start()

	<-ctx.Done()
	s.Stop()
}

// Stop halts the scheduler and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	s.log.Info().Msg("Scheduler stopping")
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.log.Info().Msg("Scheduler stopped")
}
