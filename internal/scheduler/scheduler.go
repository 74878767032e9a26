// Package scheduler runs the background jobs that keep the analytics result
// cache warm. Jobs receive a deadline-bound context from the scheduler, so a
// hung snapshot cannot pile runs on top of each other indefinitely.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is a unit of background work. Run must honor ctx cancellation; the
// scheduler applies its job timeout to every invocation, scheduled or manual.
type Job interface {
	Run(ctx context.Context) error
	Name() string
}

// Scheduler drives registered jobs on cron schedules.
type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	log     zerolog.Logger
}

// New creates a scheduler whose jobs are cancelled after timeout.
func New(timeout time.Duration, log zerolog.Logger) *Scheduler {
	return &Scheduler{
		cron:    cron.New(),
		timeout: timeout,
		log:     log.With().Str("component", "scheduler").Logger(),
	}
}

// Start begins dispatching scheduled jobs.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info().Msg("Scheduler started")
}

// Stop halts dispatch and waits for in-flight jobs to return.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info().Msg("Scheduler stopped")
}

// Schedule registers a job against a cron spec, e.g. "@every 15m" or
// "0 6 * * MON". Failures inside the job are logged, not propagated: a bad
// refresh keeps the previous cache contents.
func (s *Scheduler) Schedule(spec string, job Job) error {
	_, err := s.cron.AddFunc(spec, func() {
		_ = s.run(job)
	})
	if err != nil {
		return fmt.Errorf("scheduling %s: %w", job.Name(), err)
	}

	s.log.Info().
		Str("job", job.Name()).
		Str("spec", spec).
		Msg("Background job scheduled")
	return nil
}

// RunNow executes a job immediately under the same timeout as a scheduled
// run. Used to warm the cache at startup.
func (s *Scheduler) RunNow(job Job) error {
	return s.run(job)
}

func (s *Scheduler) run(job Job) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	start := time.Now()
	if err := job.Run(ctx); err != nil {
		s.log.Error().
			Err(err).
			Str("job", job.Name()).
			Dur("elapsed", time.Since(start)).
			Msg("Background job failed")
		return err
	}

	s.log.Debug().
		Str("job", job.Name()).
		Dur("elapsed", time.Since(start)).
		Msg("Background job finished")
	return nil
}
