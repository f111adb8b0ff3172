package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sonik2001www/Credit-API/internal/jobs"
	"github.com/sonik2001www/Credit-API/internal/logger"
)

// Scheduler manages cron job scheduling.
type Scheduler struct {
	cron *cron.Cron
	jobs *jobs.JobRunner
}

func NewScheduler(jobRunner *jobs.JobRunner) *Scheduler {
	s := &Scheduler{
		cron: cron.New(cron.WithLocation(time.UTC)),
		jobs: jobRunner,
	}
	s.registerJobs()
	return s
}

func (s *Scheduler) registerJobs() {
	spec := s.jobs.Config().Scheduler.OverdueSweep
	if spec == "" {
		spec = "@daily"
	}
	if _, err := s.cron.AddFunc(spec, s.jobs.SweepOverdueCredits); err != nil {
		logger.Error("Failed to register SweepOverdueCredits job", "error", err)
	}
}

// Start launches the scheduler in its own goroutine.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Info("Scheduler started")
}

// Stop waits for running jobs and stops the scheduler.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Scheduler stopped")
}
