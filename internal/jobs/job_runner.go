package jobs

import (
	"context"
	"time"

	"github.com/sonik2001www/Credit-API/internal/config"
	"github.com/sonik2001www/Credit-API/internal/logger"
	"github.com/sonik2001www/Credit-API/internal/repository"
)

// JobRunner coordinates scheduled jobs.
type JobRunner struct {
	creditRepo repository.CreditRepository
	config     *config.Config
}

func NewJobRunner(creditRepo repository.CreditRepository, cfg *config.Config) *JobRunner {
	return &JobRunner{creditRepo: creditRepo, config: cfg}
}

// Config exposes the configuration to the scheduler.
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery.
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// SweepOverdueCredits reports how many open credits are past their
// contractual return date and the principal still out on them.
func (jr *JobRunner) SweepOverdueCredits() {
	jr.runWithRecovery("SweepOverdueCredits", func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		count, outstanding, err := jr.creditRepo.OverdueOpenTotals(ctx, time.Now())
		if err != nil {
			logger.Error("Overdue sweep failed", "error", err)
			return
		}
		logger.Info("Overdue credits sweep", "count", count, "outstanding_body", outstanding.String())
	})
}
