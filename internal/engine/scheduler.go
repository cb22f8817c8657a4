package engine

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/avito-client/internal/metrics"
)

const jobTimeout = 2 * time.Minute

// Job names, used as the job label on JobRunsTotal.
const (
	JobWebhookCheck = "webhook_check"
	JobBalance      = "balance"
	JobUnreadDigest = "unread_digest"
)

// Intervals configures the scheduled jobs. A zero interval disables its job.
type Intervals struct {
	WebhookCheck time.Duration
	Balance      time.Duration
	UnreadDigest time.Duration
}

// Scheduler manages the periodic account upkeep jobs.
type Scheduler struct {
	cron   *cron.Cron
	engine *Engine
	log    *slog.Logger

	entries map[string]cron.EntryID
}

// NewScheduler creates a new Scheduler that runs engine jobs on a schedule.
func NewScheduler(
	eng *Engine,
	intervals Intervals,
	log *slog.Logger,
) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		engine:  eng,
		log:     log,
		entries: make(map[string]cron.EntryID),
	}

	jobs := []struct {
		name     string
		interval time.Duration
		run      func(context.Context) error
	}{
		{JobWebhookCheck, intervals.WebhookCheck, eng.EnsureWebhook},
		{JobBalance, intervals.Balance, func(ctx context.Context) error {
			_, err := eng.PollBalance(ctx)
			return err
		}},
		{JobUnreadDigest, intervals.UnreadDigest, eng.RunUnreadDigest},
	}

	for _, j := range jobs {
		if j.interval <= 0 {
			continue
		}
		id, err := c.AddFunc("@every "+j.interval.String(), s.wrap(j.name, j.run))
		if err != nil {
			return nil, err
		}
		s.entries[j.name] = id
	}

	return s, nil
}

// Start begins running scheduled tasks.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started", "jobs", len(s.entries))
	s.cron.Start()
}

// Stop gracefully stops the scheduler, waiting for running jobs to finish.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// EntryID returns the cron entry of the named job, if scheduled.
func (s *Scheduler) EntryID(job string) (cron.EntryID, bool) {
	id, ok := s.entries[job]
	return id, ok
}

// RunNow runs the named job synchronously, outside the schedule.
func (s *Scheduler) RunNow(job string) bool {
	id, ok := s.entries[job]
	if !ok {
		return false
	}
	s.cron.Entry(id).Job.Run()
	return true
}

func (s *Scheduler) wrap(name string, run func(context.Context) error) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()

		s.log.Debug("scheduled job starting", "job", name)
		if err := run(ctx); err != nil {
			metrics.JobRunsTotal.WithLabelValues(name, "error").Inc()
			s.log.Error("scheduled job failed", "job", name, "error", err)
			return
		}
		metrics.JobRunsTotal.WithLabelValues(name, "success").Inc()
	}
}
