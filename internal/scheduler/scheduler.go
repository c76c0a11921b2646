// Package scheduler provides cron-based refreshing of the cached zone rules.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// Refresher drops cached zone rules and reports how many were dropped.
type Refresher interface {
	FlushZones() int
}

// Config holds the scheduler configuration
type Config struct {
	// Schedule is a cron expression for when to refresh (e.g., "0 3 * * *" for daily at 03:00)
	Schedule string
	// Timeout is the maximum duration for one refresh cycle
	Timeout time.Duration
	// Enabled determines if the scheduler should run
	Enabled bool
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Schedule: "0 3 * * *", // Every day at 03:00
		Timeout:  30 * time.Second,
		Enabled:  true,
	}
}

// Scheduler runs the zone refresh job.
type Scheduler struct {
	cron      *cron.Cron
	refresher Refresher
	config    Config
	logger    *slog.Logger
	entryID   cron.EntryID

	mu      sync.Mutex
	lastRun time.Time
}

// New creates a new Scheduler instance
func New(cfg Config, refresher Refresher, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}

	return &Scheduler{
		cron:      cron.New(cron.WithSeconds()),
		refresher: refresher,
		config:    cfg,
		logger:    logger,
	}
}

// Start begins the scheduler
func (s *Scheduler) Start() error {
	if !s.config.Enabled {
		s.logger.Info("Zone refresh is disabled, skipping start")
		return nil
	}

	// Convert standard cron (5 fields) to cron with seconds (6 fields)
	schedule := "0 " + s.config.Schedule

	entryID, err := s.cron.AddFunc(schedule, func() {
		s.runRefreshJob()
	})
	if err != nil {
		return err
	}

	s.entryID = entryID
	s.cron.Start()

	s.logger.Info("Zone refresh scheduler started",
		slog.String("schedule", s.config.Schedule),
		slog.Duration("timeout", s.config.Timeout),
	)

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("Stopping zone refresh scheduler...")
	return s.cron.Stop()
}

// RunNow triggers an immediate refresh and returns once it is done.
func (s *Scheduler) RunNow() int {
	return s.runRefreshJob()
}

// runRefreshJob flushes the zone cache. Flushing never blocks on I/O, so
// the timeout only bounds how long the job waits for its turn.
func (s *Scheduler) runRefreshJob() int {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Timeout)
	defer cancel()

	startTime := time.Now()
	s.logger.Debug("Starting zone refresh job",
		slog.Time("start_time", startTime),
	)

	done := make(chan int, 1)
	go func() { done <- s.refresher.FlushZones() }()

	select {
	case <-ctx.Done():
		s.logger.Error("Zone refresh job timed out",
			slog.Duration("timeout", s.config.Timeout),
		)
		return 0
	case n := <-done:
		s.mu.Lock()
		s.lastRun = startTime
		s.mu.Unlock()

		s.logger.Info("Zone refresh job completed",
			slog.Int("zones_flushed", n),
			slog.Duration("duration", time.Since(startTime)),
		)
		return n
	}
}

// GetNextRunTime returns the next scheduled run time
func (s *Scheduler) GetNextRunTime() time.Time {
	if s.entryID == 0 {
		return time.Time{}
	}
	entry := s.cron.Entry(s.entryID)
	return entry.Next
}

// GetLastRunTime returns the start time of the last completed refresh,
// whether scheduled or triggered by RunNow.
func (s *Scheduler) GetLastRunTime() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastRun
}

// IsRunning returns true if the scheduler is running
func (s *Scheduler) IsRunning() bool {
	return s.cron != nil && len(s.cron.Entries()) > 0
}
