package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/donaldgifford/medwatch/internal/metrics"
)

// Cycler runs one poll cycle.
type Cycler interface {
	RunCycle(ctx context.Context) (*CycleReport, error)
}

// Scheduler runs poll cycles on a fixed interval.
type Scheduler struct {
	cron     *cron.Cron
	cycler   Cycler
	log      *slog.Logger
	cycleID  cron.EntryID
	baseCtx  context.Context
	timeout  time.Duration
	stopBase context.CancelFunc
}

// NewScheduler creates a Scheduler that runs c every interval. Overlapping
// runs are skipped: a cycle still in progress when the next tick fires
// keeps going and the tick is dropped. A positive timeout bounds each cycle.
func NewScheduler(c Cycler, interval, timeout time.Duration, log *slog.Logger) (*Scheduler, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("cycle interval must be positive, got %s", interval)
	}

	cr := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))

	ctx, cancel := context.WithCancel(context.Background())
	s := &Scheduler{
		cron:     cr,
		cycler:   c,
		log:      log,
		baseCtx:  ctx,
		timeout:  timeout,
		stopBase: cancel,
	}

	id, err := cr.AddFunc("@every "+interval.String(), s.runCycle)
	if err != nil {
		cancel()
		return nil, err
	}
	s.cycleID = id

	return s, nil
}

// Start begins running scheduled cycles.
func (s *Scheduler) Start() {
	s.log.Info("scheduler started")
	s.cron.Start()
	s.SyncNextRunTimestamp()
}

// Stop stops the scheduler and cancels the running cycle. The returned
// context is done once it has returned.
func (s *Scheduler) Stop() context.Context {
	s.log.Info("scheduler stopping")
	s.stopBase()
	return s.cron.Stop()
}

// Entries returns the registered cron entries for inspection.
func (s *Scheduler) Entries() []cron.Entry {
	return s.cron.Entries()
}

// SyncNextRunTimestamp publishes the next cycle time as a metric.
func (s *Scheduler) SyncNextRunTimestamp() {
	next := s.cron.Entry(s.cycleID).Next
	if next.IsZero() {
		return
	}
	metrics.SchedulerNextCycleTimestamp.Set(float64(next.Unix()))
}

func (s *Scheduler) runCycle() {
	defer s.SyncNextRunTimestamp()

	ctx := s.baseCtx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	s.log.Info("scheduled cycle starting")
	if _, err := s.cycler.RunCycle(ctx); err != nil {
		s.log.Error("scheduled cycle failed", "error", err)
	}
}
