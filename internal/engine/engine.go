// Package engine runs poll cycles: it fetches listings for every active
// search, evaluates them through normalization, matching, deduplication and
// the decider, and hands the decisions to the collaborators.
package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/medwatch/internal/metrics"
	"github.com/donaldgifford/medwatch/internal/notify"
	"github.com/donaldgifford/medwatch/internal/source"
	"github.com/donaldgifford/medwatch/internal/store"
	"github.com/donaldgifford/medwatch/pkg/dedup"
	"github.com/donaldgifford/medwatch/pkg/match"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const defaultWorkers = 4

const instrumentation = "github.com/donaldgifford/medwatch/internal/engine"

var (
	tracer = otel.Tracer(instrumentation)

	// decisionCounter is exported over OTLP when telemetry is enabled.
	decisionCounter, _ = otel.Meter(instrumentation).Int64Counter(
		"medwatch.engine.decisions",
		metric.WithDescription("Decisions produced by poll cycles, by action."),
	)
)

// Failure reasons recorded in metrics.CycleFailuresTotal.
const (
	failureDuplicatePolicy = "duplicate_policy"
	failureDailyLimit      = "daily_limit"
	failureSource          = "source"
	failureStore           = "store"
	failureCanceled        = "canceled"
)

// Engine evaluates stored searches against fetched listings.
type Engine struct {
	store        store.Store
	fingerprints store.FingerprintStore
	source       source.Source
	notifier     notify.Notifier
	booker       source.Booker
	log          *slog.Logger

	matcher              *match.Matcher
	gp                   []int64
	workers              int
	similarityThreshold  float64
	notificationsEnabled bool
	now                  func() time.Time

	locks searchLocks
}

// NewEngine creates a new Engine with injected dependencies.
func NewEngine(
	s store.Store,
	fps store.FingerprintStore,
	src source.Source,
	n notify.Notifier,
	opts ...EngineOption,
) *Engine {
	eng := &Engine{
		store:                s,
		fingerprints:         fps,
		source:               src,
		notifier:             n,
		log:                  slog.Default(),
		gp:                   domain.GeneralPractitionerSpecialties,
		workers:              defaultWorkers,
		similarityThreshold:  dedup.DefaultSimilarityThreshold,
		notificationsEnabled: true,
		now:                  time.Now,
	}
	for _, opt := range opts {
		opt(eng)
	}
	eng.matcher = match.New(match.WithGeneralPractitionerSpecialties(eng.gp))
	return eng
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) {
		e.log = l
	}
}

// WithBooker enables auto-booking through b. Without a booker, AutoBook
// decisions fall back to a notification.
func WithBooker(b source.Booker) EngineOption {
	return func(e *Engine) {
		e.booker = b
	}
}

// WithWorkers sets how many searches are evaluated concurrently.
func WithWorkers(n int) EngineOption {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithSimilarityThreshold sets the address similarity threshold used by
// pharmacy deduplication.
func WithSimilarityThreshold(t float64) EngineOption {
	return func(e *Engine) {
		e.similarityThreshold = t
	}
}

// WithNotificationsEnabled toggles user notifications. Auto-booking still
// happens when they are off.
func WithNotificationsEnabled(enabled bool) EngineOption {
	return func(e *Engine) {
		e.notificationsEnabled = enabled
	}
}

// WithGPSpecialties overrides the specialty ids a general practitioner
// watch expands to.
func WithGPSpecialties(ids []int64) EngineOption {
	return func(e *Engine) {
		if len(ids) > 0 {
			e.gp = ids
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) {
		e.now = now
	}
}

// CycleReport summarizes one poll cycle.
type CycleReport struct {
	Searches  int                   `json:"searches"`
	Evaluated int                   `json:"evaluated"`
	Failed    int                   `json:"failed"`
	Decisions map[domain.Action]int `json:"decisions"`
}

// RunCycle evaluates every active search once. Searches run concurrently on
// a bounded pool; a failing search is logged and does not stop the others.
// The returned error joins the per-search failures.
func (eng *Engine) RunCycle(ctx context.Context) (*CycleReport, error) {
	ctx, span := tracer.Start(ctx, "engine.RunCycle")
	defer span.End()

	start := time.Now()
	defer func() {
		metrics.CycleDuration.Observe(time.Since(start).Seconds())
	}()

	searches, err := eng.store.ListActiveSearches(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing active searches: %w", err)
	}
	recordActive(searches)

	report := &CycleReport{
		Searches:  len(searches),
		Decisions: make(map[domain.Action]int),
	}

	var (
		mu   sync.Mutex
		errs []error
		g    errgroup.Group
	)
	g.SetLimit(eng.workers)

	for _, s := range searches {
		g.Go(func() error {
			res, err := eng.RunSearch(ctx, s)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				report.Failed++
				errs = append(errs, err)
				return nil
			}
			if res.Skipped {
				return nil
			}
			report.Evaluated++
			for _, d := range res.Decisions {
				report.Decisions[d.Action]++
			}
			return nil
		})
	}
	_ = g.Wait() //nolint:errcheck // workers never return errors

	for action, n := range report.Decisions {
		decisionCounter.Add(ctx, int64(n), metric.WithAttributes(attribute.String("action", string(action))))
	}

	span.SetAttributes(
		attribute.Int("medwatch.searches", report.Searches),
		attribute.Int("medwatch.failed", report.Failed),
	)
	if report.Failed > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d searches failed", report.Failed))
	}

	eng.log.Info("cycle complete",
		"searches", report.Searches,
		"evaluated", report.Evaluated,
		"failed", report.Failed,
		"duration", time.Since(start),
	)

	return report, errors.Join(errs...)
}

// SearchResult is what one search's cycle decided and executed.
type SearchResult struct {
	Decisions []domain.Decision
	Committed []domain.Fingerprint
	// Skipped is set when the watch's dates put it outside the look-ahead
	// window and nothing was fetched.
	Skipped bool
}

// RunSearch runs one cycle for the search snapshot s: fetch, evaluate,
// dispatch and commit. Cycles for the same search id never overlap.
func (eng *Engine) RunSearch(ctx context.Context, s domain.Search) (res *SearchResult, err error) {
	id := s.SearchID()
	log := eng.log.With("search_id", id, "kind", s.Kind())

	ctx, span := tracer.Start(ctx, "engine.RunSearch", trace.WithAttributes(
		attribute.String("medwatch.search_id", id),
		attribute.String("medwatch.kind", string(s.Kind())),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "search cycle failed")
		}
		span.End()
	}()

	unlock := eng.locks.lock(id)
	defer unlock()

	start := time.Now()
	defer func() {
		metrics.SearchEvaluationDuration.WithLabelValues(string(s.Kind())).Observe(time.Since(start).Seconds())
	}()

	if w, ok := s.(*domain.Watch); ok {
		if status := w.Status(eng.now()); status != domain.WatchStatusActive {
			log.Debug("watch not in its date window, skipping", "status", status)
			return &SearchResult{Skipped: true}, nil
		}
	}

	raws, err := eng.source.Fetch(ctx, s)
	if err != nil {
		return nil, eng.fail(log, id, sourceFailure(err), fmt.Errorf("fetching listings: %w", err))
	}
	metrics.ListingsFetchedTotal.WithLabelValues(string(s.Kind())).Add(float64(len(raws)))

	seen, err := eng.fingerprints.LoadFingerprints(ctx, id)
	if err != nil {
		return nil, eng.fail(log, id, failureStore, fmt.Errorf("loading fingerprints: %w", err))
	}

	if err := ctx.Err(); err != nil {
		return nil, eng.fail(log, id, failureCanceled, err)
	}

	ev, err := eng.Evaluate(s, raws, seen)
	if err != nil {
		reason := failureStore
		if errors.Is(err, domain.ErrDuplicatePolicyViolation) {
			reason = failureDuplicatePolicy
		}
		return nil, eng.fail(log, id, reason, err)
	}
	eng.observe(log, ev)

	if err := ctx.Err(); err != nil {
		return nil, eng.fail(log, id, failureCanceled, err)
	}

	executed := eng.dispatch(ctx, log, s, ev.Outcome.Decisions)
	committed := commitSet(ev.Outcome.Commit, executed)

	if len(committed) > 0 {
		if err := eng.fingerprints.CommitFingerprints(ctx, id, committed); err != nil {
			return nil, eng.fail(log, id, failureStore, fmt.Errorf("committing fingerprints: %w", err))
		}
	}

	if err := eng.store.MarkSearched(ctx, id, eng.now()); err != nil {
		log.Warn("marking search as searched failed", "error", err)
	}

	log.Info("search evaluated",
		"listings", len(raws),
		"decisions", len(ev.Outcome.Decisions),
		"committed", len(committed),
	)

	return &SearchResult{Decisions: ev.Outcome.Decisions, Committed: committed}, nil
}

// DryRun evaluates raws against the stored search id and its persisted
// fingerprints without executing or committing anything.
func (eng *Engine) DryRun(ctx context.Context, id string, raws []domain.RawListing) (*Evaluation, error) {
	s, err := eng.store.GetSearch(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("getting search %s: %w", id, err)
	}

	seen, err := eng.fingerprints.LoadFingerprints(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading fingerprints: %w", err)
	}

	return eng.Evaluate(s, raws, seen)
}

func (eng *Engine) fail(log *slog.Logger, id, reason string, err error) error {
	metrics.CycleFailuresTotal.WithLabelValues(reason).Inc()
	log.Error("search cycle failed", "reason", reason, "error", err)
	return fmt.Errorf("search %s: %w", id, err)
}

func sourceFailure(err error) string {
	if errors.Is(err, source.ErrDailyLimitReached) {
		return failureDailyLimit
	}
	return failureSource
}

func recordActive(searches []domain.Search) {
	counts := map[domain.ListingKind]int{domain.KindAppointment: 0, domain.KindPharmacy: 0}
	for _, s := range searches {
		counts[s.Kind()]++
	}
	for kind, n := range counts {
		metrics.ActiveSearches.WithLabelValues(string(kind)).Set(float64(n))
	}
}

// searchLocks serializes cycles per search id.
type searchLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *searchLocks) lock(id string) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = make(map[string]*sync.Mutex)
	}
	m, ok := l.locks[id]
	if !ok {
		m = &sync.Mutex{}
		l.locks[id] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
