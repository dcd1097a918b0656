package engine

import (
	"fmt"
	"log/slog"

	"github.com/donaldgifford/medwatch/internal/metrics"
	"github.com/donaldgifford/medwatch/pkg/decide"
	"github.com/donaldgifford/medwatch/pkg/dedup"
	"github.com/donaldgifford/medwatch/pkg/match"
	"github.com/donaldgifford/medwatch/pkg/normalize"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// Evaluation is the in-memory result of running a batch through the
// pipeline.
type Evaluation struct {
	Records []decide.Evaluated `json:"records"`
	Outcome decide.Outcome     `json:"outcome"`
}

// Evaluate runs raws through normalization, matching, deduplication and the
// decider for the search snapshot s, given the fingerprints persisted for
// it. It performs no I/O and does not modify seen.
//
// Only matching records are deduplicated, so a record that fails the
// criteria never shadows a later matching one.
func (eng *Engine) Evaluate(s domain.Search, raws []domain.RawListing, seen []domain.Fingerprint) (*Evaluation, error) {
	ix, err := dedup.NewIndex(s.SearchID(), s.Kind(), seen, dedup.WithSimilarityThreshold(eng.similarityThreshold))
	if err != nil {
		return nil, fmt.Errorf("loading dedup index: %w", err)
	}

	recs := normalize.NormalizeAll(raws)
	evs := make([]decide.Evaluated, len(recs))

	var (
		matched   []domain.CanonicalRecord
		positions []int
	)
	for i := range recs {
		evs[i] = decide.Evaluated{
			Record: recs[i],
			Match:  eng.matcher.Match(&recs[i], s, match.Facts{}),
		}
		if evs[i].Match.Matched {
			matched = append(matched, recs[i])
			positions = append(positions, i)
		} else {
			evs[i].Fingerprint = domain.FingerprintOf(&recs[i])
		}
	}

	for j, c := range ix.ClassifyBatch(matched) {
		i := positions[j]
		evs[i].Outcome = c.Outcome
		evs[i].Fingerprint = c.Fingerprint
	}

	out := decide.Decide(decide.Input{
		Search:    s,
		Evaluated: evs,
		Policy: decide.Policy{
			NotificationsEnabled: eng.notificationsEnabled,
			Now:                  eng.now(),
		},
	})

	return &Evaluation{Records: evs, Outcome: out}, nil
}

// observe records metrics and debug logs for an evaluation.
func (eng *Engine) observe(log *slog.Logger, ev *Evaluation) {
	for i := range ev.Records {
		r := &ev.Records[i]
		for _, a := range r.Record.Ambiguities {
			metrics.NormalizationAmbiguitiesTotal.WithLabelValues(a.Field).Inc()
			log.Debug("normalization ambiguity", "field", a.Field, "raw", a.Raw, "source_id", r.Record.SourceID)
		}
		if r.Match.Matched {
			metrics.DedupOutcomesTotal.WithLabelValues(r.Outcome.String()).Inc()
		}
	}
	for _, d := range ev.Outcome.Decisions {
		metrics.DecisionsTotal.WithLabelValues(string(d.Action)).Inc()
	}
}
