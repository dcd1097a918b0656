// Package dedup recognizes repeat occurrences of the same real-world entity
// for one search, across poll cycles and within a single batch.
//
// The index is loaded with the fingerprints already reported for the search,
// classifies the records of one cycle and hands back the fingerprints to
// persist. It never persists anything itself.
package dedup

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// DefaultSimilarityThreshold is the minimum normalized address similarity
// for two pharmacy records to be considered the same place.
const DefaultSimilarityThreshold = 0.9

// Outcome classifies a record against the index.
type Outcome int

// Classification outcomes.
const (
	New Outcome = iota
	DuplicateOfSeen
	DuplicateInBatch
)

// String returns the outcome label used in logs and metrics.
func (o Outcome) String() string {
	switch o {
	case DuplicateOfSeen:
		return "duplicate_seen"
	case DuplicateInBatch:
		return "duplicate_in_batch"
	default:
		return "new"
	}
}

// Option configures an Index.
type Option func(*Index)

// WithSimilarityThreshold sets the address similarity threshold. Values
// outside (0, 1] are ignored.
func WithSimilarityThreshold(t float64) Option {
	return func(ix *Index) {
		if t > 0 && t <= 1 {
			ix.threshold = t
		}
	}
}

// Classified is one record of a batch with its fingerprint and outcome.
type Classified struct {
	Record      domain.CanonicalRecord
	Fingerprint domain.Fingerprint
	Outcome     Outcome
}

// group is the set of fingerprints collapsed to one entity in the current
// batch. rep is the position of the surviving record in the ClassifyBatch
// output, or -1 when it was classified by an earlier call.
type group struct {
	fps []domain.Fingerprint
	rep int
}

// Index holds the fingerprint state of a single search. It is not safe for
// concurrent use; the caller serializes cycles per search id.
type Index struct {
	searchID  string
	kind      domain.ListingKind
	threshold float64
	seen      []domain.Fingerprint
	batch     []*group
}

// NewIndex validates the persisted fingerprint set and returns an index over
// it. An empty key, a fingerprint of another kind, or two entries sharing a
// key with different components is a duplicate policy violation.
func NewIndex(searchID string, kind domain.ListingKind, seen []domain.Fingerprint, opts ...Option) (*Index, error) {
	ix := &Index{
		searchID:  searchID,
		kind:      kind,
		threshold: DefaultSimilarityThreshold,
	}
	for _, opt := range opts {
		opt(ix)
	}

	byKey := make(map[string]domain.Fingerprint, len(seen))
	for i, fp := range seen {
		switch {
		case fp.Key == "":
			return nil, fmt.Errorf("search %s: fingerprint %d has an empty key: %w",
				searchID, i, domain.ErrDuplicatePolicyViolation)
		case fp.Kind != kind:
			return nil, fmt.Errorf("search %s: fingerprint %s is %q, want %q: %w",
				searchID, fp.Key, fp.Kind, kind, domain.ErrDuplicatePolicyViolation)
		}
		if prev, ok := byKey[fp.Key]; ok {
			if !prev.SameComponents(fp) {
				return nil, fmt.Errorf("search %s: fingerprint %s stored with conflicting components: %w",
					searchID, fp.Key, domain.ErrDuplicatePolicyViolation)
			}
			continue
		}
		byKey[fp.Key] = fp
		ix.seen = append(ix.seen, fp)
	}

	return ix, nil
}

// SearchID returns the search the index belongs to.
func (ix *Index) SearchID() string { return ix.searchID }

// Classify fingerprints rec and classifies it against the persisted set and
// the records classified earlier in this batch. New records join the batch.
func (ix *Index) Classify(rec *domain.CanonicalRecord) (Outcome, domain.Fingerprint) {
	fp := domain.FingerprintOf(rec)
	out, _ := ix.classify(fp)
	if out == New && fp.Discriminating() {
		ix.batch = append(ix.batch, &group{fps: []domain.Fingerprint{fp}, rep: -1})
	}
	return out, fp
}

// ClassifyBatch classifies recs in order. Records collapsing to the same
// entity within the batch are merged: the record with more populated fields
// stays New and the others become DuplicateInBatch; ties keep the first.
func (ix *Index) ClassifyBatch(recs []domain.CanonicalRecord) []Classified {
	out := make([]Classified, len(recs))
	for i := range recs {
		fp := domain.FingerprintOf(&recs[i])
		out[i] = Classified{Record: recs[i], Fingerprint: fp}

		outcome, g := ix.classify(fp)
		out[i].Outcome = outcome

		switch {
		case outcome == New && fp.Discriminating():
			ix.batch = append(ix.batch, &group{fps: []domain.Fingerprint{fp}, rep: i})
		case outcome == DuplicateInBatch:
			g.fps = append(g.fps, fp)
			if g.rep >= 0 && recs[i].Populated() > out[g.rep].Record.Populated() {
				out[g.rep].Outcome = DuplicateInBatch
				out[i].Outcome = New
				g.rep = i
			}
		}
	}
	return out
}

func (ix *Index) classify(fp domain.Fingerprint) (Outcome, *group) {
	if !fp.Discriminating() {
		return New, nil
	}
	for _, s := range ix.seen {
		if ix.sameEntity(fp, s) {
			return DuplicateOfSeen, nil
		}
	}
	for _, g := range ix.batch {
		for _, b := range g.fps {
			if ix.sameEntity(fp, b) {
				return DuplicateInBatch, g
			}
		}
	}
	return New, nil
}

// Commit adds fingerprints to the seen set. Fingerprints without a key or
// already present are skipped.
func (ix *Index) Commit(fps []domain.Fingerprint) {
	for _, fp := range fps {
		if fp.Key == "" || slices.ContainsFunc(ix.seen, func(s domain.Fingerprint) bool { return s.Key == fp.Key }) {
			continue
		}
		ix.seen = append(ix.seen, fp)
	}
}

// Seen returns a copy of the persisted set including committed entries.
func (ix *Index) Seen() []domain.Fingerprint {
	return slices.Clone(ix.seen)
}

// Reset forgets the current batch, keeping the seen set.
func (ix *Index) Reset() {
	ix.batch = nil
}

// sameEntity decides whether two fingerprints describe one entity.
// Appointments compare exactly. Pharmacies compare phone and address:
// missing fields are wildcards, a known field that disagrees, a differing
// postal code or differing building numbers rule the match out, and at least
// one of phone or address must have been compared. Address similarity only
// forgives differences in the street and city text.
func (ix *Index) sameEntity(a, b domain.Fingerprint) bool {
	if a.Kind != b.Kind {
		return false
	}
	if a.Kind == domain.KindAppointment {
		return a.Key == b.Key
	}
	if !a.Discriminating() || !b.Discriminating() {
		return false
	}
	if a.Key == b.Key {
		return true
	}
	if a.PostalCode != "" && b.PostalCode != "" && a.PostalCode != b.PostalCode {
		return false
	}

	compared := false
	if a.Phone != "" && b.Phone != "" {
		if a.Phone != b.Phone {
			return false
		}
		compared = true
	}
	if a.AddressKey != "" && b.AddressKey != "" {
		na, nb := buildingNumbers(a.AddressKey), buildingNumbers(b.AddressKey)
		if len(na) > 0 && len(nb) > 0 && !slices.Equal(na, nb) {
			return false
		}
		if Similarity(a.AddressKey, b.AddressKey) < ix.threshold {
			return false
		}
		compared = true
	}
	return compared
}

// buildingNumbers returns the address key tokens that carry a digit, such
// as "12", "126/134" or "7a".
func buildingNumbers(key string) []string {
	var out []string
	for _, f := range strings.Fields(key) {
		if strings.ContainsAny(f, "0123456789") {
			out = append(out, f)
		}
	}
	return out
}

// Similarity returns 1 - levenshtein(a, b) / max(len(a), len(b)) over runes.
func Similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}
