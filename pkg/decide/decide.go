// Package decide turns match and deduplication results into the ordered list
// of decisions for one search and one cycle. It performs no side effects.
package decide

import (
	"slices"
	"time"

	"github.com/donaldgifford/medwatch/pkg/dedup"
	"github.com/donaldgifford/medwatch/pkg/match"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// Evaluated is a record with everything the decider needs to know about it.
type Evaluated struct {
	Record      domain.CanonicalRecord
	Match       match.Result
	Outcome     dedup.Outcome
	Fingerprint domain.Fingerprint
}

// Policy holds engine-wide switches.
type Policy struct {
	NotificationsEnabled bool
	// Now is used to derive a watch's date status. Zero skips the check.
	Now time.Time
}

// Input is everything one decision pass consumes.
type Input struct {
	Search    domain.Search
	Evaluated []Evaluated
	Policy    Policy
}

// Outcome is the result of one decision pass.
type Outcome struct {
	// Decisions are ordered by domain.ActionPriority, then input order.
	Decisions []domain.Decision
	// Commit lists the fingerprints of records decided Notify or AutoBook.
	Commit []domain.Fingerprint
}

// Decide produces the decisions for one search snapshot.
func Decide(in Input) Outcome {
	id := in.Search.SearchID()
	entries := make([]entry, 0, len(in.Evaluated)+1)
	emit := func(pos int, a domain.Action, r domain.Reason) {
		entries = append(entries, entry{pos: pos, d: decision(id, a, r, in.Evaluated[pos])})
	}

	if !active(in.Search, in.Policy.Now) {
		for i := range in.Evaluated {
			emit(i, domain.ActionSkip, domain.ReasonInactive)
		}
		return collect(entries)
	}

	// candidates are positions of matching, new records.
	var candidates []int
	for i, ev := range in.Evaluated {
		switch {
		case !ev.Match.Matched:
			emit(i, domain.ActionSkip, ev.Match.Reason)
		case ev.Outcome == dedup.DuplicateOfSeen:
			emit(i, domain.ActionSkip, domain.ReasonDuplicateSeen)
		case ev.Outcome == dedup.DuplicateInBatch:
			emit(i, domain.ActionSkip, domain.ReasonDuplicateInBatch)
		default:
			candidates = append(candidates, i)
		}
	}

	book := -1
	if w, ok := in.Search.(*domain.Watch); ok && w.AutoBook && len(candidates) > 0 {
		recs := make([]domain.CanonicalRecord, len(candidates))
		for j, i := range candidates {
			recs[j] = in.Evaluated[i].Record
		}
		book = candidates[match.SelectForBooking(recs)]
	}

	for _, i := range candidates {
		switch {
		case i == book:
			emit(i, domain.ActionAutoBook, domain.ReasonAutoBook)
		case !in.Policy.NotificationsEnabled:
			emit(i, domain.ActionSkip, domain.ReasonNotificationsDisabled)
		case book >= 0:
			emit(i, domain.ActionNotify, domain.ReasonAutoBookFallback)
		default:
			emit(i, domain.ActionNotify, domain.ReasonNotify)
		}
	}

	if m, ok := in.Search.(*domain.MedicineSearch); ok {
		if pos, ok := deactivation(m, in.Evaluated); ok {
			emit(pos, domain.ActionDeactivate, domain.ReasonDeactivateThreshold)
		}
	}

	return collect(entries)
}

type entry struct {
	pos int
	d   domain.Decision
}

// collect orders entries by action priority, then by record position, and
// gathers the fingerprints to commit.
func collect(entries []entry) Outcome {
	slices.SortStableFunc(entries, func(a, b entry) int {
		if r := a.d.Action.Rank() - b.d.Action.Rank(); r != 0 {
			return r
		}
		return a.pos - b.pos
	})

	out := Outcome{Decisions: make([]domain.Decision, len(entries))}
	for i, e := range entries {
		out.Decisions[i] = e.d
		if (e.d.Action == domain.ActionNotify || e.d.Action == domain.ActionAutoBook) && e.d.Fingerprint.Key != "" {
			out.Commit = append(out.Commit, e.d.Fingerprint)
		}
	}
	return out
}

// deactivation reports the position of the record that carries the
// Deactivate decision once the number of distinct matching entities reaches
// the search's threshold. Entities seen in earlier cycles count; in-batch
// duplicates do not.
func deactivation(m *domain.MedicineSearch, evs []Evaluated) (int, bool) {
	threshold, ok := m.DeactivationThreshold()
	if !ok {
		return 0, false
	}

	first := -1
	count := 0
	for i, ev := range evs {
		if !ev.Match.Matched || ev.Outcome == dedup.DuplicateInBatch {
			continue
		}
		if !ev.Record.Availability.AtLeast(m.MinAvailability) {
			continue
		}
		if first < 0 {
			first = i
		}
		count++
	}
	if count < threshold || first < 0 {
		return 0, false
	}
	return first, true
}

func active(s domain.Search, now time.Time) bool {
	if !s.IsActive() {
		return false
	}
	if w, ok := s.(*domain.Watch); ok && !now.IsZero() {
		return w.Status(now) == domain.WatchStatusActive
	}
	return true
}

func decision(id string, a domain.Action, r domain.Reason, ev Evaluated) domain.Decision {
	return domain.Decision{
		Action:      a,
		SearchID:    id,
		Record:      ev.Record,
		Reason:      r,
		Fingerprint: ev.Fingerprint,
	}
}
