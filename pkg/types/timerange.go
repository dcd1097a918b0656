package domain

import (
	"encoding/json"
	"strings"
	"time"
)

// TimeRange is a time-of-day window. An open-ended range has no upper bound.
type TimeRange struct {
	Start   time.Duration
	End     time.Duration
	OpenEnd bool
}

// AnyTime is the default range: from midnight, open-ended.
var AnyTime = TimeRange{OpenEnd: true}

// ParseTimeRange parses "HH:MM[:SS]", "HH:MM[:SS]-*" and
// "HH:MM[:SS]-HH:MM[:SS]". A single time means "from then on".
// Empty input yields AnyTime.
func ParseTimeRange(s string) (TimeRange, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return AnyTime, nil
	}

	startStr, endStr, hasEnd := strings.Cut(s, "-")
	start, err := parseClock(startStr)
	if err != nil {
		return TimeRange{}, configErr("time_range", s, "expected HH:MM[:SS][-HH:MM[:SS]|-*]")
	}

	endStr = strings.TrimSpace(endStr)
	if !hasEnd || endStr == "*" {
		return TimeRange{Start: start, OpenEnd: true}, nil
	}

	end, err := parseClock(endStr)
	if err != nil {
		return TimeRange{}, configErr("time_range", s, "expected HH:MM[:SS][-HH:MM[:SS]|-*]")
	}
	if end < start {
		return TimeRange{}, configErr("time_range", s, "end time cannot be earlier than the start time")
	}

	return TimeRange{Start: start, End: end}, nil
}

func parseClock(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	layout := "15:04:05"
	if strings.Count(s, ":") == 1 {
		layout = "15:04"
	}
	t, err := time.Parse(layout, s)
	if err != nil {
		return 0, err
	}
	return clockOf(t), nil
}

func clockOf(t time.Time) time.Duration {
	return time.Duration(t.Hour())*time.Hour +
		time.Duration(t.Minute())*time.Minute +
		time.Duration(t.Second())*time.Second
}

// Contains reports whether the clock time of t lies within the range,
// bounds inclusive.
func (r TimeRange) Contains(t time.Time) bool {
	c := clockOf(t)
	if c < r.Start {
		return false
	}
	return r.OpenEnd || c <= r.End
}

// String renders the range as HH:MM:SS-HH:MM:SS or HH:MM:SS-*.
func (r TimeRange) String() string {
	if r.OpenEnd {
		return formatClock(r.Start) + "-*"
	}
	return formatClock(r.Start) + "-" + formatClock(r.End)
}

func formatClock(d time.Duration) string {
	return time.Time{}.Add(d).Format("15:04:05")
}

// MarshalJSON stores the range in its textual form.
func (r TimeRange) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// UnmarshalJSON parses the textual form.
func (r *TimeRange) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseTimeRange(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
