package domain

import (
	"errors"
	"fmt"
)

// Engine errors.
var (
	// ErrConfiguration marks a malformed search configuration. It is raised
	// at creation or edit time, never during evaluation.
	ErrConfiguration = errors.New("invalid search configuration")

	// ErrDuplicatePolicyViolation marks an inconsistent fingerprint set. It
	// is fatal for the affected search's cycle only.
	ErrDuplicatePolicyViolation = errors.New("duplicate policy violation")

	// ErrSearchNotFound is returned by stores when a search id is unknown.
	ErrSearchNotFound = errors.New("search not found")
)

// ConfigurationError describes which part of a configuration was rejected.
// Segment carries the offending piece of input verbatim so the caller can
// show an actionable message.
type ConfigurationError struct {
	Field   string
	Segment string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	if e.Segment != "" {
		return fmt.Sprintf("%s: segment %q: %s", e.Field, e.Segment, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Unwrap lets callers match with errors.Is(err, ErrConfiguration).
func (*ConfigurationError) Unwrap() error { return ErrConfiguration }

func configErr(field, segment, reason string) *ConfigurationError {
	return &ConfigurationError{Field: field, Segment: segment, Reason: reason}
}
