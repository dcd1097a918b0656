// Package source fetches raw listings for stored searches from the listing
// collector API and books appointment slots through it. The collector does
// the scraping and field extraction; this package only moves its output.
package source

import (
	"context"
	"errors"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// ErrSlotTaken is returned by a Booker when the slot is no longer free.
var ErrSlotTaken = errors.New("slot already taken")

// Source returns the raw listings currently offered for a search, in the
// order the collector produced them.
type Source interface {
	Fetch(ctx context.Context, s domain.Search) ([]domain.RawListing, error)
}

// Booker reserves an appointment slot on behalf of a watch's account.
type Booker interface {
	Book(ctx context.Context, w *domain.Watch, rec domain.CanonicalRecord) error
}

// Client fetches one page of collector results.
type Client interface {
	FetchPage(ctx context.Context, q Query, cursor string) (*Page, error)
}

// TokenProvider defines the interface for obtaining bearer tokens.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Page is one page of collector results. Next is empty on the last page.
type Page struct {
	Listings []domain.RawListing
	Next     string
}
