package source

import (
	"context"
	"fmt"
	"log/slog"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const defaultMaxPages = 10

// PagedSource implements Source by walking collector pages until the
// cursor runs out or the page cap is reached.
type PagedSource struct {
	client   Client
	gp       []int64
	logger   *slog.Logger
	maxPages int
}

// PagedSourceOption configures the PagedSource.
type PagedSourceOption func(*PagedSource)

// WithMaxPages overrides the default page cap.
func WithMaxPages(n int) PagedSourceOption {
	return func(p *PagedSource) {
		if n > 0 {
			p.maxPages = n
		}
	}
}

// WithGPSpecialties sets the specialty ids a general practitioner watch
// expands to when building queries.
func WithGPSpecialties(ids []int64) PagedSourceOption {
	return func(p *PagedSource) {
		p.gp = ids
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) PagedSourceOption {
	return func(p *PagedSource) {
		p.logger = l
	}
}

// NewPagedSource creates a PagedSource over client.
func NewPagedSource(client Client, opts ...PagedSourceOption) *PagedSource {
	p := &PagedSource{
		client:   client,
		gp:       domain.GeneralPractitionerSpecialties,
		logger:   slog.Default(),
		maxPages: defaultMaxPages,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Fetch implements Source.Fetch. Listings keep the collector's order across
// pages.
func (p *PagedSource) Fetch(ctx context.Context, s domain.Search) ([]domain.RawListing, error) {
	q := QueryFor(s, p.gp)

	var (
		listings []domain.RawListing
		cursor   string
	)
	for page := range p.maxPages {
		resp, err := p.client.FetchPage(ctx, q, cursor)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d: %w", page, err)
		}

		listings = append(listings, resp.Listings...)

		if resp.Next == "" {
			return listings, nil
		}
		cursor = resp.Next
	}

	p.logger.Warn("page cap reached, listings truncated",
		"search_id", s.SearchID(),
		"kind", q.Kind,
		"max_pages", p.maxPages,
		"listings", len(listings),
	)
	return listings, nil
}
