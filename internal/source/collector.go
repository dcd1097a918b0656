package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/donaldgifford/medwatch/internal/metrics"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

const (
	appointmentsPath = "/v1/appointments"
	offersPath       = "/v1/pharmacy-offers"
)

// CollectorClient implements Client against the listing collector API.
type CollectorClient struct {
	baseURL     string
	tokens      TokenProvider
	client      *http.Client
	rateLimiter *RateLimiter
}

// CollectorOption configures the CollectorClient.
type CollectorOption func(*CollectorClient)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(hc *http.Client) CollectorOption {
	return func(c *CollectorClient) {
		c.client = hc
	}
}

// WithRateLimiter injects a rate limiter that controls per-second and daily
// call limits. When set, every FetchPage call goes through Wait first.
func WithRateLimiter(r *RateLimiter) CollectorOption {
	return func(c *CollectorClient) {
		c.rateLimiter = r
	}
}

// WithTokenProvider sets the bearer token source. Without one, requests are
// sent unauthenticated.
func WithTokenProvider(p TokenProvider) CollectorOption {
	return func(c *CollectorClient) {
		c.tokens = p
	}
}

// NewCollectorClient creates a collector client rooted at baseURL.
func NewCollectorClient(baseURL string, opts ...CollectorOption) *CollectorClient {
	c := &CollectorClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchPage implements Client.FetchPage.
func (c *CollectorClient) FetchPage(ctx context.Context, q Query, cursor string) (*Page, error) {
	path, err := endpointFor(q.Kind)
	if err != nil {
		return nil, err
	}

	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	metrics.SourceRequestsTotal.WithLabelValues(string(q.Kind)).Inc()

	params := cloneValues(q.Params)
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	u := c.baseURL + path
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if err := c.authorize(ctx, req); err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing collector request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("collector error (status %d): %s", resp.StatusCode, string(body))
	}

	var page pageResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("parsing collector response: %w", err)
	}

	out := &Page{Next: page.Next}
	switch q.Kind {
	case domain.KindAppointment:
		out.Listings = SlotsToListings(page.Slots)
	case domain.KindPharmacy:
		out.Listings = OffersToListings(page.Offers)
	}
	return out, nil
}

func (c *CollectorClient) wait(ctx context.Context) error {
	if c.rateLimiter == nil {
		return nil
	}
	if err := c.rateLimiter.Wait(ctx); err != nil {
		if errors.Is(err, ErrDailyLimitReached) {
			metrics.SourceDailyLimitHits.Inc()
		}
		return fmt.Errorf("rate limit: %w", err)
	}
	metrics.SourceDailyUsage.Set(float64(c.rateLimiter.DailyCount()))
	return nil
}

func (c *CollectorClient) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("getting auth token: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return nil
}

func endpointFor(kind domain.ListingKind) (string, error) {
	switch kind {
	case domain.KindAppointment:
		return appointmentsPath, nil
	case domain.KindPharmacy:
		return offersPath, nil
	default:
		return "", fmt.Errorf("unsupported listing kind %q", kind)
	}
}

var (
	_ Client = (*CollectorClient)(nil)
	_ Booker = (*CollectorClient)(nil)
	_ Source = (*PagedSource)(nil)
)
