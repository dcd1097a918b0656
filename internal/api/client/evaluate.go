package client

import (
	"context"
	"net/url"

	"github.com/donaldgifford/medwatch/internal/api/handlers"
	"github.com/donaldgifford/medwatch/internal/engine"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// Evaluation is the dry-run result for one search.
type Evaluation struct {
	SearchID  string                  `json:"search_id"`
	Decisions []handlers.DecisionView `json:"decisions"`
	Commit    int                     `json:"commit"`
}

// CycleResult is the report of a manual cycle.
type CycleResult struct {
	engine.CycleReport
	Error string `json:"error,omitempty"`
}

// ExclusionCheck is the outcome of validating an exclusion string.
type ExclusionCheck struct {
	Valid     bool   `json:"valid"`
	Canonical string `json:"canonical,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Evaluate dry-runs raws against the stored search id.
func (c *Client) Evaluate(ctx context.Context, id string, raws []domain.RawListing) (*Evaluation, error) {
	body := map[string]any{"listings": raws}
	var out Evaluation
	if err := c.post(ctx, "/api/v1/searches/"+url.PathEscape(id)+"/evaluate", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// RunCycle triggers one poll cycle and waits for its report.
func (c *Client) RunCycle(ctx context.Context) (*CycleResult, error) {
	var out CycleResult
	if err := c.post(ctx, "/api/v1/cycle", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ValidateExclusions checks an exclusion string on the server.
func (c *Client) ValidateExclusions(ctx context.Context, s string) (*ExclusionCheck, error) {
	var out ExclusionCheck
	if err := c.post(ctx, "/api/v1/exclusions/validate", map[string]string{"exclusions": s}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
