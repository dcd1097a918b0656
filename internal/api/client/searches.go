package client

import (
	"context"
	"net/url"
	"strconv"

	"github.com/donaldgifford/medwatch/internal/api/handlers"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// WatchList is one page of watches.
type WatchList struct {
	Watches []handlers.WatchView `json:"watches"`
	Total   int                  `json:"total"`
	Limit   int                  `json:"limit"`
	Offset  int                  `json:"offset"`
}

// MedicineList is one page of medicine searches.
type MedicineList struct {
	Searches []handlers.MedicineView `json:"searches"`
	Total    int                     `json:"total"`
	Limit    int                     `json:"limit"`
	Offset   int                     `json:"offset"`
}

// ListParams are the common list filters. Zero values are omitted.
type ListParams struct {
	Active *bool
	Limit  int
	Offset int
}

func (p *ListParams) query() string {
	if p == nil {
		return ""
	}
	v := url.Values{}
	if p.Active != nil {
		v.Set("active", strconv.FormatBool(*p.Active))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		v.Set("offset", strconv.Itoa(p.Offset))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

// ListWatches returns one page of watches.
func (c *Client) ListWatches(ctx context.Context, p *ListParams) (*WatchList, error) {
	var out WatchList
	if err := c.get(ctx, "/api/v1/watches"+p.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetWatch returns a single watch by ID.
func (c *Client) GetWatch(ctx context.Context, id string) (*handlers.WatchView, error) {
	var w handlers.WatchView
	if err := c.get(ctx, "/api/v1/watches/"+url.PathEscape(id), &w); err != nil {
		return nil, err
	}
	return &w, nil
}

// CreateWatch creates a watch from its configuration.
func (c *Client) CreateWatch(ctx context.Context, spec *domain.WatchSpec) (*handlers.WatchView, error) {
	var created handlers.WatchView
	if err := c.post(ctx, "/api/v1/watches", spec, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteWatch deletes a watch by ID.
func (c *Client) DeleteWatch(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/watches/"+url.PathEscape(id))
}

// ListMedicine returns one page of medicine searches.
func (c *Client) ListMedicine(ctx context.Context, p *ListParams) (*MedicineList, error) {
	var out MedicineList
	if err := c.get(ctx, "/api/v1/medicine-searches"+p.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetMedicine returns a single medicine search by ID.
func (c *Client) GetMedicine(ctx context.Context, id string) (*handlers.MedicineView, error) {
	var m handlers.MedicineView
	if err := c.get(ctx, "/api/v1/medicine-searches/"+url.PathEscape(id), &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// CreateMedicine creates a medicine search from its configuration.
func (c *Client) CreateMedicine(ctx context.Context, spec *domain.MedicineSpec) (*handlers.MedicineView, error) {
	var created handlers.MedicineView
	if err := c.post(ctx, "/api/v1/medicine-searches", spec, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// DeleteMedicine deletes a medicine search by ID.
func (c *Client) DeleteMedicine(ctx context.Context, id string) error {
	return c.del(ctx, "/api/v1/medicine-searches/"+url.PathEscape(id))
}

// SetActive activates or deactivates a search of either kind.
func (c *Client) SetActive(ctx context.Context, id string, active bool) error {
	body := map[string]bool{"active": active}
	return c.put(ctx, "/api/v1/searches/"+url.PathEscape(id)+"/active", body, nil)
}
