package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/medwatch/internal/api/handlers"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func TestClient_ConnectionRefused(t *testing.T) {
	t.Parallel()

	c := New("http://127.0.0.1:1") // nothing listening
	_, err := c.ListWatches(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API server not running")
}

func TestClient_HTTPError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		status       int
		body         string
		wantMsg      string
		wantNotFound bool
	}{
		{
			name:    "problem document",
			status:  http.StatusBadRequest,
			body:    `{"title":"Bad Request","status":400,"detail":"invalid watch: region_id: must be a positive id"}`,
			wantMsg: "API error (HTTP 400): invalid watch: region_id: must be a positive id",
		},
		{
			name:   "problem with validation errors",
			status: http.StatusUnprocessableEntity,
			body: `{"status":422,"detail":"validation failed",` +
				`"errors":[{"message":"expected required property name to be present","location":"body"}]}`,
			wantMsg: "validation failed; body: expected required property name to be present",
		},
		{
			name:         "not found",
			status:       http.StatusNotFound,
			body:         `{"status":404,"detail":"getting watch: search not found"}`,
			wantMsg:      "search not found",
			wantNotFound: true,
		},
		{
			name:    "plain body",
			status:  http.StatusBadGateway,
			body:    "upstream unavailable\n",
			wantMsg: "API error (HTTP 502): upstream unavailable",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})

			_, err := c.GetWatch(context.Background(), "w1")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
			assert.Equal(t, tt.wantNotFound, IsNotFound(err))
		})
	}
}

func TestClient_ListWatches(t *testing.T) {
	t.Parallel()

	active := true
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/watches", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("active"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(WatchList{
			Watches: []handlers.WatchView{{
				WatchSpec: domain.WatchSpec{ID: "w1", RegionID: 204},
				Status:    domain.WatchStatusActive,
			}},
			Total: 1,
			Limit: 20,
		})
	})

	result, err := c.ListWatches(context.Background(), &ListParams{Active: &active, Limit: 20})
	require.NoError(t, err)
	require.Len(t, result.Watches, 1)
	assert.Equal(t, "w1", result.Watches[0].ID)
	assert.Equal(t, int64(204), result.Watches[0].RegionID)
	assert.Equal(t, 1, result.Total)
}

func TestClient_CreateWatch(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var spec domain.WatchSpec
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&spec))
		spec.ID = "w-created"

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(handlers.WatchView{WatchSpec: spec})
	})

	result, err := c.CreateWatch(context.Background(), &domain.WatchSpec{
		RegionID:    204,
		Specialties: []int64{9},
		Exclusions:  "doctor:1",
	})
	require.NoError(t, err)
	assert.Equal(t, "w-created", result.ID)
	assert.Equal(t, "doctor:1", result.Exclusions)
}

func TestClient_DeleteAndSetActive(t *testing.T) {
	t.Parallel()

	var (
		mu    sync.Mutex
		calls []string
	)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		if r.Method == http.MethodPut {
			var body map[string]bool
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]bool{"active": false}, body)
			_, _ = w.Write([]byte(`{"status":"active=false"}`))
			return
		}
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteMedicine(context.Background(), "m1"))
	require.NoError(t, c.SetActive(context.Background(), "w 1", false))

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{
		"DELETE /api/v1/medicine-searches/m1",
		"PUT /api/v1/searches/w 1/active",
	}, calls)
}

func TestClient_Evaluate(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/searches/m1/evaluate", r.URL.Path)

		var body struct {
			Listings []domain.RawListing `json:"listings"`
		}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Len(t, body.Listings, 2)

		_, _ = w.Write([]byte(`{"search_id":"m1","decisions":[{"action":"notify","reason":"matched",` +
			`"record":{"kind":"pharmacy"}}],"commit":1}`))
	})

	ev, err := c.Evaluate(context.Background(), "m1", []domain.RawListing{
		{Kind: domain.KindPharmacy},
		{Kind: domain.KindPharmacy},
	})
	require.NoError(t, err)
	require.Len(t, ev.Decisions, 1)
	assert.Equal(t, domain.ActionNotify, ev.Decisions[0].Action)
	assert.Equal(t, 1, ev.Commit)
}

func TestClient_RunCycle(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/cycle", r.URL.Path)
		_, _ = w.Write([]byte(`{"searches":3,"evaluated":2,"failed":1,"decisions":{"skip":4},"error":"search w2: boom"}`))
	})

	res, err := c.RunCycle(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Searches)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, 4, res.Decisions[domain.ActionSkip])
	assert.Equal(t, "search w2: boom", res.Error)
}

func TestClient_ValidateExclusions(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "doctor:2,1", body["exclusions"])
		_, _ = w.Write([]byte(`{"valid":true,"canonical":"doctor:1,2"}`))
	})

	res, err := c.ValidateExclusions(context.Background(), "doctor:2,1")
	require.NoError(t, err)
	assert.True(t, res.Valid)
	assert.Equal(t, "doctor:1,2", res.Canonical)
}
