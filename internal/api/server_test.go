package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/medwatch/internal/api/handlers"
	"github.com/donaldgifford/medwatch/internal/engine"
	storeMocks "github.com/donaldgifford/medwatch/internal/store/mocks"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

type stubCycler struct{}

func (stubCycler) RunCycle(context.Context) (*engine.CycleReport, error) {
	return &engine.CycleReport{}, nil
}

func (stubCycler) DryRun(context.Context, string, []domain.RawListing) (*engine.Evaluation, error) {
	return nil, errors.New("not used")
}

func newTestServer(t *testing.T) (*httptest.Server, *storeMocks.MockStore) {
	t.Helper()

	ms := storeMocks.NewMockStore(t)
	mf := storeMocks.NewMockFingerprintStore(t)

	e := NewServer(slog.New(slog.NewTextHandler(io.Discard, nil)), "test", Deps{
		Store:        ms,
		Fingerprints: mf,
		Evaluator:    stubCycler{},
		Cycler:       stubCycler{},
		Ready:        map[string]handlers.Pinger{"database": ms},
	})

	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv, ms
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()

	resp, err := http.Get(url) //nolint:noctx // test helper
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestNewServer_Probes(t *testing.T) {
	t.Parallel()

	srv, ms := newTestServer(t)
	ms.EXPECT().Ping(mock.Anything).Return(nil).Once()

	code, body := get(t, srv.URL+"/healthz")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ok"}`, body)

	code, body = get(t, srv.URL+"/readyz")
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"status":"ready"}`, body)
}

func TestNewServer_Metrics(t *testing.T) {
	t.Parallel()

	srv, _ := newTestServer(t)

	code, body := get(t, srv.URL+"/healthz")
	require.Equal(t, http.StatusOK, code)

	code, body = get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "medwatch_healthz_up")
}

func TestNewServer_APIRoutes(t *testing.T) {
	t.Parallel()

	srv, ms := newTestServer(t)
	ms.EXPECT().GetWatch(mock.Anything, "missing").Return(nil, domain.ErrSearchNotFound).Once()

	code, body := get(t, srv.URL+"/api/v1/watches/missing")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Contains(t, body, "search not found")

	resp, err := http.Post(srv.URL+"/api/v1/cycle", "application/json", strings.NewReader("")) //nolint:noctx // test helper
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	code, body = get(t, srv.URL+"/openapi.json")
	assert.Equal(t, http.StatusOK, code)
	assert.Contains(t, body, "validate-exclusions")
}
