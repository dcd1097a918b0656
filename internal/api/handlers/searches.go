package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/medwatch/internal/store"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// SearchesHandler manages watches and medicine searches.
type SearchesHandler struct {
	store        store.Store
	fingerprints store.FingerprintStore
	log          *slog.Logger
	now          func() time.Time
}

// NewSearchesHandler creates a new SearchesHandler. Deleting a search also
// clears its fingerprints in fps.
func NewSearchesHandler(s store.Store, fps store.FingerprintStore, log *slog.Logger) *SearchesHandler {
	return &SearchesHandler{store: s, fingerprints: fps, log: log, now: time.Now}
}

// --- Input/Output types ---

// WatchView is a watch as the API returns it.
type WatchView struct {
	domain.WatchSpec
	Status       domain.WatchStatus `json:"status"                   doc:"Date window status: active, inactive or expired"`
	LastSearchAt *time.Time         `json:"last_search_at,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

// MedicineView is a medicine search as the API returns it.
type MedicineView struct {
	domain.MedicineSpec
	LastSearchAt *time.Time `json:"last_search_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// WatchBodyInput carries a watch configuration.
type WatchBodyInput struct {
	Body domain.WatchSpec
}

// UpdateWatchInput carries a watch configuration for an existing id.
type UpdateWatchInput struct {
	ID   string `path:"id" doc:"Watch UUID"`
	Body domain.WatchSpec
}

// WatchOutput returns a single watch.
type WatchOutput struct {
	Body WatchView
}

// ListWatchesInput is the input for listing watches with optional filters.
type ListWatchesInput struct {
	RegionID int64  `query:"region_id" doc:"Filter by region id"                 minimum:"0"`
	Active   string `query:"active"    doc:"Filter by active flag"              enum:"true,false,"`
	AutoBook string `query:"auto_book" doc:"Filter by auto-book flag"           enum:"true,false,"`
	Account  string `query:"account"   doc:"Filter by account"`
	Limit    int    `query:"limit"     doc:"Number of results (default 50)"     minimum:"0" maximum:"500"`
	Offset   int    `query:"offset"    doc:"Pagination offset"                  minimum:"0"`
	OrderBy  string `query:"order_by"  doc:"Sort field"                         enum:"created_at,start_date,"`
}

// ListWatchesOutput is the response for listing watches.
type ListWatchesOutput struct {
	Body struct {
		Watches []WatchView `json:"watches"`
		Total   int         `json:"total"`
		Limit   int         `json:"limit"`
		Offset  int         `json:"offset"`
	}
}

// MedicineBodyInput carries a medicine search configuration.
type MedicineBodyInput struct {
	Body domain.MedicineSpec
}

// UpdateMedicineInput carries a medicine search configuration for an
// existing id.
type UpdateMedicineInput struct {
	ID   string `path:"id" doc:"Medicine search UUID"`
	Body domain.MedicineSpec
}

// MedicineOutput returns a single medicine search.
type MedicineOutput struct {
	Body MedicineView
}

// ListMedicineInput is the input for listing medicine searches.
type ListMedicineInput struct {
	Name     string `query:"name"     doc:"Case-insensitive name substring"`
	Location string `query:"location" doc:"Filter by location"`
	Active   string `query:"active"   doc:"Filter by active flag"          enum:"true,false,"`
	Limit    int    `query:"limit"    doc:"Number of results (default 50)" minimum:"0" maximum:"500"`
	Offset   int    `query:"offset"   doc:"Pagination offset"              minimum:"0"`
	OrderBy  string `query:"order_by" doc:"Sort field"                     enum:"created_at,name,last_search_at,"`
}

// ListMedicineOutput is the response for listing medicine searches.
type ListMedicineOutput struct {
	Body struct {
		Searches []MedicineView `json:"searches"`
		Total    int            `json:"total"`
		Limit    int            `json:"limit"`
		Offset   int            `json:"offset"`
	}
}

// IDInput addresses a search by id.
type IDInput struct {
	ID string `path:"id" doc:"Search UUID"`
}

// SetActiveInput toggles a search.
type SetActiveInput struct {
	ID   string `path:"id" doc:"Search UUID"`
	Body struct {
		Active bool `json:"active" doc:"Whether the search is evaluated in cycles"`
	}
}

// StatusOutput is a generic status response.
type StatusOutput struct {
	Body StatusResponse
}

// --- Watch handlers ---

// CreateWatch validates and stores a new watch.
func (h *SearchesHandler) CreateWatch(ctx context.Context, in *WatchBodyInput) (*WatchOutput, error) {
	spec := in.Body
	spec.ID = ""
	w, err := domain.NewWatch(spec)
	if err != nil {
		return nil, toHTTPError("invalid watch", err)
	}

	if err := h.store.CreateWatch(ctx, w); err != nil {
		return nil, toHTTPError("creating watch", err)
	}

	h.log.Info("watch created", "search_id", w.ID, "region_id", w.RegionID)
	return &WatchOutput{Body: h.watchView(w)}, nil
}

// GetWatch returns a single watch.
func (h *SearchesHandler) GetWatch(ctx context.Context, in *IDInput) (*WatchOutput, error) {
	w, err := h.store.GetWatch(ctx, in.ID)
	if err != nil {
		return nil, toHTTPError("getting watch", err)
	}
	return &WatchOutput{Body: h.watchView(w)}, nil
}

// ListWatches returns watches with optional filters and pagination.
func (h *SearchesHandler) ListWatches(ctx context.Context, in *ListWatchesInput) (*ListWatchesOutput, error) {
	q := &store.WatchQuery{
		Limit:   in.Limit,
		Offset:  in.Offset,
		OrderBy: in.OrderBy,
		Active:  parseBoolFilter(in.Active),
	}
	if in.RegionID != 0 {
		q.RegionID = &in.RegionID
	}
	q.AutoBook = parseBoolFilter(in.AutoBook)
	if in.Account != "" {
		q.Account = &in.Account
	}

	watches, total, err := h.store.ListWatches(ctx, q)
	if err != nil {
		return nil, toHTTPError("listing watches", err)
	}

	resp := &ListWatchesOutput{}
	resp.Body.Watches = make([]WatchView, len(watches))
	for i := range watches {
		resp.Body.Watches[i] = h.watchView(&watches[i])
	}
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// UpdateWatch replaces the configuration of an existing watch.
func (h *SearchesHandler) UpdateWatch(ctx context.Context, in *UpdateWatchInput) (*WatchOutput, error) {
	spec := in.Body
	spec.ID = in.ID
	w, err := domain.NewWatch(spec)
	if err != nil {
		return nil, toHTTPError("invalid watch", err)
	}

	if err := h.store.UpdateWatch(ctx, w); err != nil {
		return nil, toHTTPError("updating watch", err)
	}
	return &WatchOutput{Body: h.watchView(w)}, nil
}

// DeleteWatch removes a watch and its fingerprints.
func (h *SearchesHandler) DeleteWatch(ctx context.Context, in *IDInput) (*struct{}, error) {
	if err := h.store.DeleteWatch(ctx, in.ID); err != nil {
		return nil, toHTTPError("deleting watch", err)
	}
	h.clearFingerprints(ctx, in.ID)
	return nil, nil
}

// --- Medicine handlers ---

// CreateMedicine validates and stores a new medicine search.
func (h *SearchesHandler) CreateMedicine(ctx context.Context, in *MedicineBodyInput) (*MedicineOutput, error) {
	spec := in.Body
	spec.ID = ""
	m, err := domain.NewMedicineSearch(spec)
	if err != nil {
		return nil, toHTTPError("invalid medicine search", err)
	}

	if err := h.store.CreateMedicineSearch(ctx, m); err != nil {
		return nil, toHTTPError("creating medicine search", err)
	}

	h.log.Info("medicine search created", "search_id", m.ID, "name", m.FullName())
	return &MedicineOutput{Body: medicineView(m)}, nil
}

// GetMedicine returns a single medicine search.
func (h *SearchesHandler) GetMedicine(ctx context.Context, in *IDInput) (*MedicineOutput, error) {
	m, err := h.store.GetMedicineSearch(ctx, in.ID)
	if err != nil {
		return nil, toHTTPError("getting medicine search", err)
	}
	return &MedicineOutput{Body: medicineView(m)}, nil
}

// ListMedicine returns medicine searches with optional filters.
func (h *SearchesHandler) ListMedicine(ctx context.Context, in *ListMedicineInput) (*ListMedicineOutput, error) {
	q := &store.MedicineQuery{
		Limit:   in.Limit,
		Offset:  in.Offset,
		OrderBy: in.OrderBy,
		Active:  parseBoolFilter(in.Active),
	}
	if in.Name != "" {
		q.Name = &in.Name
	}
	if in.Location != "" {
		q.Location = &in.Location
	}

	searches, total, err := h.store.ListMedicineSearches(ctx, q)
	if err != nil {
		return nil, toHTTPError("listing medicine searches", err)
	}

	resp := &ListMedicineOutput{}
	resp.Body.Searches = make([]MedicineView, len(searches))
	for i := range searches {
		resp.Body.Searches[i] = medicineView(&searches[i])
	}
	resp.Body.Total = total
	resp.Body.Limit = q.Limit
	resp.Body.Offset = q.Offset
	return resp, nil
}

// UpdateMedicine replaces the configuration of an existing medicine search.
func (h *SearchesHandler) UpdateMedicine(ctx context.Context, in *UpdateMedicineInput) (*MedicineOutput, error) {
	spec := in.Body
	spec.ID = in.ID
	m, err := domain.NewMedicineSearch(spec)
	if err != nil {
		return nil, toHTTPError("invalid medicine search", err)
	}

	if err := h.store.UpdateMedicineSearch(ctx, m); err != nil {
		return nil, toHTTPError("updating medicine search", err)
	}
	return &MedicineOutput{Body: medicineView(m)}, nil
}

// DeleteMedicine removes a medicine search and its fingerprints.
func (h *SearchesHandler) DeleteMedicine(ctx context.Context, in *IDInput) (*struct{}, error) {
	if err := h.store.DeleteMedicineSearch(ctx, in.ID); err != nil {
		return nil, toHTTPError("deleting medicine search", err)
	}
	h.clearFingerprints(ctx, in.ID)
	return nil, nil
}

// --- Either kind ---

// SetActive activates or deactivates a search of either kind.
func (h *SearchesHandler) SetActive(ctx context.Context, in *SetActiveInput) (*StatusOutput, error) {
	if err := h.store.SetSearchActive(ctx, in.ID, in.Body.Active); err != nil {
		return nil, toHTTPError("setting search active", err)
	}
	return &StatusOutput{Body: StatusResponse{Status: "active=" + strconv.FormatBool(in.Body.Active)}}, nil
}

func (h *SearchesHandler) clearFingerprints(ctx context.Context, id string) {
	if err := h.fingerprints.ClearFingerprints(ctx, id); err != nil {
		h.log.Warn("clearing fingerprints of deleted search failed", "search_id", id, "error", err)
	}
}

func (h *SearchesHandler) watchView(w *domain.Watch) WatchView {
	return WatchView{
		WatchSpec:    w.Spec(),
		Status:       w.Status(h.now()),
		LastSearchAt: w.LastSearchAt,
		CreatedAt:    w.CreatedAt,
		UpdatedAt:    w.UpdatedAt,
	}
}

func medicineView(m *domain.MedicineSearch) MedicineView {
	return MedicineView{
		MedicineSpec: m.Spec(),
		LastSearchAt: m.LastSearchAt,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func parseBoolFilter(s string) *bool {
	if s == "" {
		return nil
	}
	b := s == "true"
	return &b
}

// RegisterSearchRoutes registers search management endpoints with the Huma API.
func RegisterSearchRoutes(api huma.API, h *SearchesHandler) {
	const (
		watchTag    = "watches"
		medicineTag = "medicine"
	)

	huma.Register(api, huma.Operation{
		OperationID:   "create-watch",
		Method:        http.MethodPost,
		Path:          "/api/v1/watches",
		Summary:       "Create a watch",
		Description:   "Validates and stores an appointment watch.",
		Tags:          []string{watchTag},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.CreateWatch)

	huma.Register(api, huma.Operation{
		OperationID: "list-watches",
		Method:      http.MethodGet,
		Path:        "/api/v1/watches",
		Summary:     "List watches",
		Tags:        []string{watchTag},
	}, h.ListWatches)

	huma.Register(api, huma.Operation{
		OperationID: "get-watch",
		Method:      http.MethodGet,
		Path:        "/api/v1/watches/{id}",
		Summary:     "Get a watch by ID",
		Tags:        []string{watchTag},
		Errors:      []int{http.StatusNotFound},
	}, h.GetWatch)

	huma.Register(api, huma.Operation{
		OperationID: "update-watch",
		Method:      http.MethodPut,
		Path:        "/api/v1/watches/{id}",
		Summary:     "Update a watch",
		Tags:        []string{watchTag},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.UpdateWatch)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-watch",
		Method:        http.MethodDelete,
		Path:          "/api/v1/watches/{id}",
		Summary:       "Delete a watch",
		Tags:          []string{watchTag},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteWatch)

	huma.Register(api, huma.Operation{
		OperationID:   "create-medicine-search",
		Method:        http.MethodPost,
		Path:          "/api/v1/medicine-searches",
		Summary:       "Create a medicine search",
		Description:   "Validates and stores a pharmacy availability search.",
		Tags:          []string{medicineTag},
		DefaultStatus: http.StatusCreated,
		Errors:        []int{http.StatusBadRequest, http.StatusInternalServerError},
	}, h.CreateMedicine)

	huma.Register(api, huma.Operation{
		OperationID: "list-medicine-searches",
		Method:      http.MethodGet,
		Path:        "/api/v1/medicine-searches",
		Summary:     "List medicine searches",
		Tags:        []string{medicineTag},
	}, h.ListMedicine)

	huma.Register(api, huma.Operation{
		OperationID: "get-medicine-search",
		Method:      http.MethodGet,
		Path:        "/api/v1/medicine-searches/{id}",
		Summary:     "Get a medicine search by ID",
		Tags:        []string{medicineTag},
		Errors:      []int{http.StatusNotFound},
	}, h.GetMedicine)

	huma.Register(api, huma.Operation{
		OperationID: "update-medicine-search",
		Method:      http.MethodPut,
		Path:        "/api/v1/medicine-searches/{id}",
		Summary:     "Update a medicine search",
		Tags:        []string{medicineTag},
		Errors:      []int{http.StatusBadRequest, http.StatusNotFound},
	}, h.UpdateMedicine)

	huma.Register(api, huma.Operation{
		OperationID:   "delete-medicine-search",
		Method:        http.MethodDelete,
		Path:          "/api/v1/medicine-searches/{id}",
		Summary:       "Delete a medicine search",
		Tags:          []string{medicineTag},
		DefaultStatus: http.StatusNoContent,
		Errors:        []int{http.StatusNotFound},
	}, h.DeleteMedicine)

	huma.Register(api, huma.Operation{
		OperationID: "set-search-active",
		Method:      http.MethodPut,
		Path:        "/api/v1/searches/{id}/active",
		Summary:     "Activate or deactivate a search",
		Tags:        []string{"searches"},
		Errors:      []int{http.StatusNotFound},
	}, h.SetActive)
}
