package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/donaldgifford/medwatch/internal/engine"
	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// Evaluator evaluates posted listings against a stored search without side
// effects.
type Evaluator interface {
	DryRun(ctx context.Context, id string, raws []domain.RawListing) (*engine.Evaluation, error)
}

// Cycler runs one poll cycle on demand.
type Cycler interface {
	RunCycle(ctx context.Context) (*engine.CycleReport, error)
}

// EvaluateHandler serves dry-run evaluation and manual cycles.
type EvaluateHandler struct {
	evaluator Evaluator
	cycler    Cycler
}

// NewEvaluateHandler creates a new EvaluateHandler.
func NewEvaluateHandler(ev Evaluator, c Cycler) *EvaluateHandler {
	return &EvaluateHandler{evaluator: ev, cycler: c}
}

// --- Input/Output types ---

// EvaluateInput carries listings to evaluate against a stored search.
type EvaluateInput struct {
	ID   string `path:"id" doc:"Search UUID"`
	Body struct {
		Listings []domain.RawListing `json:"listings" doc:"Raw listings as the collector returns them"`
	}
}

// RecordView summarizes a normalized record.
type RecordView struct {
	Kind         domain.ListingKind `json:"kind"`
	PharmacyName string             `json:"pharmacy_name,omitempty"`
	AddressKey   string             `json:"address_key,omitempty"`
	PostalCode   string             `json:"postal_code,omitempty"`
	Phone        string             `json:"phone,omitempty"`
	PriceFull    string             `json:"price_full,omitempty"`
	Availability string             `json:"availability,omitempty"`
	ClinicID     int64              `json:"clinic_id,omitempty"`
	DoctorID     int64              `json:"doctor_id,omitempty"`
	DateTime     *time.Time         `json:"date_time,omitempty"`
	Ambiguities  []string           `json:"ambiguities,omitempty" doc:"Fields that could not be parsed"`
}

// DecisionView is one decision of an evaluation.
type DecisionView struct {
	Action      domain.Action `json:"action"`
	Reason      domain.Reason `json:"reason"`
	Fingerprint string        `json:"fingerprint,omitempty"`
	Record      RecordView    `json:"record"`
}

// EvaluateOutput is the decision list a cycle would produce.
type EvaluateOutput struct {
	Body struct {
		SearchID  string         `json:"search_id"`
		Decisions []DecisionView `json:"decisions"`
		Commit    int            `json:"commit" doc:"Fingerprints a real cycle would commit if every action succeeded"`
	}
}

// CycleOutput reports a manual cycle.
type CycleOutput struct {
	Body struct {
		engine.CycleReport
		Error string `json:"error,omitempty" doc:"Joined per-search failures"`
	}
}

// --- Handlers ---

// Evaluate runs the full evaluation pipeline over the posted listings.
// Nothing is notified, booked or committed.
func (h *EvaluateHandler) Evaluate(ctx context.Context, in *EvaluateInput) (*EvaluateOutput, error) {
	ev, err := h.evaluator.DryRun(ctx, in.ID, in.Body.Listings)
	if err != nil {
		return nil, toHTTPError("evaluating", err)
	}

	resp := &EvaluateOutput{}
	resp.Body.SearchID = in.ID
	resp.Body.Decisions = make([]DecisionView, len(ev.Outcome.Decisions))
	for i, d := range ev.Outcome.Decisions {
		resp.Body.Decisions[i] = DecisionView{
			Action:      d.Action,
			Reason:      d.Reason,
			Fingerprint: d.Fingerprint.Key,
			Record:      recordView(&d.Record),
		}
	}
	resp.Body.Commit = len(ev.Outcome.Commit)
	return resp, nil
}

// RunCycle runs one poll cycle synchronously. Per-search failures are
// reported in the body; only a cycle that could not start is an error.
func (h *EvaluateHandler) RunCycle(ctx context.Context, _ *struct{}) (*CycleOutput, error) {
	report, err := h.cycler.RunCycle(ctx)
	if report == nil {
		return nil, huma.Error500InternalServerError("cycle failed: " + err.Error())
	}

	resp := &CycleOutput{}
	resp.Body.CycleReport = *report
	if err != nil {
		resp.Body.Error = err.Error()
	}
	return resp, nil
}

func recordView(r *domain.CanonicalRecord) RecordView {
	v := RecordView{
		Kind:         r.Kind,
		PharmacyName: r.PharmacyName,
		AddressKey:   r.AddressKey,
		PostalCode:   r.PostalCode,
		Phone:        r.PhoneE164,
		ClinicID:     r.ClinicID,
		DoctorID:     r.DoctorID,
	}
	if r.Kind == domain.KindPharmacy {
		v.Availability = r.Availability.String()
	}
	if r.PriceFull.Valid {
		v.PriceFull = r.PriceFull.Decimal.StringFixed(2)
	}
	if !r.DateTime.IsZero() {
		t := r.DateTime
		v.DateTime = &t
	}
	for _, a := range r.Ambiguities {
		v.Ambiguities = append(v.Ambiguities, a.Field)
	}
	return v
}

// RegisterEvaluateRoutes registers dry-run and cycle endpoints.
func RegisterEvaluateRoutes(api huma.API, h *EvaluateHandler) {
	huma.Register(api, huma.Operation{
		OperationID: "evaluate-search",
		Method:      http.MethodPost,
		Path:        "/api/v1/searches/{id}/evaluate",
		Summary:     "Dry-run evaluation",
		Description: "Normalizes, matches and deduplicates the posted listings against the stored search " +
			"and its fingerprints, and returns the decisions. Nothing is executed or committed.",
		Tags:   []string{"searches"},
		Errors: []int{http.StatusNotFound, http.StatusInternalServerError},
	}, h.Evaluate)

	huma.Register(api, huma.Operation{
		OperationID: "run-cycle",
		Method:      http.MethodPost,
		Path:        "/api/v1/cycle",
		Summary:     "Run a poll cycle",
		Description: "Evaluates every active search once: fetch, evaluate, notify or book, commit.",
		Tags:        []string{"cycle"},
		Errors:      []int{http.StatusInternalServerError},
	}, h.RunCycle)
}
