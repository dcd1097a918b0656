package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// ValidateExclusionsInput carries an exclusion string to check.
type ValidateExclusionsInput struct {
	Body struct {
		Exclusions string `json:"exclusions" example:"doctor:12,34;clinic:7" doc:"Exclusion string to validate"`
	}
}

// ValidateExclusionsOutput reports whether the string parses. Canonical is
// the normalized form when it does; Error names the offending segment when
// it does not.
type ValidateExclusionsOutput struct {
	Body struct {
		Valid     bool   `json:"valid"`
		Canonical string `json:"canonical,omitempty"`
		Error     string `json:"error,omitempty"`
	}
}

// ValidateExclusions parses an exclusion string without storing anything.
func ValidateExclusions(_ context.Context, in *ValidateExclusionsInput) (*ValidateExclusionsOutput, error) {
	resp := &ValidateExclusionsOutput{}

	set, err := domain.ParseExclusionSet(in.Body.Exclusions)
	if err != nil {
		resp.Body.Error = err.Error()
		return resp, nil
	}

	resp.Body.Valid = true
	resp.Body.Canonical = set.String()
	return resp, nil
}

// RegisterExclusionRoutes registers the exclusion validation endpoint.
func RegisterExclusionRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "validate-exclusions",
		Method:      http.MethodPost,
		Path:        "/api/v1/exclusions/validate",
		Summary:     "Validate an exclusion string",
		Description: `Parses "category:id[,id...][;...]" with categories doctor and clinic.`,
		Tags:        []string{"searches"},
	}, ValidateExclusions)
}
