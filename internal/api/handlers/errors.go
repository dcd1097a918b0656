package handlers

import (
	"errors"

	"github.com/danielgtaylor/huma/v2"

	domain "github.com/donaldgifford/medwatch/pkg/types"
)

// toHTTPError maps domain errors onto API status codes.
func toHTTPError(what string, err error) error {
	switch {
	case errors.Is(err, domain.ErrSearchNotFound):
		return huma.Error404NotFound(what + ": search not found")
	case errors.Is(err, domain.ErrConfiguration):
		return huma.Error400BadRequest(what + ": " + err.Error())
	default:
		return huma.Error500InternalServerError(what + " failed: " + err.Error())
	}
}
