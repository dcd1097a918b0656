// Package handlers implements the HTTP handlers of the medwatch API: search
// management, exclusion validation, dry-run evaluation, cycle triggering and
// health probes.
package handlers

// StatusResponse is a generic status response body.
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}
