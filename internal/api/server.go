// Package api assembles the medwatch HTTP server: Echo with the request
// middleware, the Huma-described /api/v1 operations, health probes and the
// Prometheus endpoint.
package api

import (
	"log/slog"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/donaldgifford/medwatch/internal/api/handlers"
	"github.com/donaldgifford/medwatch/internal/api/middleware"
	"github.com/donaldgifford/medwatch/internal/store"
)

// Deps are the collaborators the handlers need.
type Deps struct {
	Store        store.Store
	Fingerprints store.FingerprintStore
	Evaluator    handlers.Evaluator
	Cycler       handlers.Cycler
	// Ready lists the dependencies /readyz pings, by name.
	Ready map[string]handlers.Pinger
}

// NewServer builds the Echo instance with every route registered.
func NewServer(log *slog.Logger, version string, deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(log))
	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(deps.Ready)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("medwatch", version))

	handlers.RegisterSearchRoutes(api, handlers.NewSearchesHandler(deps.Store, deps.Fingerprints, log))
	handlers.RegisterExclusionRoutes(api)
	handlers.RegisterEvaluateRoutes(api, handlers.NewEvaluateHandler(deps.Evaluator, deps.Cycler))

	return e
}
