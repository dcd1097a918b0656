package middleware

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLog returns Echo middleware that logs requests with structured
// fields. It generates a request ID if none is provided and propagates it
// through the response header and echo context. Server errors log at error
// level and client errors at warn. A successful probe is logged only when it
// follows a failure or is the first one; failed probes always log at warn.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	var probes probeState

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := c.Request().Header.Get(requestIDHeader)
			if reqID == "" {
				reqID = uuid.NewString()
			}

			c.Set("request_id", reqID)
			c.Response().Header().Set(requestIDHeader, reqID)

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			path := c.Request().URL.Path
			status := c.Response().Status

			level := slog.LevelInfo
			switch {
			case isProbe(path):
				ok := status < 400
				if changed := probes.changed(path, ok); ok && !changed {
					return nil
				}
				if !ok {
					level = slog.LevelWarn
				}
			case status >= 500:
				level = slog.LevelError
			case status >= 400:
				level = slog.LevelWarn
			}

			log.Log(c.Request().Context(), level, "request",
				"method", c.Request().Method,
				"path", path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			)

			return nil
		}
	}
}

// probeState remembers the last outcome per probe path.
type probeState struct {
	mu   sync.Mutex
	last map[string]bool
}

func (p *probeState) changed(path string, ok bool) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.last == nil {
		p.last = make(map[string]bool)
	}
	prev, seen := p.last[path]
	p.last[path] = ok
	return !seen || prev != ok
}

func isProbe(path string) bool {
	_, ok := probePaths[path]
	return ok
}
