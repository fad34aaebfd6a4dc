package core

import (
	"log/slog"
	"time"
)

// TelemetryHook receives notifications about API request lifecycle
// events. Implementations can use this for logging, metrics, tracing.
//
// Event types never include sensitive data: the API token is not
// exposed, and neither are request or response bodies. Only
// operational metadata (method, endpoint path, timing, status) is
// carried, so telemetry output is safe to log or ship elsewhere.
type TelemetryHook interface {
	// OnRequestStart is called when a request to the API begins.
	OnRequestStart(e RequestStartEvent)

	// OnRequestEnd is called when a request to the API completes.
	OnRequestEnd(e RequestEndEvent)
}

// RequestStartEvent contains metadata about a starting request.
type RequestStartEvent struct {
	Method   string    // HTTP method
	Endpoint string    // API path, e.g. /api/dcim/sites/
	Start    time.Time // When the request started
}

// RequestEndEvent contains metadata about a completed request.
type RequestEndEvent struct {
	Method   string    // HTTP method
	Endpoint string    // API path
	Status   int       // HTTP status, 0 when the request never completed
	Start    time.Time // When the request started
	End      time.Time // When the request completed
	Err      error     // Error if the request failed, nil on success
}

// Duration returns the elapsed time for the request.
func (e RequestEndEvent) Duration() time.Duration {
	return e.End.Sub(e.Start)
}

// NoopTelemetryHook is a no-op implementation of TelemetryHook.
// Use this as a default when no telemetry is configured.
type NoopTelemetryHook struct{}

// OnRequestStart does nothing.
func (NoopTelemetryHook) OnRequestStart(RequestStartEvent) {}

// OnRequestEnd does nothing.
func (NoopTelemetryHook) OnRequestEnd(RequestEndEvent) {}

// Compile-time check that NoopTelemetryHook implements TelemetryHook.
var _ TelemetryHook = NoopTelemetryHook{}

// LogHook is a TelemetryHook that writes request events to a
// slog.Logger. Starts log at debug level, completions at info, and
// failures at error.
type LogHook struct {
	Logger *slog.Logger
}

// OnRequestStart logs the outgoing request at debug level.
func (h LogHook) OnRequestStart(e RequestStartEvent) {
	h.Logger.Debug("netbox request", "method", e.Method, "endpoint", e.Endpoint)
}

// OnRequestEnd logs the completed request with status and duration.
func (h LogHook) OnRequestEnd(e RequestEndEvent) {
	if e.Err != nil {
		h.Logger.Error("netbox request failed",
			"method", e.Method, "endpoint", e.Endpoint,
			"status", e.Status, "duration", e.Duration(), "error", e.Err)
		return
	}
	h.Logger.Info("netbox request done",
		"method", e.Method, "endpoint", e.Endpoint,
		"status", e.Status, "duration", e.Duration())
}

// Compile-time check that LogHook implements TelemetryHook.
var _ TelemetryHook = LogHook{}
