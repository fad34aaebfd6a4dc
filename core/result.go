// Package core defines the types shared by every tool operation: the
// success/error envelope, the error taxonomy, and the request
// telemetry hooks.
package core

import "fmt"

// Result is the uniform envelope returned by every tool operation.
// Exactly one of Data or Error is meaningful, selected by Success.
// Handlers fold every failure into a Result; no error crosses the
// tool boundary.
type Result struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// OK wraps a payload in a successful Result.
func OK(data any) Result {
	return Result{Success: true, Data: data}
}

// Fail wraps an error in a failed Result.
func Fail(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// Failf builds a failed Result from a format string.
func Failf(format string, v ...any) Result {
	return Result{Success: false, Error: fmt.Sprintf(format, v...)}
}
