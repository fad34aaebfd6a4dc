package core

import (
	"errors"
	"fmt"
)

// APIError represents a non-success answer from the NetBox API with
// full context. The wrapped sentinel classifies the failure for
// errors.Is checks.
type APIError struct {
	Status  int
	Message string
	Err     error
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("netbox: %s (status=%d)", e.Message, e.Status)
	}
	return fmt.Sprintf("netbox: %s", e.Message)
}

// Unwrap returns the classification sentinel for error chaining.
func (e *APIError) Unwrap() error {
	return e.Err
}

// Sentinel errors for classification.
var (
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
	ErrRateLimited  = errors.New("rate limited")
	ErrServer       = errors.New("server error")
	ErrNetwork      = errors.New("network error")
	ErrDecode       = errors.New("decode error")
)
