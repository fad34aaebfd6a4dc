package netbox

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"

	"github.com/opsbridge/netbox-mcp/core"
)

// normalizeError converts a non-success HTTP response to an APIError
// with the appropriate sentinel.
func normalizeError(status int, body []byte) error {
	message := extractMessage(body)
	if message == "" {
		message = http.StatusText(status)
	}
	return &core.APIError{
		Status:  status,
		Message: message,
		Err:     sentinelForStatus(status),
	}
}

// extractMessage pulls a human-readable message out of a NetBox error
// body. NetBox answers either {"detail": "..."} or, for validation
// rejections, {"field": ["problem", ...], ...}.
func extractMessage(body []byte) string {
	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	var fields map[string][]string
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		parts := make([]string, 0, len(fields))
		for field, problems := range fields {
			parts = append(parts, field+": "+strings.Join(problems, "; "))
		}
		sort.Strings(parts)
		return strings.Join(parts, ", ")
	}

	return ""
}

// sentinelForStatus maps an HTTP status code to a core sentinel error.
func sentinelForStatus(status int) error {
	switch {
	case status == http.StatusBadRequest:
		return core.ErrBadRequest
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return core.ErrUnauthorized
	case status == http.StatusNotFound:
		return core.ErrNotFound
	case status == http.StatusTooManyRequests:
		return core.ErrRateLimited
	case status >= 500:
		return core.ErrServer
	default:
		return core.ErrBadRequest
	}
}

// newNetworkError wraps transport failures.
func newNetworkError(err error) error {
	return &core.APIError{Message: err.Error(), Err: core.ErrNetwork}
}

// newDecodeError wraps encode/decode failures.
func newDecodeError(err error) error {
	return &core.APIError{Message: err.Error(), Err: core.ErrDecode}
}
