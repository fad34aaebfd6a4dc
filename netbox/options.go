package netbox

import (
	"crypto/tls"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/opsbridge/netbox-mcp/core"
)

// DefaultTimeout bounds a single API request when no override is
// configured. Unbounded waits are a correctness risk, so the zero
// value is never "no timeout".
const DefaultTimeout = 30 * time.Second

// Config holds configuration for the REST client.
type Config struct {
	// BaseURL is the NetBox instance URL, without the /api suffix.
	BaseURL string

	// Token is the NetBox API token.
	Token string

	// HTTPClient is the HTTP client to use. When nil, one is built
	// from Timeout and InsecureSkipVerify. A custom client takes
	// precedence over both.
	HTTPClient *http.Client

	// Timeout is the per-request timeout applied to the built-in
	// HTTP client. Defaults to DefaultTimeout.
	Timeout time.Duration

	// InsecureSkipVerify disables TLS certificate verification.
	InsecureSkipVerify bool

	// Limiter optionally throttles outbound requests.
	Limiter *rate.Limiter

	// Telemetry receives request lifecycle events. Defaults to a noop.
	Telemetry core.TelemetryHook
}

// Option configures the REST client.
type Option func(*Config)

// WithHTTPClient sets a custom HTTP client. Timeout and TLS settings
// are then the caller's responsibility.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Config) {
		c.HTTPClient = client
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Config) {
		if d > 0 {
			c.Timeout = d
		}
	}
}

// WithInsecureTLS disables TLS certificate verification. Only for
// instances with self-signed certificates.
func WithInsecureTLS() Option {
	return func(c *Config) {
		c.InsecureSkipVerify = true
	}
}

// WithRateLimit throttles outbound requests to perMinute with the
// given burst. Zero or negative values disable the limiter.
func WithRateLimit(perMinute, burst int) Option {
	return func(c *Config) {
		if perMinute <= 0 {
			c.Limiter = nil
			return
		}
		if burst < 1 {
			burst = 1
		}
		c.Limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), burst)
	}
}

// WithTelemetry sets the hook receiving request lifecycle events.
func WithTelemetry(hook core.TelemetryHook) Option {
	return func(c *Config) {
		if hook != nil {
			c.Telemetry = hook
		}
	}
}

// newTransport clones the default transport, optionally disabling TLS
// verification.
func newTransport(insecure bool) http.RoundTripper {
	if !insecure {
		return http.DefaultTransport
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	return transport
}
