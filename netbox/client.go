// Package netbox implements the REST adapter for a NetBox instance.
//
// The Client interface is the CRUD contract against the NetBox object
// hierarchy; RESTClient implements it over HTTP. Callers address
// collections by their API endpoint name ("dcim/sites",
// "ipam/ip-addresses") and get back raw decoded objects. The adapter
// does not model NetBox's schema, it only normalizes transport
// concerns: URL construction, authentication, the results-page
// wrapper, and error classification.
package netbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/opsbridge/netbox-mcp/core"
)

// Object is a raw NetBox object as decoded from the API.
type Object = map[string]any

// Params carries query parameters for list and search requests.
// Values are stringified with fmt.Sprint when the query is built.
type Params map[string]any

// Client is the CRUD contract against the NetBox object hierarchy.
// RESTClient implements it over HTTP; alternative backends (an
// in-process store in tests, a future direct-database adapter)
// implement the same interface without changing callers.
type Client interface {
	// List retrieves the objects of a collection, always as a slice.
	List(ctx context.Context, endpoint string, params Params) ([]Object, error)

	// GetByID retrieves a single object by its numeric identifier.
	GetByID(ctx context.Context, endpoint string, id int, params Params) (Object, error)

	// Create adds a new object and returns it with its server-assigned id.
	Create(ctx context.Context, endpoint string, fields Object) (Object, error)

	// Update partially updates an object; only the supplied fields change.
	Update(ctx context.Context, endpoint string, id int, fields Object) (Object, error)

	// Delete removes an object. True only when the server reports
	// no-content success.
	Delete(ctx context.Context, endpoint string, id int) (bool, error)

	// BulkCreate adds a batch of objects in one request. Atomicity and
	// ordering are the server's business; the batch is forwarded as-is.
	BulkCreate(ctx context.Context, endpoint string, batch []Object) ([]Object, error)

	// BulkUpdate updates a batch of objects in one request.
	BulkUpdate(ctx context.Context, endpoint string, batch []Object) ([]Object, error)

	// BulkDelete removes a batch of objects by id. True only on
	// no-content success.
	BulkDelete(ctx context.Context, endpoint string, ids []int) (bool, error)
}

// RESTClient talks to the NetBox REST API.
// RESTClient is safe for concurrent use.
type RESTClient struct {
	config Config
}

// New creates a RESTClient for the given NetBox URL and API token.
func New(baseURL, token string, opts ...Option) *RESTClient {
	cfg := Config{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		Timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.Telemetry == nil {
		cfg.Telemetry = core.NoopTelemetryHook{}
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newTransport(cfg.InsecureSkipVerify),
		}
	}

	return &RESTClient{config: cfg}
}

// buildURL composes the API URL for an endpoint and optional object
// id. NetBox requires the trailing slash.
func (c *RESTClient) buildURL(endpoint string, id *int) string {
	endpoint = strings.Trim(endpoint, "/")
	if id != nil {
		return fmt.Sprintf("%s/api/%s/%d/", c.config.BaseURL, endpoint, *id)
	}
	return fmt.Sprintf("%s/api/%s/", c.config.BaseURL, endpoint)
}

// bulkURL addresses the fixed bulk sub-path of a collection.
func (c *RESTClient) bulkURL(endpoint string) string {
	return c.buildURL(endpoint, nil) + "bulk/"
}

// do performs one HTTP request and decodes the response into out (when
// out is non-nil and the body is non-empty). Returns the HTTP status
// alongside any error so callers can distinguish success variants.
func (c *RESTClient) do(ctx context.Context, method, rawURL string, params Params, body, out any) (int, error) {
	if c.config.Limiter != nil {
		if err := c.config.Limiter.Wait(ctx); err != nil {
			return 0, newNetworkError(err)
		}
	}

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return 0, newDecodeError(err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reader)
	if err != nil {
		return 0, newNetworkError(err)
	}
	if len(params) > 0 {
		req.URL.RawQuery = encodeParams(params)
	}

	req.Header.Set("Authorization", "Token "+c.config.Token)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	c.config.Telemetry.OnRequestStart(core.RequestStartEvent{
		Method:   method,
		Endpoint: req.URL.Path,
		Start:    start,
	})

	resp, err := c.config.HTTPClient.Do(req)
	if err != nil {
		netErr := newNetworkError(err)
		c.config.Telemetry.OnRequestEnd(core.RequestEndEvent{
			Method: method, Endpoint: req.URL.Path,
			Start: start, End: time.Now(), Err: netErr,
		})
		return 0, netErr
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, newNetworkError(err)
	}

	c.config.Telemetry.OnRequestEnd(core.RequestEndEvent{
		Method: method, Endpoint: req.URL.Path, Status: resp.StatusCode,
		Start: start, End: time.Now(),
	})

	if resp.StatusCode >= 400 {
		return resp.StatusCode, normalizeError(resp.StatusCode, respBody)
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return resp.StatusCode, newDecodeError(err)
		}
	}
	return resp.StatusCode, nil
}

// List retrieves objects from a collection. NetBox list endpoints wrap
// results in a {"results": [...]} page; a bare array is accepted too.
// Any other payload shape degrades to an empty slice rather than an
// error.
func (c *RESTClient) List(ctx context.Context, endpoint string, params Params) ([]Object, error) {
	var raw json.RawMessage
	if _, err := c.do(ctx, http.MethodGet, c.buildURL(endpoint, nil), params, nil, &raw); err != nil {
		return nil, err
	}
	return decodeList(raw), nil
}

// GetByID retrieves a single object by id.
func (c *RESTClient) GetByID(ctx context.Context, endpoint string, id int, params Params) (Object, error) {
	var obj Object
	if _, err := c.do(ctx, http.MethodGet, c.buildURL(endpoint, &id), params, nil, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Create adds a new object to a collection.
func (c *RESTClient) Create(ctx context.Context, endpoint string, fields Object) (Object, error) {
	var obj Object
	if _, err := c.do(ctx, http.MethodPost, c.buildURL(endpoint, nil), nil, fields, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Update partially updates an object via PATCH.
func (c *RESTClient) Update(ctx context.Context, endpoint string, id int, fields Object) (Object, error) {
	var obj Object
	if _, err := c.do(ctx, http.MethodPatch, c.buildURL(endpoint, &id), nil, fields, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Delete removes an object. The NetBox contract for success is 204
// No Content; any other 2xx reports false without an error.
func (c *RESTClient) Delete(ctx context.Context, endpoint string, id int) (bool, error) {
	status, err := c.do(ctx, http.MethodDelete, c.buildURL(endpoint, &id), nil, nil, nil)
	if err != nil {
		return false, err
	}
	return status == http.StatusNoContent, nil
}

// BulkCreate adds a batch of objects in one request.
func (c *RESTClient) BulkCreate(ctx context.Context, endpoint string, batch []Object) ([]Object, error) {
	var created []Object
	if _, err := c.do(ctx, http.MethodPost, c.bulkURL(endpoint), nil, batch, &created); err != nil {
		return nil, err
	}
	return created, nil
}

// BulkUpdate updates a batch of objects in one request. Each entry
// must carry its id.
func (c *RESTClient) BulkUpdate(ctx context.Context, endpoint string, batch []Object) ([]Object, error) {
	var updated []Object
	if _, err := c.do(ctx, http.MethodPatch, c.bulkURL(endpoint), nil, batch, &updated); err != nil {
		return nil, err
	}
	return updated, nil
}

// BulkDelete removes a batch of objects by id.
func (c *RESTClient) BulkDelete(ctx context.Context, endpoint string, ids []int) (bool, error) {
	batch := make([]Object, len(ids))
	for i, id := range ids {
		batch[i] = Object{"id": id}
	}
	status, err := c.do(ctx, http.MethodDelete, c.bulkURL(endpoint), nil, batch, nil)
	if err != nil {
		return false, err
	}
	return status == http.StatusNoContent, nil
}

// decodeList normalizes a list payload to a bare slice.
func decodeList(raw json.RawMessage) []Object {
	var page struct {
		Results []Object `json:"results"`
	}
	if err := json.Unmarshal(raw, &page); err == nil && page.Results != nil {
		return page.Results
	}

	var list []Object
	if err := json.Unmarshal(raw, &list); err == nil && list != nil {
		return list
	}

	return []Object{}
}

// encodeParams builds the query string. Values are stringified with
// fmt.Sprint so callers can pass ints and bools directly.
func encodeParams(params Params) string {
	q := url.Values{}
	for key, value := range params {
		q.Set(key, fmt.Sprint(value))
	}
	return q.Encode()
}

// Compile-time check that RESTClient implements Client.
var _ Client = (*RESTClient)(nil)
