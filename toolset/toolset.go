// Package toolset assembles the NetBox tool table: every callable
// operation, its input schema, and the handler binding it to the
// client.
//
// Handlers validate and default their arguments, issue exactly one
// call into the client (or a service layered on it), and wrap the raw
// outcome in the uniform envelope. Nothing here retries, caches, or
// paginates.
package toolset

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/opsbridge/netbox-mcp/netbox"
	"github.com/opsbridge/netbox-mcp/scripts"
	"github.com/opsbridge/netbox-mcp/tools"
)

// Parameter defaults observed by list-style reads.
const (
	defaultListLimit   = 50
	defaultSearchLimit = 25
)

// DefaultCallTimeout bounds a single tool call when no override is
// configured.
const DefaultCallTimeout = 60 * time.Second

// Config carries the collaborators the tool handlers need.
type Config struct {
	// Client is the NetBox client every handler calls (required).
	Client netbox.Client

	// Scripts overrides the script service. When nil, one is built
	// over Client.
	Scripts *scripts.Service

	// CallTimeout bounds each tool call. Zero means DefaultCallTimeout.
	CallTimeout time.Duration
}

// Register builds the full tool table and registers it.
func Register(reg *tools.Registry, cfg Config) error {
	if cfg.Scripts == nil {
		cfg.Scripts = scripts.NewService(cfg.Client)
	}
	timeout := cfg.CallTimeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}

	var all []tools.Tool
	all = append(all, dcimTools(cfg)...)
	all = append(all, ipamTools(cfg)...)
	all = append(all, objectTools(cfg)...)
	all = append(all, scriptTools(cfg)...)

	for _, t := range all {
		if err := reg.Register(tools.Apply(t, tools.WithTimeout(timeout))); err != nil {
			return err
		}
	}
	return nil
}

// decodeArgs unmarshals tool arguments into v. Empty arguments are an
// empty object.
func decodeArgs(args json.RawMessage, v any) error {
	if len(args) == 0 {
		return nil
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// queryParams merges named filters with a caller-supplied raw params
// map. Named values go in first and the raw map overlays them, so on
// a key collision the raw value wins.
func queryParams(limit int, named map[string]any, raw map[string]any) netbox.Params {
	params := netbox.Params{"limit": limit}
	for key, value := range named {
		params[key] = value
	}
	for key, value := range raw {
		params[key] = value
	}
	return params
}

// orDefault substitutes the default limit for absent or non-positive
// values.
func orDefault(limit, fallback int) int {
	if limit <= 0 {
		return fallback
	}
	return limit
}
