// Package tools defines the contract boundary for AI-callable
// operations: the Tool interface, a concurrent registry, and
// middleware for cross-cutting call behavior.
package tools

import (
	"context"
	"encoding/json"

	"github.com/opsbridge/netbox-mcp/core"
)

// Tool is an independently invocable operation with a declared input
// schema.
//
// Call returns the uniform envelope. Implementations must fold every
// failure into it; returning a Result rather than (any, error) makes
// the "no error crosses the tool boundary" rule a compile-time
// property instead of a convention.
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description of what this
	// tool does. It is provided to the AI model to help it decide when
	// to use the tool.
	Description() string

	// Schema returns the JSON Schema that describes the tool's
	// parameters.
	Schema() ToolSchema

	// Call executes the tool with the given arguments. The args
	// parameter contains the raw JSON arguments from the model.
	Call(ctx context.Context, args json.RawMessage) core.Result
}

// ToolSchema describes the parameters a tool accepts.
// JSONSchema must be a valid JSON Schema object.
type ToolSchema struct {
	JSONSchema json.RawMessage `json:"json_schema"`
}

// HandlerFunc is the function signature for tool execution.
type HandlerFunc func(ctx context.Context, args json.RawMessage) core.Result

// Func builds a Tool from a name, description, schema, and handler.
func Func(name, description string, schema json.RawMessage, fn HandlerFunc) Tool {
	return &funcTool{
		name:        name,
		description: description,
		schema:      ToolSchema{JSONSchema: schema},
		fn:          fn,
	}
}

type funcTool struct {
	name        string
	description string
	schema      ToolSchema
	fn          HandlerFunc
}

func (t *funcTool) Name() string        { return t.name }
func (t *funcTool) Description() string { return t.description }
func (t *funcTool) Schema() ToolSchema  { return t.schema }

func (t *funcTool) Call(ctx context.Context, args json.RawMessage) core.Result {
	return t.fn(ctx, args)
}
