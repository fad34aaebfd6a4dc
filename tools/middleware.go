package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/opsbridge/netbox-mcp/core"
)

// Middleware wraps a HandlerFunc to add behavior before and/or after
// execution. Middleware functions receive the next handler in the
// chain and return a new handler.
type Middleware func(next HandlerFunc) HandlerFunc

// Chain combines multiple middleware into a single middleware.
// Middleware are executed in the order provided (first middleware is
// outermost).
func Chain(middlewares ...Middleware) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		// Apply in reverse order so the first middleware is outermost.
		for i := len(middlewares) - 1; i >= 0; i-- {
			next = middlewares[i](next)
		}
		return next
	}
}

// Apply wraps a tool with middleware.
// Returns a new tool that executes middleware around the original.
func Apply(tool Tool, middlewares ...Middleware) Tool {
	if len(middlewares) == 0 {
		return tool
	}

	return &wrappedTool{
		tool:    tool,
		wrapped: Chain(middlewares...)(tool.Call),
	}
}

// wrappedTool is a tool with middleware applied.
type wrappedTool struct {
	tool    Tool
	wrapped HandlerFunc
}

func (w *wrappedTool) Name() string        { return w.tool.Name() }
func (w *wrappedTool) Description() string { return w.tool.Description() }
func (w *wrappedTool) Schema() ToolSchema  { return w.tool.Schema() }

func (w *wrappedTool) Call(ctx context.Context, args json.RawMessage) core.Result {
	return w.wrapped(ctx, args)
}

// WithTimeout creates middleware that enforces a timeout on tool
// execution. A call that outlives the deadline reports the timeout in
// its envelope; the abandoned handler keeps its context cancellation.
func WithTimeout(d time.Duration) Middleware {
	return func(next HandlerFunc) HandlerFunc {
		return func(ctx context.Context, args json.RawMessage) core.Result {
			ctx, cancel := context.WithTimeout(ctx, d)
			defer cancel()

			// Execute in goroutine to respect timeout.
			ch := make(chan core.Result, 1)
			go func() {
				ch <- next(ctx, args)
			}()

			select {
			case r := <-ch:
				return r
			case <-ctx.Done():
				return core.Failf("tool execution timeout after %v", d)
			}
		}
	}
}
