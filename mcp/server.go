// Package mcp serves a tool registry to Model Context Protocol clients
// over newline-delimited JSON-RPC 2.0 on a byte stream, typically
// stdio.
package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opsbridge/netbox-mcp/tools"
)

// maxLineBytes bounds a single incoming message. Tool arguments are
// small; anything past this is a protocol violation, not a payload.
const maxLineBytes = 4 << 20

// Server bridges an MCP client to a tool registry. One Server handles
// one client connection.
type Server struct {
	registry *tools.Registry
	name     string
	version  string
	logger   *slog.Logger
	session  string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger for request activity. The default
// discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server exposing the registry under the given
// server name and version.
func NewServer(registry *tools.Registry, name, version string, opts ...Option) *Server {
	s := &Server{
		registry: registry,
		name:     name,
		version:  version,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		session:  uuid.NewString(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Serve reads newline-delimited JSON-RPC messages from r and writes
// responses to w until r is exhausted or ctx is canceled. Notifications
// produce no response. A malformed line gets a parse-error response
// and the loop continues.
func (s *Server) Serve(ctx context.Context, r io.Reader, w io.Writer) error {
	s.logger.Info("mcp server ready", "session", s.session, "server", s.name)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var req request
		if err := json.Unmarshal(line, &req); err != nil {
			s.logger.Warn("unparseable message", "session", s.session, "err", err)
			if err := s.write(w, response{
				JSONRPC: "2.0",
				ID:      json.RawMessage("null"),
				Error:   &rpcError{Code: codeParseError, Message: "parse error"},
			}); err != nil {
				return err
			}
			continue
		}

		resp := s.handle(ctx, &req)
		if resp == nil {
			continue
		}
		if err := s.write(w, *resp); err != nil {
			return err
		}
	}
	return scanner.Err()
}

func (s *Server) write(w io.Writer, resp response) error {
	payload, err := json.Marshal(resp)
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	payload = append(payload, '\n')
	if _, err := w.Write(payload); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return nil
}

// handle dispatches one message. A nil return means no response goes
// out (notifications).
func (s *Server) handle(ctx context.Context, req *request) *response {
	notification := len(req.ID) == 0 || string(req.ID) == "null"

	var (
		result any
		rpcErr *rpcError
	)

	switch req.Method {
	case "initialize":
		result = initializeResult{
			ProtocolVersion: protocolVersion,
			Capabilities:    capabilities{Tools: toolsCapability{ListChanged: false}},
			ServerInfo:      serverInfo{Name: s.name, Version: s.version},
		}

	case "notifications/initialized":
		s.logger.Debug("client initialized", "session", s.session)
		return nil

	case "ping":
		result = struct{}{}

	case "tools/list":
		result = s.listTools()

	case "tools/call":
		result, rpcErr = s.callTool(ctx, req.Params)

	default:
		if notification {
			return nil
		}
		rpcErr = &rpcError{Code: codeMethodNotFound, Message: fmt.Sprintf("method %q not found", req.Method)}
	}

	if notification {
		return nil
	}
	return &response{JSONRPC: "2.0", ID: req.ID, Result: result, Error: rpcErr}
}

func (s *Server) listTools() listToolsResult {
	all := s.registry.List()
	descriptors := make([]toolDescriptor, 0, len(all))
	for _, t := range all {
		descriptors = append(descriptors, toolDescriptor{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: t.Schema().JSONSchema,
		})
	}
	return listToolsResult{Tools: descriptors}
}

func (s *Server) callTool(ctx context.Context, rawParams json.RawMessage) (any, *rpcError) {
	var params callParams
	if err := json.Unmarshal(rawParams, &params); err != nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: "invalid params"}
	}
	if params.Name == "" {
		return nil, &rpcError{Code: codeInvalidParams, Message: "missing tool name"}
	}

	result, err := s.registry.Execute(ctx, params.Name, params.Arguments)
	if err != nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: err.Error()}
	}

	s.logger.Info("tool call",
		"session", s.session,
		"tool", params.Name,
		"success", result.Success,
	)

	envelope, err := json.Marshal(result)
	if err != nil {
		return nil, &rpcError{Code: codeInvalidParams, Message: fmt.Sprintf("encode result: %v", err)}
	}

	return callResult{
		Content: []contentBlock{{Type: "text", Text: string(envelope)}},
		IsError: !result.Success,
	}, nil
}
