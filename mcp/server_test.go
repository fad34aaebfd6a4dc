package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/opsbridge/netbox-mcp/core"
	"github.com/opsbridge/netbox-mcp/tools"
)

func newTestRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	reg := tools.NewRegistry()

	echo := tools.Func("echo", "Echo the arguments back.", json.RawMessage(`{"type":"object"}`),
		func(ctx context.Context, args json.RawMessage) core.Result {
			var payload map[string]any
			if err := json.Unmarshal(args, &payload); err != nil {
				return core.Fail(err)
			}
			return core.OK(payload)
		})
	failing := tools.Func("always_fails", "Always fails.", json.RawMessage(`{"type":"object"}`),
		func(ctx context.Context, args json.RawMessage) core.Result {
			return core.Failf("nope")
		})

	for _, tool := range []tools.Tool{echo, failing} {
		if err := reg.Register(tool); err != nil {
			t.Fatalf("Register() error = %v", err)
		}
	}
	return reg
}

// serve runs the server over the given input and returns one decoded
// response per output line.
func serve(t *testing.T, input string) []response {
	t.Helper()

	server := NewServer(newTestRegistry(t), "netbox-mcp", "test")
	var out bytes.Buffer
	if err := server.Serve(context.Background(), strings.NewReader(input), &out); err != nil {
		t.Fatalf("Serve() error = %v", err)
	}

	var responses []response
	for _, line := range strings.Split(strings.TrimSpace(out.String()), "\n") {
		if line == "" {
			continue
		}
		var resp response
		if err := json.Unmarshal([]byte(line), &resp); err != nil {
			t.Fatalf("decode response %q: %v", line, err)
		}
		responses = append(responses, resp)
	}
	return responses
}

func TestInitializeHandshake(t *testing.T) {
	responses := serve(t, `{"jsonrpc":"2.0","id":1,"method":"initialize","params":{"protocolVersion":"2025-03-26"}}`+"\n")

	if len(responses) != 1 {
		t.Fatalf("len(responses) = %d, want 1", len(responses))
	}

	result, ok := responses[0].Result.(map[string]any)
	if !ok {
		t.Fatalf("Result = %T, want object", responses[0].Result)
	}
	if result["protocolVersion"] != "2025-03-26" {
		t.Errorf("protocolVersion = %v", result["protocolVersion"])
	}
	info, _ := result["serverInfo"].(map[string]any)
	if info["name"] != "netbox-mcp" || info["version"] != "test" {
		t.Errorf("serverInfo = %v", info)
	}
}

func TestNotificationGetsNoResponse(t *testing.T) {
	input := `{"jsonrpc":"2.0","method":"notifications/initialized"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"ping"}` + "\n"

	responses := serve(t, input)
	if len(responses) != 1 {
		t.Fatalf("len(responses) = %d, want only the ping reply", len(responses))
	}
	if string(responses[0].ID) != "2" {
		t.Errorf("ID = %s, want 2", responses[0].ID)
	}
}

func TestListTools(t *testing.T) {
	responses := serve(t, `{"jsonrpc":"2.0","id":1,"method":"tools/list"}`+"\n")

	result, ok := responses[0].Result.(map[string]any)
	if !ok {
		t.Fatalf("Result = %T, want object", responses[0].Result)
	}
	list, _ := result["tools"].([]any)
	if len(list) != 2 {
		t.Fatalf("len(tools) = %d, want 2", len(list))
	}

	first, _ := list[0].(map[string]any)
	if first["name"] != "always_fails" {
		t.Errorf("tools[0].name = %v, want always_fails (sorted)", first["name"])
	}
	if _, ok := first["inputSchema"]; !ok {
		t.Errorf("tools[0] missing inputSchema")
	}
}

func TestCallToolSuccess(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"echo","arguments":{"greeting":"hello"}}}` + "\n"
	responses := serve(t, input)

	result, ok := responses[0].Result.(map[string]any)
	if !ok {
		t.Fatalf("Result = %T, want object", responses[0].Result)
	}
	if result["isError"] != false {
		t.Errorf("isError = %v, want false", result["isError"])
	}

	content, _ := result["content"].([]any)
	if len(content) != 1 {
		t.Fatalf("len(content) = %d, want 1", len(content))
	}
	block, _ := content[0].(map[string]any)
	if block["type"] != "text" {
		t.Errorf("content type = %v, want text", block["type"])
	}

	var envelope core.Result
	if err := json.Unmarshal([]byte(block["text"].(string)), &envelope); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !envelope.Success {
		t.Errorf("envelope = %+v, want success", envelope)
	}
}

func TestCallToolFailureIsError(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"always_fails","arguments":{}}}` + "\n"
	responses := serve(t, input)

	result, ok := responses[0].Result.(map[string]any)
	if !ok {
		t.Fatalf("Result = %T, want object", responses[0].Result)
	}
	if result["isError"] != true {
		t.Errorf("isError = %v, want true", result["isError"])
	}
	if responses[0].Error != nil {
		t.Errorf("Error = %+v, want tool failure inside the result", responses[0].Error)
	}
}

func TestCallUnknownTool(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"missing","arguments":{}}}` + "\n"
	responses := serve(t, input)

	if responses[0].Error == nil {
		t.Fatalf("Error = nil, want invalid params")
	}
	if responses[0].Error.Code != codeInvalidParams {
		t.Errorf("Code = %d, want %d", responses[0].Error.Code, codeInvalidParams)
	}
}

func TestUnknownMethod(t *testing.T) {
	responses := serve(t, `{"jsonrpc":"2.0","id":6,"method":"resources/list"}`+"\n")

	if responses[0].Error == nil {
		t.Fatalf("Error = nil, want method not found")
	}
	if responses[0].Error.Code != codeMethodNotFound {
		t.Errorf("Code = %d, want %d", responses[0].Error.Code, codeMethodNotFound)
	}
}

func TestMalformedLineGetsParseError(t *testing.T) {
	input := "{not json}\n" + `{"jsonrpc":"2.0","id":7,"method":"ping"}` + "\n"
	responses := serve(t, input)

	if len(responses) != 2 {
		t.Fatalf("len(responses) = %d, want 2", len(responses))
	}
	if responses[0].Error == nil || responses[0].Error.Code != codeParseError {
		t.Errorf("responses[0].Error = %+v, want parse error", responses[0].Error)
	}
	if string(responses[1].ID) != "7" {
		t.Errorf("loop did not continue after parse error")
	}
}
