package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	contractx "github.com/dungmtkai/mcp-server/scheduler/contract"
)

func TestServeDispatchesPerLine(t *testing.T) {
	t.Parallel()

	var calls []string
	executor := func(_ context.Context, tool string, args map[string]any) (contractx.ToolResult, error) {
		calls = append(calls, tool)
		return contractx.ToolResult{Tool: tool, Result: args["echo"]}, nil
	}

	in := strings.NewReader(`{"tool":"a","args":{"echo":"1"}}` + "\n\n" + `{"tool":"b","args":{"echo":"2"}}` + "\n")
	var out bytes.Buffer
	if err := serve(in, &out, executor); err != nil {
		t.Fatalf("serve() error = %v", err)
	}

	if len(calls) != 2 || calls[0] != "a" || calls[1] != "b" {
		t.Fatalf("unexpected dispatch order: %v", calls)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 result lines, got %q", out.String())
	}
	var res contractx.ToolResult
	if err := json.Unmarshal([]byte(lines[1]), &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if res.Tool != "b" || res.Result != "2" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestServeReportsMalformedRequest(t *testing.T) {
	t.Parallel()

	executor := func(_ context.Context, tool string, _ map[string]any) (contractx.ToolResult, error) {
		t.Fatalf("executor must not run for malformed input, got tool=%s", tool)
		return contractx.ToolResult{}, nil
	}

	var out bytes.Buffer
	if err := serve(strings.NewReader("not json\n"), &out, executor); err != nil {
		t.Fatalf("serve() error = %v", err)
	}

	var res contractx.ToolResult
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if !strings.HasPrefix(res.Error, "malformed request") {
		t.Fatalf("unexpected error: %q", res.Error)
	}
}
