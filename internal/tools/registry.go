// Package tools implements the MCP tool registry and dispatcher for
// Backlog operations.
//
// The registry is built once at startup and never mutated. Dispatch is
// deliberately soft-failing: whatever goes wrong inside an invocation —
// unknown name, missing argument, backend failure, panic — the caller
// receives a successful protocol response whose body is {"error": ...},
// so an agent driving the server always gets structured, parseable
// text instead of a transport-level failure. Resources and prompts fail
// hard; tools fail soft. The asymmetry is intentional.
//
// Each tool lives in its own file and validates its own required
// fields; the presence of the arguments object itself is checked once
// here, before dispatch.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// tool is one named, schema-described Backlog operation.
type tool interface {
	definition() mcp.Tool
	call(ctx context.Context, args map[string]any) (any, error)
}

// Registry holds the static tool set and dispatches invocations.
type Registry struct {
	tools  []tool
	byName map[string]tool
}

// NewRegistry builds the fixed tool set backed by the given client.
func NewRegistry(client *backlog.Client) *Registry {
	r := &Registry{byName: make(map[string]tool)}
	for _, t := range []tool{
		&listProjectsTool{client: client},
		&projectDetailsTool{client: client},
		&projectIssuesTool{client: client},
		&issueDetailsTool{client: client},
		&issueCommentsTool{client: client},
		&createIssueTool{client: client},
		&createCommentTool{client: client},
	} {
		r.tools = append(r.tools, t)
		r.byName[t.definition().Name] = t
	}
	return r
}

// Definitions returns the tool descriptors. The set is static — the
// same descriptors come back on every call.
func (r *Registry) Definitions() []mcp.Tool {
	defs := make([]mcp.Tool, 0, len(r.tools))
	for _, t := range r.tools {
		defs = append(defs, t.definition())
	}
	return defs
}

// toolAdder is the subset of *server.MCPServer used for registration.
type toolAdder interface {
	AddTool(tool mcp.Tool, handler server.ToolHandlerFunc)
}

// Register wires every tool into the MCP server, routing each call
// through Invoke so the central checks apply uniformly.
func (r *Registry) Register(s toolAdder) {
	for _, t := range r.tools {
		def := t.definition()
		name := def.Name
		s.AddTool(def, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return r.Invoke(ctx, name, req.GetArguments()), nil
		})
	}
}

// Invoke resolves a tool by name and runs it. It never returns a
// protocol-level failure: every error path produces a successful
// result carrying a JSON error body. A nil args map means the caller
// sent no arguments object at all (an empty map is fine).
func (r *Registry) Invoke(ctx context.Context, name string, args map[string]any) (result *mcp.CallToolResult) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("WARNING: tool %s: panic: %v", name, p)
			result = errorResult(fmt.Sprintf("tool %s failed: %v", name, p))
		}
	}()

	t, ok := r.byName[name]
	if !ok {
		log.Printf("WARNING: call for unknown tool %q", name)
		return errorResult(fmt.Sprintf("Unknown tool: %s", name))
	}
	if args == nil {
		return errorResult("No arguments provided")
	}

	payload, err := t.call(ctx, args)
	if err != nil {
		log.Printf("WARNING: tool %s: %v", name, err)
		return errorResult(err.Error())
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("WARNING: tool %s: marshaling result: %v", name, err)
		return errorResult(fmt.Sprintf("marshaling result: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}

// errorResult wraps a message as the soft-failure JSON body.
func errorResult(message string) *mcp.CallToolResult {
	data, err := json.Marshal(map[string]string{"error": message})
	if err != nil {
		data = []byte(`{"error":"internal error"}`)
	}
	return mcp.NewToolResultText(string(data))
}
