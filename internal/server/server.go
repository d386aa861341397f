// Package server wires all MCP components and creates the server
// instance. This is the composition root: it builds the Backlog client
// from the configuration and injects it into the tools, resources, and
// prompts. No business logic lives here — only wiring.
package server

import (
	"context"
	"log"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/kinosai/backlog-mcp/internal/config"
	"github.com/kinosai/backlog-mcp/internal/prompts"
	"github.com/kinosai/backlog-mcp/internal/resources"
	"github.com/kinosai/backlog-mcp/internal/tools"
	"github.com/mark3labs/mcp-go/server"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, resources,
// and prompts registered. This is the single place where dependencies
// are resolved.
func New(cfg *config.Config) *server.MCPServer {
	client := backlog.NewClient(cfg.BaseURL(), cfg.APIKey)

	s := server.NewMCPServer(
		"backlog-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register tools ---
	//
	// The registry is built once and never mutated; every invocation
	// routes through its dispatcher so the soft-failure contract
	// applies uniformly.

	registry := tools.NewRegistry(client)
	registry.Register(s)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(client)
	resourceHandler.Register(s)

	// Publish one descriptor per live project. Best effort at startup:
	// the backend may be unreachable or unconfigured, and the server
	// must still come up — the list refreshes on the next successful
	// projects read.
	go func() {
		if err := resourceHandler.SyncProjects(context.Background()); err != nil {
			log.Printf("WARNING: initial project sync skipped: %v", err)
		}
	}()

	// --- Register prompts ---

	explorePrompt := prompts.NewExplorePrompt()
	s.AddPrompt(explorePrompt.Definition(), explorePrompt.Handle)

	bugHuntPrompt := prompts.NewBugHuntPrompt(client)
	s.AddPrompt(bugHuntPrompt.Definition(), bugHuntPrompt.Handle)

	return s
}

// serverInstructions returns the system instructions that tell the AI
// how to use this server effectively.
func serverInstructions() string {
	return `You have access to a Backlog issue-tracking space through this server.

## Tools
- list_projects — all projects in the space
- get_project_details(projectIdOrKey) — one project
- get_project_issues(projectId) — a project's issues
- get_issue_details(issueIdOrKey) — one issue
- get_issue_comments(issueId) — an issue's comments
- create_issue(projectId, summary, issueTypeId, priorityId[, description])
- create_issue_comment(issueId, content)

## Chaining with _links
Every tool result embeds a _links.tools object suggesting what to call
next. Entries with "arguments" are ready to send as-is; entries with
"template" have blanks for you to fill (empty strings and zeros).
Prefer following these suggestions over re-deriving ids yourself.

## Errors
Tool failures come back as a normal result whose body is
{"error": "<message>"} — inspect it and decide how to react. A missing
argument error names the field to add.

## Resources
Read-only JSON views are available under backlog:/// URIs:
backlog:///projects, backlog:///project/<id>, backlog:///project/<id>/issues,
backlog:///issue/<id>, backlog:///issue/<id>/comments.

## Prompts
- explore_backlog — guided walk across projects, issues, and comments
- find_bug_issues — scans every project for issues mentioning "bug" and
  embeds the matches for analysis`
}
