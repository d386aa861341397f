// Package prompts implements the MCP prompt handlers.
//
// Prompts are user-triggered templates that tell the calling agent
// which tools to chain. Unlike tools they fail hard: a handler error
// propagates to the host and aborts the request.
package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ExplorePrompt handles the explore_backlog MCP prompt — purely static
// instructional text walking the agent through the tool chain.
type ExplorePrompt struct{}

// NewExplorePrompt creates an ExplorePrompt.
func NewExplorePrompt() *ExplorePrompt {
	return &ExplorePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ExplorePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("explore_backlog",
		mcp.WithPromptDescription(
			"Explore the Backlog space step by step: projects, then issues, "+
				"then comments, following the _links suggestions in each result.",
		),
	)
}

// Handle processes the explore_backlog prompt request.
func (p *ExplorePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Explore the Backlog space",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please explore my Backlog space.\n\n" +
						"1. Call `list_projects` to see every project\n" +
						"2. For each project of interest, follow its `_links.tools.get_project_issues` suggestion — " +
						"the arguments are already filled in\n" +
						"3. For issues that look important, follow `_links.tools.get_issue_details` and " +
						"`_links.tools.get_issue_comments`\n" +
						"4. Summarize what the space contains: projects, open issues, and any discussion " +
						"threads that need attention\n\n" +
						"Every tool result embeds `_links.tools` — use those suggestions to chain calls " +
						"instead of re-deriving ids yourself.",
				),
			},
		},
	}, nil
}
