package tools

import (
	"context"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// listProjectsTool handles the list_projects MCP tool.
type listProjectsTool struct {
	client *backlog.Client
}

func (t *listProjectsTool) definition() mcp.Tool {
	return mcp.NewTool("list_projects",
		mcp.WithDescription(
			"List all projects in the Backlog space. "+
				"Each project includes _links.tools suggestions for fetching its details, "+
				"listing its issues, or creating a new issue in it.",
		),
	)
}

func (t *listProjectsTool) call(ctx context.Context, _ map[string]any) (any, error) {
	projects, err := t.client.Projects(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]projectResult, 0, len(projects))
	for _, p := range projects {
		results = append(results, projectResult{Project: p, Links: projectListLinks(p)})
	}
	return projectListResult{Total: len(results), Projects: results}, nil
}
