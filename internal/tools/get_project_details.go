package tools

import (
	"context"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// projectDetailsTool handles the get_project_details MCP tool.
type projectDetailsTool struct {
	client *backlog.Client
}

func (t *projectDetailsTool) definition() mcp.Tool {
	return mcp.NewTool("get_project_details",
		mcp.WithDescription(
			"Get a single Backlog project by numeric id or project key. "+
				"The result links to the next actions: listing the project's issues "+
				"or creating an issue in it.",
		),
		mcp.WithString("projectIdOrKey",
			mcp.Required(),
			mcp.Description("Project id (e.g. 1) or project key (e.g. DEV)"),
		),
	)
}

func (t *projectDetailsTool) call(ctx context.Context, args map[string]any) (any, error) {
	idOrKey, err := requireID(args, "projectIdOrKey")
	if err != nil {
		return nil, err
	}

	project, err := t.client.Project(ctx, idOrKey)
	if err != nil {
		return nil, err
	}
	return projectResult{Project: *project, Links: projectDetailLinks(*project)}, nil
}
