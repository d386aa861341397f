package tools

import (
	"context"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// issueDetailsTool handles the get_issue_details MCP tool.
type issueDetailsTool struct {
	client *backlog.Client
}

func (t *issueDetailsTool) definition() mcp.Tool {
	return mcp.NewTool("get_issue_details",
		mcp.WithDescription(
			"Get a single Backlog issue by numeric id or issue key. "+
				"The result links to the next actions: fetching the issue's comments "+
				"or adding one.",
		),
		mcp.WithString("issueIdOrKey",
			mcp.Required(),
			mcp.Description("Issue id (e.g. 7) or issue key (e.g. DEV-7)"),
		),
	)
}

func (t *issueDetailsTool) call(ctx context.Context, args map[string]any) (any, error) {
	idOrKey, err := requireID(args, "issueIdOrKey")
	if err != nil {
		return nil, err
	}

	issue, err := t.client.Issue(ctx, idOrKey)
	if err != nil {
		return nil, err
	}
	return issueResult{Issue: *issue, Links: issueDetailLinks(*issue)}, nil
}
