package tools

import (
	"context"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// projectIssuesTool handles the get_project_issues MCP tool.
type projectIssuesTool struct {
	client *backlog.Client
}

func (t *projectIssuesTool) definition() mcp.Tool {
	return mcp.NewTool("get_project_issues",
		mcp.WithDescription(
			"List the issues of a Backlog project. "+
				"Each issue links to the next actions: fetching its details or comments, "+
				"or adding a comment.",
		),
		mcp.WithNumber("projectId",
			mcp.Required(),
			mcp.Description("Numeric project id to filter issues by"),
		),
	)
}

func (t *projectIssuesTool) call(ctx context.Context, args map[string]any) (any, error) {
	projectID, err := requireID(args, "projectId")
	if err != nil {
		return nil, err
	}

	issues, err := t.client.Issues(ctx, projectID)
	if err != nil {
		return nil, err
	}

	results := make([]issueResult, 0, len(issues))
	for _, issue := range issues {
		results = append(results, issueResult{Issue: issue, Links: issueListLinks(issue)})
	}
	return issueListResult{Total: len(results), Issues: results}, nil
}
