package tools

import (
	"context"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// createIssueTool handles the create_issue MCP tool.
type createIssueTool struct {
	client *backlog.Client
}

// createIssueArgs is the typed argument record for create_issue.
// Constructing it from the raw JSON blob is the validation: any
// missing or mis-typed required field fails with a message naming it.
type createIssueArgs struct {
	projectID   string
	summary     string
	issueTypeID string
	priorityID  string
	description string
}

func parseCreateIssueArgs(args map[string]any) (createIssueArgs, error) {
	var parsed createIssueArgs
	var err error
	if parsed.projectID, err = requireID(args, "projectId"); err != nil {
		return parsed, err
	}
	if parsed.summary, err = requireString(args, "summary"); err != nil {
		return parsed, err
	}
	if parsed.issueTypeID, err = requireID(args, "issueTypeId"); err != nil {
		return parsed, err
	}
	if parsed.priorityID, err = requireID(args, "priorityId"); err != nil {
		return parsed, err
	}
	parsed.description = optionalString(args, "description")
	return parsed, nil
}

func (t *createIssueTool) definition() mcp.Tool {
	return mcp.NewTool("create_issue",
		mcp.WithDescription(
			"Create a new issue in a Backlog project. "+
				"The created issue links to the next actions: fetching its details "+
				"or comments, or commenting on it.",
		),
		mcp.WithNumber("projectId",
			mcp.Required(),
			mcp.Description("Numeric id of the project to create the issue in"),
		),
		mcp.WithString("summary",
			mcp.Required(),
			mcp.Description("One-line summary of the issue"),
		),
		mcp.WithNumber("issueTypeId",
			mcp.Required(),
			mcp.Description("Numeric issue type id (e.g. Bug, Task)"),
		),
		mcp.WithNumber("priorityId",
			mcp.Required(),
			mcp.Description("Numeric priority id"),
		),
		mcp.WithString("description",
			mcp.Description("Optional long-form description"),
		),
	)
}

func (t *createIssueTool) call(ctx context.Context, args map[string]any) (any, error) {
	parsed, err := parseCreateIssueArgs(args)
	if err != nil {
		return nil, err
	}

	issue, err := t.client.CreateIssue(ctx, backlog.CreateIssueParams{
		ProjectID:   parsed.projectID,
		Summary:     parsed.summary,
		IssueTypeID: parsed.issueTypeID,
		PriorityID:  parsed.priorityID,
		Description: parsed.description,
	})
	if err != nil {
		return nil, err
	}
	return issueResult{Issue: *issue, Links: issueListLinks(*issue)}, nil
}
