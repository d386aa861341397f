package tools

import (
	"context"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// issueCommentsTool handles the get_issue_comments MCP tool.
type issueCommentsTool struct {
	client *backlog.Client
}

func (t *issueCommentsTool) definition() mcp.Tool {
	return mcp.NewTool("get_issue_comments",
		mcp.WithDescription(
			"List the comments on a Backlog issue. "+
				"Each comment links to a pre-filled template for replying on the same issue.",
		),
		mcp.WithNumber("issueId",
			mcp.Required(),
			mcp.Description("Numeric issue id"),
		),
	)
}

func (t *issueCommentsTool) call(ctx context.Context, args map[string]any) (any, error) {
	issueID, err := requireID(args, "issueId")
	if err != nil {
		return nil, err
	}

	comments, err := t.client.Comments(ctx, issueID)
	if err != nil {
		return nil, err
	}

	results := make([]commentResult, 0, len(comments))
	for _, comment := range comments {
		results = append(results, commentResult{Comment: comment, Links: commentListLinks(idValue(issueID))})
	}
	return commentListResult{Total: len(results), Comments: results}, nil
}
