package tools

import (
	"context"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// createCommentTool handles the create_issue_comment MCP tool.
type createCommentTool struct {
	client *backlog.Client
}

func (t *createCommentTool) definition() mcp.Tool {
	return mcp.NewTool("create_issue_comment",
		mcp.WithDescription(
			"Add a comment to a Backlog issue. "+
				"The created comment links back to the issue's comment list.",
		),
		mcp.WithNumber("issueId",
			mcp.Required(),
			mcp.Description("Numeric id of the issue to comment on"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Comment text"),
		),
	)
}

func (t *createCommentTool) call(ctx context.Context, args map[string]any) (any, error) {
	issueID, err := requireID(args, "issueId")
	if err != nil {
		return nil, err
	}
	content, err := requireString(args, "content")
	if err != nil {
		return nil, err
	}

	comment, err := t.client.CreateComment(ctx, issueID, content)
	if err != nil {
		return nil, err
	}
	return commentResult{Comment: *comment, Links: createdCommentLinks(idValue(issueID))}, nil
}
