package tools

import "github.com/kinosai/backlog-mcp/internal/backlog"

// Result payloads: the exact backend fields (embedded DTO) plus the
// _links suggestion bundle. List results wrap their items with a total.

type projectResult struct {
	backlog.Project
	Links linkBundle `json:"_links"`
}

type projectListResult struct {
	Total    int             `json:"total"`
	Projects []projectResult `json:"projects"`
}

type issueResult struct {
	backlog.Issue
	Links linkBundle `json:"_links"`
}

type issueListResult struct {
	Total  int           `json:"total"`
	Issues []issueResult `json:"issues"`
}

type commentResult struct {
	backlog.Comment
	Links linkBundle `json:"_links"`
}

type commentListResult struct {
	Total    int             `json:"total"`
	Comments []commentResult `json:"comments"`
}
