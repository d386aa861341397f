package backlog

// Project is a Backlog project as returned by the REST API.
// Snapshots only — nothing here is cached or mutated locally.
type Project struct {
	ID          int    `json:"id"`
	ProjectKey  string `json:"projectKey"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Status is an issue status (id + display name pair).
type Status struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Issue is a Backlog issue. ProjectID links it to its owning project.
type Issue struct {
	ID          int    `json:"id"`
	ProjectID   int    `json:"projectId"`
	IssueKey    string `json:"issueKey"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// User is the authoring user embedded in a comment.
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	RoleType int    `json:"roleType"`
}

// Comment is a comment on an issue. The parent issue id is not part of
// the payload — Backlog returns comments scoped to the issue they were
// requested for, so the caller supplies that context.
type Comment struct {
	ID          int    `json:"id"`
	Content     string `json:"content"`
	Created     string `json:"created"`
	Updated     string `json:"updated"`
	CreatedUser User   `json:"createdUser"`
}

// CreateIssueParams carries the fields for creating a new issue.
// ProjectID, Summary, IssueTypeID and PriorityID are required by the
// Backlog API; Description is optional.
type CreateIssueParams struct {
	ProjectID   string
	Summary     string
	IssueTypeID string
	PriorityID  string
	Description string
}
