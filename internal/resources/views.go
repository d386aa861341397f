package resources

import (
	"strconv"

	"github.com/kinosai/backlog-mcp/internal/backlog"
)

// Resource projections. Each view carries the entity fields the
// protocol contract declares plus a _links bundle of literal
// sub-resource URIs.

type projectLinks struct {
	Self   string `json:"self"`
	Issues string `json:"issues"`
}

type projectView struct {
	ID          int          `json:"id"`
	ProjectKey  string       `json:"projectKey"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Links       projectLinks `json:"_links"`
}

func newProjectView(p backlog.Project) projectView {
	id := strconv.Itoa(p.ID)
	return projectView{
		ID:          p.ID,
		ProjectKey:  p.ProjectKey,
		Name:        p.Name,
		Description: p.Description,
		Links: projectLinks{
			Self:   projectURI(id),
			Issues: projectIssuesURI(id),
		},
	}
}

type issueLinks struct {
	Self     string `json:"self"`
	Comments string `json:"comments"`
	Project  string `json:"project"`
}

type issueView struct {
	ID       int            `json:"id"`
	IssueKey string         `json:"issueKey"`
	Summary  string         `json:"summary"`
	Status   backlog.Status `json:"status"`
	Links    issueLinks     `json:"_links"`
}

func newIssueView(issue backlog.Issue) issueView {
	id := strconv.Itoa(issue.ID)
	return issueView{
		ID:       issue.ID,
		IssueKey: issue.IssueKey,
		Summary:  issue.Summary,
		Status:   issue.Status,
		Links: issueLinks{
			Self:     issueURI(id),
			Comments: issueCommentsURI(id),
			Project:  projectURI(strconv.Itoa(issue.ProjectID)),
		},
	}
}

type commentLinks struct {
	Self  string `json:"self"`
	Issue string `json:"issue"`
}

type commentView struct {
	ID          int          `json:"id"`
	Content     string       `json:"content"`
	Created     string       `json:"created"`
	Updated     string       `json:"updated"`
	CreatedUser backlog.User `json:"createdUser"`
	Links       commentLinks `json:"_links"`
}

// newCommentView projects a comment. Comments are not individually
// addressable, so self points at the comments collection that
// re-fetches it; issueID comes from the request context because the
// comment payload itself does not carry the parent issue.
func newCommentView(c backlog.Comment, issueID string) commentView {
	return commentView{
		ID:          c.ID,
		Content:     c.Content,
		Created:     c.Created,
		Updated:     c.Updated,
		CreatedUser: c.CreatedUser,
		Links: commentLinks{
			Self:  issueCommentsURI(issueID),
			Issue: issueURI(issueID),
		},
	}
}
