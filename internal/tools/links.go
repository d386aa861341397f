package tools

import "github.com/kinosai/backlog-mcp/internal/backlog"

// Tool results embed forward-pointing suggestions instead of plain
// hyperlinks: each _links.tools entry names a tool the agent can call
// next, with either concrete arguments or a fill-in-the-blank
// template. The agent never has to re-derive ids to chain actions.

// suggestion is one callable-action link. Exactly one of Arguments
// (ready to send) or Template (blanks to fill) is set.
type suggestion struct {
	Tool      string         `json:"tool"`
	Arguments map[string]any `json:"arguments,omitempty"`
	Template  map[string]any `json:"template,omitempty"`
}

// linkBundle is the _links object attached to every tool result.
type linkBundle struct {
	Tools map[string]suggestion `json:"tools"`
}

func callWith(name string, args map[string]any) suggestion {
	return suggestion{Tool: name, Arguments: args}
}

func fillIn(name string, tpl map[string]any) suggestion {
	return suggestion{Tool: name, Template: tpl}
}

// createIssueTemplate pre-fills the project and blanks the rest.
func createIssueTemplate(projectID int) suggestion {
	return fillIn("create_issue", map[string]any{
		"projectId":   projectID,
		"summary":     "",
		"issueTypeId": 0,
		"priorityId":  0,
	})
}

// commentTemplate pre-fills the issue and blanks the content.
func commentTemplate(issueID any) suggestion {
	return fillIn("create_issue_comment", map[string]any{
		"issueId": issueID,
		"content": "",
	})
}

// projectListLinks decorates a project inside a list_projects result.
func projectListLinks(p backlog.Project) linkBundle {
	return linkBundle{Tools: map[string]suggestion{
		"get_project_details": callWith("get_project_details", map[string]any{"projectIdOrKey": p.ProjectKey}),
		"get_project_issues":  callWith("get_project_issues", map[string]any{"projectId": p.ID}),
		"create_issue":        createIssueTemplate(p.ID),
	}}
}

// projectDetailLinks decorates a get_project_details result.
func projectDetailLinks(p backlog.Project) linkBundle {
	return linkBundle{Tools: map[string]suggestion{
		"get_project_issues": callWith("get_project_issues", map[string]any{"projectId": p.ID}),
		"create_issue":       createIssueTemplate(p.ID),
	}}
}

// issueListLinks decorates an issue inside a get_project_issues result
// and the echo of a freshly created issue — both offer the full
// drill-down set.
func issueListLinks(issue backlog.Issue) linkBundle {
	return linkBundle{Tools: map[string]suggestion{
		"get_issue_details":    callWith("get_issue_details", map[string]any{"issueIdOrKey": issue.IssueKey}),
		"get_issue_comments":   callWith("get_issue_comments", map[string]any{"issueId": issue.ID}),
		"create_issue_comment": commentTemplate(issue.ID),
	}}
}

// issueDetailLinks decorates a get_issue_details result.
func issueDetailLinks(issue backlog.Issue) linkBundle {
	return linkBundle{Tools: map[string]suggestion{
		"get_issue_comments":   callWith("get_issue_comments", map[string]any{"issueId": issue.ID}),
		"create_issue_comment": commentTemplate(issue.ID),
	}}
}

// commentListLinks decorates a comment inside a get_issue_comments
// result. The parent issue id comes from the caller's argument — the
// comment payload does not carry it.
func commentListLinks(issueID any) linkBundle {
	return linkBundle{Tools: map[string]suggestion{
		"create_issue_comment": commentTemplate(issueID),
	}}
}

// createdCommentLinks decorates a create_issue_comment result.
func createdCommentLinks(issueID any) linkBundle {
	return linkBundle{Tools: map[string]suggestion{
		"get_issue_comments": callWith("get_issue_comments", map[string]any{"issueId": issueID}),
	}}
}
