// Package backlog is a thin client for the Backlog REST API (v2).
//
// Each method maps to exactly one endpoint and performs a single network
// attempt — no retries, no caching, no local state. The API key is sent
// as a query parameter on every request, per Backlog's authentication
// scheme. State-changing calls (POST) send their payload as a
// form-encoded request body, separate from the query-string credential.
package backlog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// apiPath is the REST API prefix appended to the space base URL.
const apiPath = "/api/v2"

// Client talks to one Backlog space.
type Client struct {
	baseURL string
	apiKey  string
	httpc   *http.Client
}

// NewClient creates a Client for the given space base URL
// (e.g. "https://example.backlog.jp"). The key is attached to every
// request; an empty or wrong key surfaces as an authentication error
// from the backend on first use — it is not validated here.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpc:   &http.Client{},
	}
}

// Projects fetches all projects in the space.
func (c *Client) Projects(ctx context.Context) ([]Project, error) {
	var projects []Project
	if err := c.get(ctx, "list projects", "/projects", nil, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// Project fetches a single project by numeric id or project key.
func (c *Client) Project(ctx context.Context, idOrKey string) (*Project, error) {
	var project Project
	op := fmt.Sprintf("get project %s", idOrKey)
	if err := c.get(ctx, op, "/projects/"+url.PathEscape(idOrKey), nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// Issues fetches issues, optionally filtered by project. The filter is
// encoded as projectId[]=<id> — the list endpoint expects an
// array-shaped parameter even for a single value.
func (c *Client) Issues(ctx context.Context, projectID string) ([]Issue, error) {
	query := url.Values{}
	op := "list issues"
	if projectID != "" {
		query.Set("projectId[]", projectID)
		op = fmt.Sprintf("list issues for project %s", projectID)
	}
	var issues []Issue
	if err := c.get(ctx, op, "/issues", query, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// Issue fetches a single issue by numeric id or issue key.
func (c *Client) Issue(ctx context.Context, idOrKey string) (*Issue, error) {
	var issue Issue
	op := fmt.Sprintf("get issue %s", idOrKey)
	if err := c.get(ctx, op, "/issues/"+url.PathEscape(idOrKey), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// Comments fetches the comments of an issue.
func (c *Client) Comments(ctx context.Context, issueID string) ([]Comment, error) {
	var comments []Comment
	op := fmt.Sprintf("list comments for issue %s", issueID)
	if err := c.get(ctx, op, "/issues/"+url.PathEscape(issueID)+"/comments", nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateIssue creates a new issue and returns the created entity as
// echoed by the backend.
func (c *Client) CreateIssue(ctx context.Context, params CreateIssueParams) (*Issue, error) {
	form := url.Values{}
	form.Set("projectId", params.ProjectID)
	form.Set("summary", params.Summary)
	form.Set("issueTypeId", params.IssueTypeID)
	form.Set("priorityId", params.PriorityID)
	if params.Description != "" {
		form.Set("description", params.Description)
	}
	var issue Issue
	op := fmt.Sprintf("create issue in project %s", params.ProjectID)
	if err := c.post(ctx, op, "/issues", form, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// CreateComment adds a comment to an issue.
func (c *Client) CreateComment(ctx context.Context, issueID, content string) (*Comment, error) {
	form := url.Values{}
	form.Set("content", content)
	var comment Comment
	op := fmt.Sprintf("create comment on issue %s", issueID)
	if err := c.post(ctx, op, "/issues/"+url.PathEscape(issueID)+"/comments", form, &comment); err != nil {
		return nil, err
	}
	return &comment, nil
}

// get performs a GET request and decodes the JSON response into v.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(path, query), nil)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	return c.do(op, req, v)
}

// post performs a form-encoded POST request and decodes the JSON
// response into v.
func (c *Client) post(ctx context.Context, op, path string, form url.Values, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(path, nil), strings.NewReader(form.Encode()))
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return c.do(op, req, v)
}

func (c *Client) do(op string, req *http.Request, v any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		return &Error{Op: op, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &Error{Op: op, Status: resp.StatusCode, Message: readAPIError(resp.Body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return &Error{Op: op, Status: resp.StatusCode, Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// endpoint builds the full request URL with the apiKey credential
// appended to whatever query parameters the call itself needs.
func (c *Client) endpoint(path string, query url.Values) string {
	q := url.Values{}
	for k, vs := range query {
		q[k] = vs
	}
	q.Set("apiKey", c.apiKey)
	return c.baseURL + apiPath + path + "?" + q.Encode()
}

// readAPIError extracts the first error message from a Backlog error
// body ({"errors":[{"message":...}]}). Returns "" when the body is not
// in that shape — Error falls back to the HTTP status then.
func readAPIError(r io.Reader) string {
	var body struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	if err := json.NewDecoder(r).Decode(&body); err != nil || len(body.Errors) == 0 {
		return ""
	}
	return body.Errors[0].Message
}
