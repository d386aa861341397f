// Package resources implements the MCP resource router for Backlog
// entities. Resources are read-only JSON views addressed by
// backlog:/// URIs; every view embeds a _links bundle pointing at the
// sub-resources that can be fetched next.
//
// Unlike tools, resource handlers fail hard: a typed error propagates
// to the host and aborts the request.
package resources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Protocol-level error classes. The router wraps every failure in one
// of these (or passes a *backlog.Error through) so the host can tell
// bad requests from missing resources.
var (
	// ErrNotFound marks an unrecognized resource path.
	ErrNotFound = errors.New("not found")
	// ErrInvalidRequest marks a recognized path missing a required id.
	ErrInvalidRequest = errors.New("invalid request")
)

// registrar is the subset of *server.MCPServer the handler needs to
// publish resources; narrowed for testability.
type registrar interface {
	AddResource(resource mcp.Resource, handler server.ResourceHandlerFunc)
	AddResourceTemplate(template mcp.ResourceTemplate, handler server.ResourceTemplateHandlerFunc)
}

// Handler routes resource reads to the Backlog client and keeps the
// advertised resource list in sync with the live project set.
type Handler struct {
	client *backlog.Client
	reg    registrar
}

// NewHandler creates a resource Handler backed by the given client.
func NewHandler(client *backlog.Client) *Handler {
	return &Handler{client: client}
}

// Register publishes the static projects resource and one template per
// parameterized path shape. Per-project resources are added later by
// SyncProjects, once the live project set is known.
func (h *Handler) Register(reg registrar) {
	h.reg = reg

	reg.AddResource(mcp.NewResource(
		projectsURI(),
		"Backlog Projects",
		mcp.WithResourceDescription("All projects in the Backlog space"),
		mcp.WithMIMEType("application/json"),
	), h.Read)

	templates := []struct {
		uri, name, description string
	}{
		{"backlog:///project/{projectIdOrKey}", "Backlog Project", "A single project by id or key"},
		{"backlog:///project/{projectIdOrKey}/issues", "Backlog Project Issues", "Issues belonging to a project"},
		{"backlog:///issue/{issueIdOrKey}", "Backlog Issue", "A single issue by id or key"},
		{"backlog:///issue/{issueIdOrKey}/comments", "Backlog Issue Comments", "Comments on an issue"},
	}
	for _, tpl := range templates {
		reg.AddResourceTemplate(mcp.NewResourceTemplate(
			tpl.uri,
			tpl.name,
			mcp.WithTemplateDescription(tpl.description),
			mcp.WithTemplateMIMEType("application/json"),
		), h.Read)
	}
}

// SyncProjects fetches the current project set and publishes one
// resource descriptor per project, name and description pulled live.
// Failures are returned to the caller — never swallowed.
func (h *Handler) SyncProjects(ctx context.Context) error {
	projects, err := h.client.Projects(ctx)
	if err != nil {
		log.Printf("WARNING: resource listing: syncing projects: %v", err)
		return fmt.Errorf("syncing project resources: %w", err)
	}
	h.publishProjects(projects)
	return nil
}

// publishProjects registers a descriptor per project. AddResource
// replaces by URI, so repeated syncs converge on the current set.
func (h *Handler) publishProjects(projects []backlog.Project) {
	if h.reg == nil {
		return
	}
	for _, p := range projects {
		h.reg.AddResource(mcp.NewResource(
			projectURI(strconv.Itoa(p.ID)),
			p.Name,
			mcp.WithResourceDescription(p.Description),
			mcp.WithMIMEType("application/json"),
		), h.Read)
	}
}

// Read resolves a resource URI to a backend fetch and a JSON
// projection. Errors propagate to the host and abort the request.
func (h *Handler) Read(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	uri := req.Params.URI
	path, err := parseURI(uri)
	if err != nil {
		log.Printf("WARNING: resource read %s: %v", uri, err)
		return nil, err
	}

	var payload any
	switch path.kind {
	case pathProjects:
		payload, err = h.readProjects(ctx)
	case pathProject:
		payload, err = h.readProject(ctx, path.id)
	case pathProjectIssues:
		payload, err = h.readProjectIssues(ctx, path.id)
	case pathIssue:
		payload, err = h.readIssue(ctx, path.id)
	case pathIssueComments:
		payload, err = h.readIssueComments(ctx, path.id)
	}
	if err != nil {
		log.Printf("WARNING: resource read %s: %v", uri, err)
		return nil, err
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource %s: %w", uri, err)
	}
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

func (h *Handler) readProjects(ctx context.Context) (any, error) {
	projects, err := h.client.Projects(ctx)
	if err != nil {
		return nil, err
	}
	views := make([]projectView, 0, len(projects))
	for _, p := range projects {
		views = append(views, newProjectView(p))
	}
	// The advertised resource list tracks the live project set; a
	// successful read is the natural point to refresh it.
	h.publishProjects(projects)
	return views, nil
}

func (h *Handler) readProject(ctx context.Context, idOrKey string) (any, error) {
	project, err := h.client.Project(ctx, idOrKey)
	if err != nil {
		return nil, err
	}
	return newProjectView(*project), nil
}

func (h *Handler) readProjectIssues(ctx context.Context, idOrKey string) (any, error) {
	issues, err := h.client.Issues(ctx, idOrKey)
	if err != nil {
		return nil, err
	}
	views := make([]issueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, newIssueView(issue))
	}
	return views, nil
}

func (h *Handler) readIssue(ctx context.Context, idOrKey string) (any, error) {
	issue, err := h.client.Issue(ctx, idOrKey)
	if err != nil {
		return nil, err
	}
	return newIssueView(*issue), nil
}

func (h *Handler) readIssueComments(ctx context.Context, issueID string) (any, error) {
	comments, err := h.client.Comments(ctx, issueID)
	if err != nil {
		return nil, err
	}
	views := make([]commentView, 0, len(comments))
	for _, comment := range comments {
		views = append(views, newCommentView(comment, issueID))
	}
	return views, nil
}
