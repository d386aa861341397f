package resources

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// newFixtureBackend serves a fixed Backlog space: one project (id 1,
// key DEV) with one issue (id 7) carrying one comment.
func newFixtureBackend(t *testing.T) *backlog.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/projects", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []map[string]any{
			{"id": 1, "projectKey": "DEV", "name": "Dev", "description": "d"},
		})
	})
	mux.HandleFunc("/api/v2/projects/1", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, map[string]any{"id": 1, "projectKey": "DEV", "name": "Dev", "description": "d"})
	})
	issue := map[string]any{
		"id": 7, "projectId": 1, "issueKey": "DEV-7", "summary": "Crash on save",
		"description": "steps", "status": map[string]any{"id": 1, "name": "Open"},
	}
	mux.HandleFunc("/api/v2/issues", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []map[string]any{issue})
	})
	mux.HandleFunc("/api/v2/issues/7", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, issue)
	})
	mux.HandleFunc("/api/v2/issues/7/comments", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []map[string]any{
			{
				"id": 21, "content": "fixed in trunk",
				"created": "2024-01-02T03:04:05Z", "updated": "2024-01-02T03:04:05Z",
				"createdUser": map[string]any{"id": 11, "name": "alice", "roleType": 1},
			},
		})
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return backlog.NewClient(ts.URL, "k")
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatalf("encode fixture: %v", err)
	}
}

// read runs Handler.Read for a URI and decodes the JSON text payload.
func read(t *testing.T, h *Handler, uri string, out any) {
	t.Helper()
	req := mcp.ReadResourceRequest{}
	req.Params.URI = uri

	contents, err := h.Read(context.Background(), req)
	if err != nil {
		t.Fatalf("Read(%s): %v", uri, err)
	}
	if len(contents) != 1 {
		t.Fatalf("Read(%s): %d contents, want 1", uri, len(contents))
	}
	tc, ok := contents[0].(mcp.TextResourceContents)
	if !ok {
		t.Fatalf("Read(%s): contents type %T", uri, contents[0])
	}
	if tc.URI != uri {
		t.Errorf("contents URI = %q, want %q", tc.URI, uri)
	}
	if tc.MIMEType != "application/json" {
		t.Errorf("MIMEType = %q", tc.MIMEType)
	}
	if err := json.Unmarshal([]byte(tc.Text), out); err != nil {
		t.Fatalf("Read(%s): payload not JSON: %v", uri, err)
	}
}

func TestReadProjects(t *testing.T) {
	h := NewHandler(newFixtureBackend(t))

	var views []projectView
	read(t, h, "backlog:///projects", &views)

	if len(views) != 1 {
		t.Fatalf("got %d projects, want 1", len(views))
	}
	p := views[0]
	if p.ID != 1 || p.ProjectKey != "DEV" || p.Name != "Dev" || p.Description != "d" {
		t.Errorf("unexpected project view: %+v", p)
	}
	if p.Links.Self != "backlog:///project/1" {
		t.Errorf("self = %q", p.Links.Self)
	}
	if p.Links.Issues != "backlog:///project/1/issues" {
		t.Errorf("issues = %q", p.Links.Issues)
	}
}

func TestReadProject_SelfRefetchesSameEntity(t *testing.T) {
	h := NewHandler(newFixtureBackend(t))

	var view projectView
	read(t, h, "backlog:///project/1", &view)

	// Reading the self link must produce the same entity.
	var again projectView
	read(t, h, view.Links.Self, &again)
	if again.ID != view.ID || again.ProjectKey != view.ProjectKey {
		t.Errorf("self link fetched %+v, want %+v", again, view)
	}
}

func TestReadProjectIssues(t *testing.T) {
	h := NewHandler(newFixtureBackend(t))

	var views []issueView
	read(t, h, "backlog:///project/1/issues", &views)

	if len(views) != 1 {
		t.Fatalf("got %d issues, want 1", len(views))
	}
	issue := views[0]
	if issue.IssueKey != "DEV-7" || issue.Status.Name != "Open" {
		t.Errorf("unexpected issue view: %+v", issue)
	}
	if issue.Links.Self != "backlog:///issue/7" {
		t.Errorf("self = %q", issue.Links.Self)
	}
	if issue.Links.Comments != "backlog:///issue/7/comments" {
		t.Errorf("comments = %q", issue.Links.Comments)
	}
	if issue.Links.Project != "backlog:///project/1" {
		t.Errorf("project = %q", issue.Links.Project)
	}
}

func TestReadIssueComments(t *testing.T) {
	h := NewHandler(newFixtureBackend(t))

	var views []commentView
	read(t, h, "backlog:///issue/7/comments", &views)

	if len(views) != 1 {
		t.Fatalf("got %d comments, want 1", len(views))
	}
	c := views[0]
	if c.ID != 21 || c.Content != "fixed in trunk" || c.CreatedUser.Name != "alice" {
		t.Errorf("unexpected comment view: %+v", c)
	}
	if c.Links.Issue != "backlog:///issue/7" {
		t.Errorf("issue link = %q", c.Links.Issue)
	}
	if c.Links.Self != "backlog:///issue/7/comments" {
		t.Errorf("self = %q", c.Links.Self)
	}
}

func TestRead_UnrecognizedPath(t *testing.T) {
	h := NewHandler(newFixtureBackend(t))

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "backlog:///widget/5"
	_, err := h.Read(context.Background(), req)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestRead_MissingProjectID(t *testing.T) {
	h := NewHandler(newFixtureBackend(t))

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "backlog:///project"
	_, err := h.Read(context.Background(), req)
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("error = %v, want ErrInvalidRequest", err)
	}
}

func TestRead_BackendFailurePropagates(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)
	h := NewHandler(backlog.NewClient(ts.URL, "k"))

	req := mcp.ReadResourceRequest{}
	req.Params.URI = "backlog:///projects"
	_, err := h.Read(context.Background(), req)
	var berr *backlog.Error
	if !errors.As(err, &berr) {
		t.Errorf("error = %v, want *backlog.Error", err)
	}
}

// fakeRegistrar records published resources and templates.
type fakeRegistrar struct {
	resources []mcp.Resource
	templates []mcp.ResourceTemplate
}

func (f *fakeRegistrar) AddResource(r mcp.Resource, _ server.ResourceHandlerFunc) {
	f.resources = append(f.resources, r)
}

func (f *fakeRegistrar) AddResourceTemplate(tpl mcp.ResourceTemplate, _ server.ResourceTemplateHandlerFunc) {
	f.templates = append(f.templates, tpl)
}

func TestRegisterAndSyncProjects(t *testing.T) {
	h := NewHandler(newFixtureBackend(t))
	reg := &fakeRegistrar{}
	h.Register(reg)

	if len(reg.resources) != 1 || reg.resources[0].URI != "backlog:///projects" {
		t.Fatalf("static resources = %+v", reg.resources)
	}
	if len(reg.templates) != 4 {
		t.Fatalf("got %d templates, want 4", len(reg.templates))
	}

	if err := h.SyncProjects(context.Background()); err != nil {
		t.Fatalf("SyncProjects: %v", err)
	}
	// One live descriptor per project, name/description pulled live.
	if len(reg.resources) != 2 {
		t.Fatalf("resources after sync = %d, want 2", len(reg.resources))
	}
	live := reg.resources[1]
	if live.URI != "backlog:///project/1" || live.Name != "Dev" || live.Description != "d" {
		t.Errorf("live descriptor = %+v", live)
	}
}

func TestSyncProjects_FailureSurfaced(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(ts.Close)
	h := NewHandler(backlog.NewClient(ts.URL, "k"))
	h.Register(&fakeRegistrar{})

	if err := h.SyncProjects(context.Background()); err == nil {
		t.Error("expected listing failure to surface")
	}
}
