package prompts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
)

func TestExplorePrompt_Static(t *testing.T) {
	p := NewExplorePrompt()

	def := p.Definition()
	if def.Name != "explore_backlog" {
		t.Errorf("name = %q", def.Name)
	}

	result, err := p.Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if len(result.Messages) != 1 {
		t.Fatalf("got %d messages, want 1", len(result.Messages))
	}
	text := result.Messages[0].Content.(mcp.TextContent).Text
	for _, tool := range []string{"list_projects", "get_project_issues", "get_issue_details"} {
		if !strings.Contains(text, tool) {
			t.Errorf("prompt text does not mention %s", tool)
		}
	}

	// Static prompts are idempotent across calls.
	again, err := p.Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle (second call): %v", err)
	}
	if again.Messages[0].Content.(mcp.TextContent).Text != text {
		t.Error("static prompt changed between calls")
	}
}

// newBugFixtureClient serves two projects; project 1 has an issue
// mentioning "Bug" in the summary, project 2 one mentioning it only in
// the description, plus one unrelated issue.
func newBugFixtureClient(t *testing.T) *backlog.Client {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/projects", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []map[string]any{
			{"id": 1, "projectKey": "DEV", "name": "Dev"},
			{"id": 2, "projectKey": "OPS", "name": "Ops"},
		})
	})
	mux.HandleFunc("/api/v2/issues", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("projectId[]") {
		case "1":
			writeJSON(t, w, []map[string]any{
				{"id": 7, "projectId": 1, "issueKey": "DEV-7", "summary": "Bug: crash on save"},
				{"id": 8, "projectId": 1, "issueKey": "DEV-8", "summary": "Add dark mode"},
			})
		case "2":
			writeJSON(t, w, []map[string]any{
				{"id": 9, "projectId": 2, "issueKey": "OPS-9", "summary": "Deploy fails", "description": "probably a BUG in the script"},
			})
		default:
			writeJSON(t, w, []map[string]any{})
		}
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

func TestBugHuntPrompt_AggregatesMatches(t *testing.T) {
	p := NewBugHuntPrompt(newBugFixtureClient(t))

	result, err := p.Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}

	// Intro + two embedded matches + analysis instruction.
	if len(result.Messages) != 4 {
		t.Fatalf("got %d messages, want 4", len(result.Messages))
	}

	intro := result.Messages[0].Content.(mcp.TextContent).Text
	if !strings.Contains(intro, "2 projects") || !strings.Contains(intro, "2 issues") {
		t.Errorf("intro = %q", intro)
	}

	uris := map[string]bool{}
	for _, msg := range result.Messages[1:3] {
		embedded, ok := msg.Content.(mcp.EmbeddedResource)
		if !ok {
			t.Fatalf("match content type %T, want EmbeddedResource", msg.Content)
		}
		tc := embedded.Resource.(mcp.TextResourceContents)
		uris[tc.URI] = true

		var issue backlog.Issue
		if err := json.Unmarshal([]byte(tc.Text), &issue); err != nil {
			t.Fatalf("embedded issue not JSON: %v", err)
		}
	}
	// The case-insensitive keyword matches summary OR description;
	// DEV-8 must be filtered out.
	if !uris["backlog:///issue/7"] || !uris["backlog:///issue/9"] {
		t.Errorf("embedded URIs = %v", uris)
	}

	last := result.Messages[3].Content.(mcp.TextContent).Text
	if !strings.Contains(last, "Analyze") {
		t.Errorf("missing analysis instruction: %q", last)
	}
}

func TestBugHuntPrompt_SingleFetchFailureFailsAll(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v2/projects", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, []map[string]any{
			{"id": 1, "projectKey": "DEV", "name": "Dev"},
			{"id": 2, "projectKey": "OPS", "name": "Ops"},
		})
	})
	mux.HandleFunc("/api/v2/issues", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("projectId[]") == "2" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		writeJSON(t, w, []map[string]any{})
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	p := NewBugHuntPrompt(backlog.NewClient(ts.URL, "k"))
	if _, err := p.Handle(context.Background(), mcp.GetPromptRequest{}); err == nil {
		t.Error("expected aggregation to fail when one fetch fails")
	}
}

func TestBugHuntPrompt_ProjectListFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(ts.Close)

	p := NewBugHuntPrompt(backlog.NewClient(ts.URL, "k"))
	if _, err := p.Handle(context.Background(), mcp.GetPromptRequest{}); err == nil {
		t.Error("expected error when project listing fails")
	}
}
