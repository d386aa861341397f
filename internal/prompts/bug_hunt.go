package prompts

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/kinosai/backlog-mcp/internal/backlog"
	"github.com/mark3labs/mcp-go/mcp"
)

// bugKeyword is the fixed, case-insensitive keyword the aggregation
// scans for in issue summaries and descriptions.
const bugKeyword = "bug"

// maxConcurrentFetches bounds the per-project fan-out so a space with
// hundreds of projects cannot stampede the backend.
const maxConcurrentFetches = 4

// BugHuntPrompt handles the find_bug_issues MCP prompt. It is the one
// place this server fans out backend calls: one issue fetch per
// project, joined before the prompt is produced. If any single fetch
// fails, the whole aggregation fails — no partial results.
type BugHuntPrompt struct {
	client *backlog.Client
}

// NewBugHuntPrompt creates a BugHuntPrompt backed by the given client.
func NewBugHuntPrompt(client *backlog.Client) *BugHuntPrompt {
	return &BugHuntPrompt{client: client}
}

// Definition returns the MCP prompt definition for registration.
func (p *BugHuntPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("find_bug_issues",
		mcp.WithPromptDescription(
			"Scan every project's issues for the keyword \"bug\" and build an "+
				"analysis prompt embedding each matching issue as a resource reference.",
		),
	)
}

// Handle fetches all projects, gathers their issues concurrently, and
// emits the matches followed by a fixed analysis instruction. Match
// order follows the project list, not any ranking — callers must not
// rely on a stable issue order.
func (p *BugHuntPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projects, err := p.client.Projects(ctx)
	if err != nil {
		log.Printf("WARNING: prompt find_bug_issues: listing projects: %v", err)
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	matches, err := p.gatherMatches(ctx, projects)
	if err != nil {
		log.Printf("WARNING: prompt find_bug_issues: %v", err)
		return nil, err
	}

	messages := []mcp.PromptMessage{
		{
			Role: mcp.RoleUser,
			Content: mcp.NewTextContent(fmt.Sprintf(
				"I scanned %d projects and found %d issues mentioning %q.",
				len(projects), len(matches), bugKeyword,
			)),
		},
	}
	for _, issue := range matches {
		data, err := json.Marshal(issue)
		if err != nil {
			return nil, fmt.Errorf("marshaling issue %d: %w", issue.ID, err)
		}
		messages = append(messages, mcp.PromptMessage{
			Role: mcp.RoleUser,
			Content: mcp.NewEmbeddedResource(mcp.TextResourceContents{
				URI:      "backlog:///issue/" + strconv.Itoa(issue.ID),
				MIMEType: "application/json",
				Text:     string(data),
			}),
		})
	}
	messages = append(messages, mcp.PromptMessage{
		Role: mcp.RoleUser,
		Content: mcp.NewTextContent(
			"Analyze these bug reports: group them by project, assess severity from the " +
				"summaries and statuses, and propose which should be fixed first. " +
				"Use get_issue_comments for any issue where the discussion matters.",
		),
	})

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Issues mentioning %q across all projects", bugKeyword),
		Messages:    messages,
	}, nil
}

// gatherMatches fetches each project's issues concurrently (bounded by
// maxConcurrentFetches) and keeps those whose summary or description
// contains the keyword.
func (p *BugHuntPrompt) gatherMatches(ctx context.Context, projects []backlog.Project) ([]backlog.Issue, error) {
	perProject := make([][]backlog.Issue, len(projects))
	errs := make([]error, len(projects))

	sem := make(chan struct{}, maxConcurrentFetches)
	var wg sync.WaitGroup
	for i, project := range projects {
		wg.Add(1)
		go func(i int, project backlog.Project) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			perProject[i], errs[i] = p.client.Issues(ctx, strconv.Itoa(project.ID))
		}(i, project)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("fetching issues for project %d: %w", projects[i].ID, err)
		}
	}

	var matches []backlog.Issue
	for _, issues := range perProject {
		for _, issue := range issues {
			if containsKeyword(issue) {
				matches = append(matches, issue)
			}
		}
	}
	return matches, nil
}

func containsKeyword(issue backlog.Issue) bool {
	return strings.Contains(strings.ToLower(issue.Summary), bugKeyword) ||
		strings.Contains(strings.ToLower(issue.Description), bugKeyword)
}
