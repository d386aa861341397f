package resources

import (
	"fmt"
	"strings"
)

// scheme is the resource URI scheme. All resource URIs look like
// backlog:///<kind>/<id>[/<subkind>] — case-sensitive, no query part.
const scheme = "backlog://"

// pathKind enumerates every URI shape the router recognizes. Parsing
// produces exactly one of these or an error — there is no implicit
// "maybe matched" state.
type pathKind int

const (
	pathProjects pathKind = iota
	pathProject
	pathProjectIssues
	pathIssue
	pathIssueComments
)

// resourcePath is a parsed resource URI.
type resourcePath struct {
	kind pathKind
	// id is the project or issue identifier (numeric id or key),
	// empty for the projects collection.
	id string
}

// parseURI maps a URI onto the explicit set of recognized path shapes.
// Unrecognized schemes and kinds fail with ErrNotFound; a recognized
// kind missing its required id fails with ErrInvalidRequest.
func parseURI(uri string) (resourcePath, error) {
	rest, ok := strings.CutPrefix(uri, scheme)
	if !ok {
		return resourcePath{}, fmt.Errorf("%w: unsupported URI %q", ErrNotFound, uri)
	}
	segments := strings.Split(strings.Trim(rest, "/"), "/")

	switch segments[0] {
	case "projects":
		if len(segments) == 1 {
			return resourcePath{kind: pathProjects}, nil
		}
	case "project":
		if len(segments) == 1 || segments[1] == "" {
			return resourcePath{}, fmt.Errorf("%w: project id is required in %q", ErrInvalidRequest, uri)
		}
		switch {
		case len(segments) == 2:
			return resourcePath{kind: pathProject, id: segments[1]}, nil
		case len(segments) == 3 && segments[2] == "issues":
			return resourcePath{kind: pathProjectIssues, id: segments[1]}, nil
		}
	case "issue":
		if len(segments) == 1 || segments[1] == "" {
			return resourcePath{}, fmt.Errorf("%w: issue id is required in %q", ErrInvalidRequest, uri)
		}
		switch {
		case len(segments) == 2:
			return resourcePath{kind: pathIssue, id: segments[1]}, nil
		case len(segments) == 3 && segments[2] == "comments":
			return resourcePath{kind: pathIssueComments, id: segments[1]}, nil
		}
	}
	return resourcePath{}, fmt.Errorf("%w: unrecognized resource path %q", ErrNotFound, uri)
}

// URI builders. Self links always use the canonical numeric id so a
// re-fetch of the link lands on the same entity regardless of whether
// the original request used an id or a key.

func projectsURI() string { return "backlog:///projects" }

func projectURI(id string) string { return "backlog:///project/" + id }

func projectIssuesURI(id string) string { return "backlog:///project/" + id + "/issues" }

func issueURI(id string) string { return "backlog:///issue/" + id }

func issueCommentsURI(id string) string { return "backlog:///issue/" + id + "/comments" }
