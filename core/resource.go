package core

import "context"

// Resource is an opaque informational source an agent can draw on when
// answering questions. Implementations expose a unique name and a short
// overview of their content; the engine aggregates these into a
// name-to-overview mapping for planner consumption without interpreting the
// content itself.
type Resource interface {
	// UniqueName identifies the resource within an agent's resource set.
	UniqueName() string
	// Overview returns a short description of what the resource contains.
	Overview() string
	// Answer queries the resource for information relevant to the question.
	Answer(ctx context.Context, question string) (string, error)
}

// ResourceOverviews aggregates resources into a name-to-overview map.
func ResourceOverviews(resources []Resource) map[string]string {
	overviews := make(map[string]string, len(resources))
	for _, r := range resources {
		overviews[r.UniqueName()] = r.Overview()
	}
	return overviews
}
