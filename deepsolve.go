// Package deepsolve provides a problem-solving agent that answers open
// natural-language questions by combining direct reasoning with bounded
// recursive decomposition of hard problems into sub-problems.
//
// Most applications interact with this package by:
//  1. Creating an Agent via New() with a Reasoner, and optionally a Planner,
//     informational Resources and prior Knowledge
//  2. Posing problems through Solve (strategy chosen from the inputs) or
//     SolveDynamically (explicit recursive decomposition)
//  3. Growing the agent's knowledge between calls via AddKnowledge
//
// The agent delegates decomposition to its Planner and direct answering to
// its Reasoner; both are synchronous, potentially high-latency capabilities
// (typically remote model calls). Errors from either propagate unmodified to
// the caller, which owns any retry or fallback policy.
package deepsolve

import (
	"github.com/hupe1980/deepsolve/core"
	"github.com/hupe1980/deepsolve/logging"
)

// Options configures an Agent.
type Options struct {
	// Planner decomposes problems into solution plans. Nil means the agent
	// works without decomposition and always reasons directly.
	Planner core.Planner
	// Resources is the set of informational resources available for
	// answering information-querying questions.
	Resources []core.Resource
	// Knowledge seeds the agent's accumulated fact set.
	Knowledge []string
	// Logger receives solve diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Agent holds a planner, a reasoner, informational resources and accumulated
// knowledge, and orchestrates solving. Resources and knowledge are read-only
// for the duration of one Solve call; knowledge grows only through
// AddKnowledge between calls.
type Agent struct {
	planner   core.Planner
	reasoner  core.Reasoner
	resources []core.Resource
	knowledge core.Knowledge
	logger    *logging.SolveLogger
}

// New creates an Agent around the given reasoner with optional overrides.
func New(reasoner core.Reasoner, optFns ...func(o *Options)) *Agent {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Agent{
		planner:   opts.Planner,
		reasoner:  reasoner,
		resources: opts.Resources,
		knowledge: core.NewKnowledge(opts.Knowledge...),
		logger:    logging.NewSolveLogger(opts.Logger).WithComponent("agent"),
	}
}

// ResourceOverviews returns a name-to-overview mapping of the agent's
// informational resources.
func (a *Agent) ResourceOverviews() map[string]string {
	return core.ResourceOverviews(a.resources)
}

// Knowledge returns a copy of the agent's accumulated fact set.
func (a *Agent) Knowledge() core.Knowledge {
	k := core.NewKnowledge()
	k.Merge(a.knowledge)
	return k
}

// AddKnowledge adds facts to the agent's knowledge set. Adding a fact that
// is already known is a no-op.
func (a *Agent) AddKnowledge(facts ...string) {
	a.knowledge.Add(facts...)
}

// AddKnowledgeAny adds a dynamically typed value to the knowledge set. It
// accepts a single string or a set of strings (string slice, string set or
// core.Knowledge); anything else returns ErrInvalidKnowledge.
func (a *Agent) AddKnowledgeAny(v any) error {
	switch k := v.(type) {
	case string:
		a.knowledge.Add(k)
	case []string:
		a.knowledge.Add(k...)
	case map[string]struct{}:
		a.knowledge.Merge(k)
	case core.Knowledge:
		a.knowledge.Merge(k)
	default:
		return ErrInvalidKnowledge
	}
	return nil
}
