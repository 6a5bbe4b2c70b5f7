package core

import "context"

// Reasoner attempts to resolve a task directly given accumulated knowledge.
//
// Reason sets the task's status (Resolved or NeedingDecomposition) and result
// (final or partial text) as part of the call, and returns the result text.
// The engine calls Reason at most once per task instance. Any internal error
// (typically an underlying model call failure) propagates uncaught.
type Reasoner interface {
	Reason(ctx context.Context, task *Task, knowledge Knowledge) (string, error)
}

// Planner produces one-level decompositions of a problem and tracks the
// remaining recursion budget.
type Planner interface {
	// Plan produces exactly one level of decomposition: the returned plan's
	// sub-plans are leaves from the planner's perspective, even if the
	// caller later recurses into them.
	Plan(ctx context.Context, problem string, resources []Resource, knowledge Knowledge) (*Plan, error)

	// UpdatePlanResources re-binds an externally supplied plan's resources
	// without altering its structure.
	UpdatePlanResources(ctx context.Context, plan *Plan, problem string, resources []Resource, knowledge Knowledge) (*Plan, error)

	// OneLevelDeep returns a planner configured to decompose only once more.
	OneLevelDeep() Planner

	// OneFewerLevelDeep returns a planner whose depth budget is this
	// planner's minus one; used for all recursive descent.
	OneFewerLevelDeep() Planner

	// MaxDepth reports the remaining permitted decomposition levels.
	// Zero means no further decomposition is permitted.
	MaxDepth() int
}
