package deepsolve

import "errors"

var (
	// ErrNotImplemented is returned when an explicit plan is supplied
	// together with a planner under dynamic solving. The combination is part
	// of the documented contract but has no defined behavior yet.
	ErrNotImplemented = errors.New("dynamic execution of a given plan with a planner is not implemented")

	// ErrInvalidConfig is returned for any plan/planner/dynamic input
	// combination outside the documented dispatch table.
	ErrInvalidConfig = errors.New("invalid plan-planner-dynamic combination")

	// ErrInvalidKnowledge is returned by AddKnowledgeAny for values that are
	// neither a string nor a set of strings.
	ErrInvalidKnowledge = errors.New("knowledge must be a string or a set of strings")
)
