package deepsolve

import (
	"context"
	"fmt"

	"github.com/hupe1980/deepsolve/core"
)

// SolveMode is the strategy selected from the (plan, planner, dynamic)
// inputs. Every input combination maps to exactly one mode.
type SolveMode int

const (
	// SolveModeDirect reasons on a fresh task; no plan, no planner.
	SolveModeDirect SolveMode = iota
	// SolveModeAutoStatic generates a plan and executes it literally.
	SolveModeAutoStatic
	// SolveModeAutoDynamic runs the recursive decomposition algorithm.
	SolveModeAutoDynamic
	// SolveModeGivenStatic executes a supplied plan literally, without
	// resource updating.
	SolveModeGivenStatic
	// SolveModeGivenUpdatedStatic re-binds a supplied plan's resources via
	// the planner, then executes it literally.
	SolveModeGivenUpdatedStatic
	// SolveModeGivenDynamic is the documented-but-unimplemented combination
	// of a supplied plan with a planner under dynamic solving.
	SolveModeGivenDynamic
)

// String returns the mode name.
func (m SolveMode) String() string {
	switch m {
	case SolveModeDirect:
		return "direct"
	case SolveModeAutoStatic:
		return "auto-static"
	case SolveModeAutoDynamic:
		return "auto-dynamic"
	case SolveModeGivenStatic:
		return "given-static"
	case SolveModeGivenUpdatedStatic:
		return "given-updated-static"
	case SolveModeGivenDynamic:
		return "given-dynamic"
	default:
		return "unknown"
	}
}

// solveModeFor derives the solve mode deterministically from the three
// inputs, so every combination has a defined outcome and none falls through
// to a generic error by accident.
func solveModeFor(hasPlan, hasPlanner, dynamic bool) (SolveMode, error) {
	switch {
	case !hasPlan && !hasPlanner:
		return SolveModeDirect, nil
	case !hasPlan && hasPlanner && !dynamic:
		return SolveModeAutoStatic, nil
	case !hasPlan && hasPlanner && dynamic:
		return SolveModeAutoDynamic, nil
	case hasPlan && !hasPlanner:
		return SolveModeGivenStatic, nil
	case hasPlan && hasPlanner && !dynamic:
		return SolveModeGivenUpdatedStatic, nil
	case hasPlan && hasPlanner && dynamic:
		return SolveModeGivenDynamic, nil
	default:
		return 0, ErrInvalidConfig
	}
}

// Solve answers the posed problem.
//
// A solution plan can optionally be supplied, or is generated automatically
// when the agent has a planner. The plan, supplied or generated, is executed
// dynamically (with as-needed further task decomposition) or statically
// (literally per the plan) according to the dynamic flag.
func (a *Agent) Solve(ctx context.Context, problem string, plan *core.Plan, dynamic bool) (string, error) {
	mode, err := solveModeFor(plan != nil, a.planner != nil, dynamic)
	if err != nil {
		return "", err
	}
	a.logger.Debug("solve dispatched", "mode", mode.String(), "problem", problem)

	switch mode {
	case SolveModeDirect:
		return a.reasoner.Reason(ctx, core.NewTask(problem, a.resources), a.knowledge)

	case SolveModeAutoStatic:
		p, err := a.planner.Plan(ctx, problem, a.resources, a.knowledge)
		if err != nil {
			return "", err
		}
		a.logger.Info("executing generated plan", "plan", p.Outline())
		return p.Execute(ctx, a.reasoner, nil, a.knowledge)

	case SolveModeAutoDynamic:
		return a.SolveDynamically(ctx, problem, nil, nil)

	case SolveModeGivenStatic:
		a.logger.Info("executing supplied plan", "plan", plan.Outline())
		return plan.Execute(ctx, a.reasoner, nil, a.knowledge)

	case SolveModeGivenUpdatedStatic:
		updated, err := a.planner.UpdatePlanResources(ctx, plan, problem, a.resources, a.knowledge)
		if err != nil {
			return "", err
		}
		a.logger.Info("executing supplied plan with updated resources", "plan", updated.Outline())
		return updated.Execute(ctx, a.reasoner, nil, a.knowledge)

	case SolveModeGivenDynamic:
		return "", ErrNotImplemented

	default:
		return "", ErrInvalidConfig
	}
}

// SolveDynamically answers the posed problem with as-needed recursive
// decomposition.
//
// The reasoner first attempts the problem directly. If it signals that the
// task needs decomposition and the active planner still has depth budget,
// the problem is decomposed one level, each sub-problem is solved
// recursively in order with forward-only sibling context, and the sub-plan's
// results are synthesized into the final answer. Recursion depth is bounded
// by the planner's strictly decrementing max depth, never by problem
// complexity.
//
// The planner argument overrides the agent's planner for this branch (nil
// uses the agent's). otherResults carries already-resolved sibling
// ask/answer pairs from the enclosing decomposition level; it is empty for a
// top-level call.
func (a *Agent) SolveDynamically(ctx context.Context, problem string, planner core.Planner, otherResults []core.AskAnsPair) (string, error) {
	task := core.NewTask(problem, a.resources)
	if _, err := a.reasoner.Reason(ctx, task, a.knowledge); err != nil {
		return "", fmt.Errorf("reasoning %q: %w", problem, err)
	}

	if planner == nil {
		planner = a.planner
	}
	if task.Status != core.TaskStatusNeedingDecomposition || planner == nil || planner.MaxDepth() <= 0 {
		// Direct answer stands, whether confident or out of depth budget.
		return task.Result, nil
	}

	// All deeper recursion uses one less level of allowed depth.
	subPlanner := planner.OneFewerLevelDeep()

	planOneLevelDeep, err := planner.OneLevelDeep().Plan(ctx, problem, a.resources, a.knowledge)
	if err != nil {
		return "", fmt.Errorf("decomposing %q: %w", problem, err)
	}
	a.logger.LogDecomposition(problem, subPlanner.MaxDepth(), len(planOneLevelDeep.SubPlans))

	subResults := make([]core.AskAnsPair, 0, len(planOneLevelDeep.SubPlans))
	for _, subPlan := range planOneLevelDeep.SubPlans {
		subTask := subPlan.Task
		result, err := a.SolveDynamically(ctx, subTask.Ask, subPlanner, subResults)
		if err != nil {
			return "", err
		}
		if err := subTask.Complete(result); err != nil {
			return "", err
		}
		subResults = append(subResults, core.AskAnsPair{Ask: subTask.Ask, Answer: subTask.Result})
	}

	result, err := planOneLevelDeep.Execute(ctx, a.reasoner, otherResults, a.knowledge)
	if err != nil {
		return "", fmt.Errorf("synthesizing %q: %w", problem, err)
	}
	if err := task.Complete(result); err != nil {
		return "", err
	}
	return task.Result, nil
}
