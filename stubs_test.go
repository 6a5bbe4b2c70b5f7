package deepsolve

import (
	"context"
	"strings"

	"github.com/hupe1980/deepsolve/core"
)

// reasonScript tells the stub reasoner how to handle one ask.
type reasonScript struct {
	result    string
	decompose bool
}

// stubReasoner resolves or decomposes tasks per script, recording every ask
// and task it saw in order. Asks without a script entry (synthesis asks built
// by plan execution, for example) fall back to a deterministic answer.
type stubReasoner struct {
	scripts  map[string]reasonScript
	fallback func(ask string) reasonScript
	asks     []string
	tasks    []*core.Task
	err      error
}

func (r *stubReasoner) Reason(_ context.Context, task *core.Task, _ core.Knowledge) (string, error) {
	if r.err != nil {
		return "", r.err
	}
	r.asks = append(r.asks, task.Ask)
	r.tasks = append(r.tasks, task)

	script, ok := r.scripts[task.Ask]
	if !ok {
		if r.fallback != nil {
			script = r.fallback(task.Ask)
		} else {
			script = reasonScript{result: "ans:" + firstLine(task.Ask)}
		}
	}
	if script.decompose {
		if err := task.MarkNeedingDecomposition(script.result); err != nil {
			return "", err
		}
	} else {
		if err := task.Resolve(script.result); err != nil {
			return "", err
		}
	}
	return task.Result, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// plannerRecorder captures calls across all depth-adjusted copies of a stub
// planner tree.
type plannerRecorder struct {
	planProblems []string
	planDepths   []int
	plans        []*core.Plan
	updates      []*core.Plan
}

// stubPlanner decomposes problems per the decomps map. OneLevelDeep returns
// the planner itself so Plan records the depth of the descent that requested
// the decomposition.
type stubPlanner struct {
	depth   int
	decomps map[string][]string
	rec     *plannerRecorder
	planErr error
}

func newStubPlanner(depth int, decomps map[string][]string) *stubPlanner {
	return &stubPlanner{depth: depth, decomps: decomps, rec: &plannerRecorder{}}
}

func (p *stubPlanner) MaxDepth() int { return p.depth }

func (p *stubPlanner) OneLevelDeep() core.Planner { return p }

func (p *stubPlanner) OneFewerLevelDeep() core.Planner {
	depth := p.depth - 1
	if depth < 0 {
		depth = 0
	}
	return &stubPlanner{depth: depth, decomps: p.decomps, rec: p.rec, planErr: p.planErr}
}

func (p *stubPlanner) Plan(_ context.Context, problem string, resources []core.Resource, _ core.Knowledge) (*core.Plan, error) {
	if p.planErr != nil {
		return nil, p.planErr
	}
	p.rec.planProblems = append(p.rec.planProblems, problem)
	p.rec.planDepths = append(p.rec.planDepths, p.depth)

	subPlans := make([]*core.Plan, 0, len(p.decomps[problem]))
	for _, ask := range p.decomps[problem] {
		subPlans = append(subPlans, core.NewPlan(core.NewTask(ask, resources)))
	}
	plan := core.NewPlan(core.NewTask(problem, resources), subPlans...)
	p.rec.plans = append(p.rec.plans, plan)
	return plan, nil
}

func (p *stubPlanner) UpdatePlanResources(_ context.Context, plan *core.Plan, _ string, resources []core.Resource, _ core.Knowledge) (*core.Plan, error) {
	plan.Task.Resources = resources
	for _, sp := range plan.SubPlans {
		sp.Task.Resources = resources
	}
	p.rec.updates = append(p.rec.updates, plan)
	return plan, nil
}

type stubResource struct{ name, overview string }

func (r stubResource) UniqueName() string { return r.name }
func (r stubResource) Overview() string   { return r.overview }
func (r stubResource) Answer(context.Context, string) (string, error) {
	return "", nil
}
