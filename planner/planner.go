package planner

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/hupe1980/deepsolve/core"
	"github.com/hupe1980/deepsolve/internal/util"
	"github.com/hupe1980/deepsolve/lm"
	"github.com/hupe1980/deepsolve/logging"
)

// DefaultMaxDepth is the decomposition budget used when none is configured.
const DefaultMaxDepth = 2

// DefaultMaxSubTasks caps how many sub-questions one decomposition may produce.
const DefaultMaxSubTasks = 4

// Options configures an AutoPlanner.
type Options struct {
	// MaxDepth is the remaining permitted recursive decomposition levels.
	MaxDepth int
	// MaxSubTasks caps the number of sub-questions per decomposition level.
	MaxSubTasks int
	// Logger receives planning diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// AutoPlanner is an LM-driven core.Planner producing one-level hierarchical
// task decompositions. Depth-adjusted copies share the underlying model.
type AutoPlanner struct {
	lm   lm.LM
	opts Options
}

var _ core.Planner = (*AutoPlanner)(nil)

// New constructs an AutoPlanner with optional overrides.
func New(l lm.LM, optFns ...func(o *Options)) *AutoPlanner {
	opts := Options{
		MaxDepth:    DefaultMaxDepth,
		MaxSubTasks: DefaultMaxSubTasks,
		Logger:      logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxDepth < 0 {
		opts.MaxDepth = 0
	}
	return &AutoPlanner{lm: l, opts: opts}
}

// MaxDepth implements core.Planner.
func (p *AutoPlanner) MaxDepth() int { return p.opts.MaxDepth }

// OneLevelDeep returns a copy configured to decompose only once more.
func (p *AutoPlanner) OneLevelDeep() core.Planner {
	return p.withDepth(1)
}

// OneFewerLevelDeep returns a copy with one less level of allowed depth.
func (p *AutoPlanner) OneFewerLevelDeep() core.Planner {
	depth := p.opts.MaxDepth - 1
	if depth < 0 {
		depth = 0
	}
	return p.withDepth(depth)
}

func (p *AutoPlanner) withDepth(depth int) *AutoPlanner {
	opts := p.opts
	opts.MaxDepth = depth
	return &AutoPlanner{lm: p.lm, opts: opts}
}

// subTaskSpec is the JSON shape the decomposition prompt asks for.
type subTaskSpec struct {
	Ask       string   `json:"ask"`
	Resources []string `json:"resources"`
}

// Plan implements core.Planner. It asks the model for an ordered one-level
// decomposition and binds each sub-question to the named resources.
func (p *AutoPlanner) Plan(ctx context.Context, problem string, resources []core.Resource, knowledge core.Knowledge) (*core.Plan, error) {
	prompt, err := util.RenderTemplate(decomposePromptTemplate, map[string]any{
		"Problem":           problem,
		"MaxSubTasks":       p.opts.MaxSubTasks,
		"ResourceOverviews": overviewLines(resources),
		"Knowledge":         knowledge.Items(),
	})
	if err != nil {
		return nil, fmt.Errorf("planner prompt template: %w", err)
	}

	completion, err := p.lm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("planner decomposition call: %w", err)
	}

	var specs []subTaskSpec
	if err := json.Unmarshal([]byte(util.ExtractJSON(completion)), &specs); err != nil {
		return nil, fmt.Errorf("planner decomposition is not valid JSON: %w", err)
	}
	if len(specs) > p.opts.MaxSubTasks {
		specs = specs[:p.opts.MaxSubTasks]
	}

	byName := resourcesByName(resources)
	subPlans := make([]*core.Plan, 0, len(specs))
	for _, spec := range specs {
		if spec.Ask == "" {
			continue
		}
		subPlans = append(subPlans, core.NewPlan(core.NewTask(spec.Ask, bindResources(spec.Resources, byName, resources))))
	}

	p.opts.Logger.Debug("plan produced", "problem", problem, "sub_tasks", len(subPlans))

	return core.NewPlan(core.NewTask(problem, resources), subPlans...), nil
}

// UpdatePlanResources implements core.Planner. It re-binds the supplied
// plan's resources without altering its structure.
func (p *AutoPlanner) UpdatePlanResources(ctx context.Context, plan *core.Plan, problem string, resources []core.Resource, knowledge core.Knowledge) (*core.Plan, error) {
	asks := make([]string, len(plan.SubPlans))
	for i, sp := range plan.SubPlans {
		asks[i] = sp.Task.Ask
	}

	prompt, err := util.RenderTemplate(updateResourcesPromptTemplate, map[string]any{
		"Problem":           problem,
		"Asks":              asks,
		"ResourceOverviews": overviewLines(resources),
		"Knowledge":         knowledge.Items(),
	})
	if err != nil {
		return nil, fmt.Errorf("planner prompt template: %w", err)
	}

	completion, err := p.lm.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("planner resource update call: %w", err)
	}

	var bindings [][]string
	if err := json.Unmarshal([]byte(util.ExtractJSON(completion)), &bindings); err != nil {
		return nil, fmt.Errorf("planner resource update is not valid JSON: %w", err)
	}

	byName := resourcesByName(resources)
	plan.Task.Resources = resources
	for i, sp := range plan.SubPlans {
		if i < len(bindings) {
			sp.Task.Resources = bindResources(bindings[i], byName, resources)
		} else {
			sp.Task.Resources = resources
		}
	}
	return plan, nil
}

// overviewLines renders resource overviews as deterministic "name: overview" lines.
func overviewLines(resources []core.Resource) []string {
	overviews := core.ResourceOverviews(resources)
	names := make([]string, 0, len(overviews))
	for name := range overviews {
		names = append(names, name)
	}
	sort.Strings(names)
	lines := make([]string, len(names))
	for i, name := range names {
		lines[i] = fmt.Sprintf("%s: %s", name, overviews[name])
	}
	return lines
}

func resourcesByName(resources []core.Resource) map[string]core.Resource {
	byName := make(map[string]core.Resource, len(resources))
	for _, r := range resources {
		byName[r.UniqueName()] = r
	}
	return byName
}

// bindResources resolves resource names to resources, preserving the agent's
// resource order. Unknown names are ignored; an empty or fully unknown
// binding falls back to the full resource set so a sub-task never silently
// loses access to information.
func bindResources(names []string, byName map[string]core.Resource, all []core.Resource) []core.Resource {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		if _, ok := byName[n]; ok {
			wanted[n] = true
		}
	}
	if len(wanted) == 0 {
		return all
	}
	bound := make([]core.Resource, 0, len(wanted))
	for _, r := range all {
		if wanted[r.UniqueName()] {
			bound = append(bound, r)
		}
	}
	return bound
}
