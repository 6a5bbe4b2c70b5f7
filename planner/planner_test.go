package planner

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/deepsolve/core"
	"github.com/hupe1980/deepsolve/lm"
)

// scriptedLM returns queued completions in order and records every prompt.
type scriptedLM struct {
	completions []string
	prompts     []string
	err         error
}

func (s *scriptedLM) Generate(_ context.Context, prompt string, _ ...lm.Message) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.prompts = append(s.prompts, prompt)
	if len(s.completions) == 0 {
		return "", errors.New("scriptedLM: no completion queued")
	}
	next := s.completions[0]
	s.completions = s.completions[1:]
	return next, nil
}

type namedResource struct{ name, overview string }

func (r namedResource) UniqueName() string { return r.name }
func (r namedResource) Overview() string   { return r.overview }
func (r namedResource) Answer(context.Context, string) (string, error) {
	return "", nil
}

func TestAutoPlanner_Plan(t *testing.T) {
	docs := namedResource{name: "docs", overview: "Product documentation"}
	db := namedResource{name: "db", overview: "Sales database"}
	model := &scriptedLM{completions: []string{
		`[{"ask": "What does the product do?", "resources": ["docs"]},
		  {"ask": "How many units sold?", "resources": ["db"]}]`,
	}}

	p := New(model)
	plan, err := p.Plan(context.Background(), "Is the product successful?", []core.Resource{docs, db}, core.NewKnowledge())

	require.NoError(t, err)
	assert.Equal(t, "Is the product successful?", plan.Task.Ask)
	assert.Len(t, plan.Task.Resources, 2)

	require.Len(t, plan.SubPlans, 2)
	assert.Equal(t, "What does the product do?", plan.SubPlans[0].Task.Ask)
	assert.Equal(t, []core.Resource{docs}, plan.SubPlans[0].Task.Resources)
	assert.Equal(t, "How many units sold?", plan.SubPlans[1].Task.Ask)
	assert.Equal(t, []core.Resource{db}, plan.SubPlans[1].Task.Resources)

	// the prompt carried the problem and the resource overviews
	require.Len(t, model.prompts, 1)
	assert.Contains(t, model.prompts[0], "Is the product successful?")
	assert.Contains(t, model.prompts[0], "docs: Product documentation")
	assert.Contains(t, model.prompts[0], "db: Sales database")
}

func TestAutoPlanner_Plan_FencedJSON(t *testing.T) {
	model := &scriptedLM{completions: []string{
		"Here is the plan:\n```json\n[{\"ask\": \"sub\", \"resources\": []}]\n```",
	}}

	plan, err := New(model).Plan(context.Background(), "p", nil, core.NewKnowledge())

	require.NoError(t, err)
	require.Len(t, plan.SubPlans, 1)
	assert.Equal(t, "sub", plan.SubPlans[0].Task.Ask)
}

func TestAutoPlanner_Plan_UnknownResourceFallsBackToAll(t *testing.T) {
	docs := namedResource{name: "docs", overview: "docs"}
	model := &scriptedLM{completions: []string{
		`[{"ask": "sub", "resources": ["no-such-resource"]}]`,
	}}

	plan, err := New(model).Plan(context.Background(), "p", []core.Resource{docs}, core.NewKnowledge())

	require.NoError(t, err)
	require.Len(t, plan.SubPlans, 1)
	assert.Len(t, plan.SubPlans[0].Task.Resources, 1)
}

func TestAutoPlanner_Plan_TruncatesToMaxSubTasks(t *testing.T) {
	model := &scriptedLM{completions: []string{
		`[{"ask": "a"}, {"ask": "b"}, {"ask": "c"}]`,
	}}

	p := New(model, func(o *Options) { o.MaxSubTasks = 2 })
	plan, err := p.Plan(context.Background(), "p", nil, core.NewKnowledge())

	require.NoError(t, err)
	assert.Len(t, plan.SubPlans, 2)
}

func TestAutoPlanner_Plan_InvalidJSON(t *testing.T) {
	model := &scriptedLM{completions: []string{"I cannot plan this."}}

	_, err := New(model).Plan(context.Background(), "p", nil, core.NewKnowledge())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestAutoPlanner_Plan_ModelErrorPropagates(t *testing.T) {
	boom := errors.New("rate limited")
	model := &scriptedLM{err: boom}

	_, err := New(model).Plan(context.Background(), "p", nil, core.NewKnowledge())

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestAutoPlanner_UpdatePlanResources(t *testing.T) {
	docs := namedResource{name: "docs", overview: "docs"}
	db := namedResource{name: "db", overview: "db"}
	model := &scriptedLM{completions: []string{
		`[["db"], []]`,
	}}

	plan := core.NewPlan(core.NewTask("root", nil),
		core.NewPlan(core.NewTask("sub1", nil)),
		core.NewPlan(core.NewTask("sub2", nil)),
	)

	updated, err := New(model).UpdatePlanResources(context.Background(), plan, "root", []core.Resource{docs, db}, core.NewKnowledge())

	require.NoError(t, err)
	assert.Same(t, plan, updated)
	// structure unchanged, resources re-bound
	require.Len(t, updated.SubPlans, 2)
	assert.Equal(t, "sub1", updated.SubPlans[0].Task.Ask)
	assert.Equal(t, []core.Resource{db}, updated.SubPlans[0].Task.Resources)
	// empty binding falls back to the full resource set
	assert.Len(t, updated.SubPlans[1].Task.Resources, 2)
	assert.Len(t, updated.Task.Resources, 2)
}

func TestAutoPlanner_DepthBudget(t *testing.T) {
	p := New(&scriptedLM{}, func(o *Options) { o.MaxDepth = 3 })

	assert.Equal(t, 3, p.MaxDepth())
	assert.Equal(t, 1, p.OneLevelDeep().MaxDepth())
	assert.Equal(t, 2, p.OneFewerLevelDeep().MaxDepth())
	assert.Equal(t, 1, p.OneFewerLevelDeep().OneFewerLevelDeep().MaxDepth())

	// the budget never goes negative
	zero := New(&scriptedLM{}, func(o *Options) { o.MaxDepth = 0 })
	assert.Equal(t, 0, zero.OneFewerLevelDeep().MaxDepth())

	// derived copies do not mutate the original
	_ = p.OneFewerLevelDeep()
	assert.Equal(t, 3, p.MaxDepth())
}

func TestAutoPlanner_NegativeDepthClamped(t *testing.T) {
	p := New(&scriptedLM{}, func(o *Options) { o.MaxDepth = -5 })
	assert.Equal(t, 0, p.MaxDepth())
}
