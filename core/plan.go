package core

import (
	"context"
	"fmt"
	"strings"
)

// AskAnsPair is one resolved sibling sub-task's question and answer. The
// sequence of pairs visible to a sub-task always reflects exactly the
// sub-tasks that precede it in sub-plan order, never later ones.
type AskAnsPair struct {
	Ask    string
	Answer string
}

// Plan pairs a task with an ordered sequence of child plans, forming one
// decomposition level. Sub-plan order is semantically significant: later
// sub-questions may depend on earlier ones' answers.
type Plan struct {
	Task     *Task
	SubPlans []*Plan
}

// NewPlan creates a plan node governing the given task.
func NewPlan(task *Task, subPlans ...*Plan) *Plan {
	return &Plan{Task: task, SubPlans: subPlans}
}

// Execute synthesizes a final answer for the plan's root task from the
// sub-plans' results, optionally informed by sibling context from an
// enclosing decomposition level.
//
// Sub-plans whose tasks are already Done (completed by the dynamic recursion
// driver) contribute their existing results; any remaining sub-plan is
// executed depth-first here, with forward-only sibling context, which is the
// static execution path. The root task transitions to Done with the
// synthesized result.
func (p *Plan) Execute(ctx context.Context, reasoner Reasoner, otherResults []AskAnsPair, knowledge Knowledge) (string, error) {
	subResults := make([]AskAnsPair, 0, len(p.SubPlans))
	for _, sp := range p.SubPlans {
		if sp.Task.Status != TaskStatusDone {
			if _, err := sp.Execute(ctx, reasoner, subResults, knowledge); err != nil {
				return "", fmt.Errorf("executing sub-plan %q: %w", sp.Task.Ask, err)
			}
		}
		subResults = append(subResults, AskAnsPair{Ask: sp.Task.Ask, Answer: sp.Task.Result})
	}

	ask := p.Task.Ask
	if len(subResults) > 0 || len(otherResults) > 0 {
		ask = synthesisAsk(p.Task.Ask, subResults, otherResults)
	}

	// The reasoner works on a scratch task so its confidence judgment cannot
	// leak into the governed task's status.
	scratch := NewTask(ask, p.Task.Resources)
	result, err := reasoner.Reason(ctx, scratch, knowledge)
	if err != nil {
		return "", err
	}

	if err := p.Task.Complete(result); err != nil {
		return "", err
	}
	return result, nil
}

// synthesisAsk embeds resolved sub-question answers and enclosing-level
// sibling context into the question posed to the reasoner.
func synthesisAsk(ask string, subResults, otherResults []AskAnsPair) string {
	var b strings.Builder
	b.WriteString(ask)
	if len(subResults) > 0 {
		b.WriteString("\n\nAnswers to sub-questions of the above question:\n")
		writePairs(&b, subResults)
	}
	if len(otherResults) > 0 {
		b.WriteString("\n\nAnswers to related questions already resolved:\n")
		writePairs(&b, otherResults)
	}
	return b.String()
}

func writePairs(b *strings.Builder, pairs []AskAnsPair) {
	for i, p := range pairs {
		fmt.Fprintf(b, "%d. %s\n   %s\n", i+1, p.Ask, p.Answer)
	}
}

// Outline renders the plan's question tree one line per task, indented by
// depth. Used for logging plans before execution.
func (p *Plan) Outline() string {
	var b strings.Builder
	p.writeOutline(&b, 0)
	return strings.TrimRight(b.String(), "\n")
}

func (p *Plan) writeOutline(b *strings.Builder, depth int) {
	fmt.Fprintf(b, "%s- %s\n", strings.Repeat("  ", depth), p.Task.Ask)
	for _, sp := range p.SubPlans {
		sp.writeOutline(b, depth+1)
	}
}
