package reasoner

import (
	"context"
	"fmt"
	"strings"

	"github.com/hupe1980/deepsolve/core"
	"github.com/hupe1980/deepsolve/internal/util"
	"github.com/hupe1980/deepsolve/lm"
	"github.com/hupe1980/deepsolve/logging"
)

const confidenceMarker = "CONFIDENCE:"

// Options configures an OodaReasoner.
type Options struct {
	// Logger receives reasoning diagnostics. Defaults to NoOpLogger.
	Logger logging.Logger
}

// OodaReasoner is an LM-driven core.Reasoner making one direct attempt per
// task and setting the task's status from the model's confidence judgment.
type OodaReasoner struct {
	lm   lm.LM
	opts Options
}

var _ core.Reasoner = (*OodaReasoner)(nil)

// New constructs an OodaReasoner with optional overrides.
func New(l lm.LM, optFns ...func(o *Options)) *OodaReasoner {
	opts := Options{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &OodaReasoner{lm: l, opts: opts}
}

// Reason implements core.Reasoner. It observes the task's resources, asks
// the model for an answer plus a confidence judgment, and transitions the
// task to Resolved (confident) or NeedingDecomposition (unconfident).
func (r *OodaReasoner) Reason(ctx context.Context, task *core.Task, knowledge core.Knowledge) (string, error) {
	observations, err := r.observe(ctx, task)
	if err != nil {
		return "", err
	}

	prompt, err := util.RenderTemplate(reasonPromptTemplate, map[string]any{
		"Ask":          task.Ask,
		"Observations": observations,
		"Knowledge":    knowledge.Items(),
	})
	if err != nil {
		return "", fmt.Errorf("reasoner prompt template: %w", err)
	}

	completion, err := r.lm.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("reasoner model call: %w", err)
	}

	answer, confident := parseConfidence(completion)
	if confident {
		if err := task.Resolve(answer); err != nil {
			return "", err
		}
	} else {
		if err := task.MarkNeedingDecomposition(answer); err != nil {
			return "", err
		}
	}

	r.opts.Logger.Debug("task reasoned", "ask", task.Ask, "status", task.Status.String())

	return task.Result, nil
}

// observe queries each of the task's resources with the task's ask.
func (r *OodaReasoner) observe(ctx context.Context, task *core.Task) ([]string, error) {
	observations := make([]string, 0, len(task.Resources))
	for _, res := range task.Resources {
		answer, err := res.Answer(ctx, task.Ask)
		if err != nil {
			return nil, fmt.Errorf("resource %q: %w", res.UniqueName(), err)
		}
		if answer != "" {
			observations = append(observations, fmt.Sprintf("%s: %s", res.UniqueName(), answer))
		}
	}
	return observations, nil
}

// parseConfidence splits the completion into the answer text and the
// confidence judgment. A missing or malformed marker counts as unconfident:
// an answer the model did not stand behind should trigger decomposition
// rather than be trusted.
func parseConfidence(completion string) (answer string, confident bool) {
	idx := strings.LastIndex(completion, confidenceMarker)
	if idx < 0 {
		return strings.TrimSpace(completion), false
	}
	judgment := strings.TrimSpace(completion[idx+len(confidenceMarker):])
	answer = strings.TrimSpace(completion[:idx])
	return answer, strings.HasPrefix(strings.ToUpper(judgment), "HIGH")
}
