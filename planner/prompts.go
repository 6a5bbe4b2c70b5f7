package planner

// decomposePromptTemplate asks the model for a one-level decomposition of a
// problem into ordered sub-questions, each bound to resources by name.
// Sub-question order matters: later sub-questions may rely on earlier ones'
// answers, so the model is told to order them accordingly.
const decomposePromptTemplate = `You are an expert planner. Break the following problem down into
{{ .MaxSubTasks }} or fewer sub-questions that, once answered in order, let an
analyst answer the original problem.

PROBLEM:
{{ .Problem }}
{{ if .ResourceOverviews }}
AVAILABLE INFORMATIONAL RESOURCES (name: overview):
{{ bullets .ResourceOverviews }}
{{ end }}{{ if .Knowledge }}
KNOWN FACTS:
{{ bullets .Knowledge }}
{{ end }}
Rules:
- Produce at most one level of sub-questions; do not nest further.
- Order sub-questions so that any sub-question needing another's answer comes after it.
- Bind each sub-question to the resources relevant to it, by resource name.
  Use an empty list when no listed resource helps.

Respond with STRICTLY a JSON array, one object per sub-question, in order:
[{"ask": "<sub-question>", "resources": ["<resource name>", ...]}, ...]`

// updateResourcesPromptTemplate asks the model to re-bind an existing plan's
// sub-questions to the currently available resources without changing the
// plan's structure.
const updateResourcesPromptTemplate = `You are an expert planner. A solution plan for the problem below
already exists. Re-assess which of the currently available informational
resources are relevant to each of its sub-questions. Do NOT change, add,
remove or reorder sub-questions.

PROBLEM:
{{ .Problem }}

SUB-QUESTIONS (in plan order):
{{ bullets .Asks }}
{{ if .ResourceOverviews }}
AVAILABLE INFORMATIONAL RESOURCES (name: overview):
{{ bullets .ResourceOverviews }}
{{ end }}{{ if .Knowledge }}
KNOWN FACTS:
{{ bullets .Knowledge }}
{{ end }}
Respond with STRICTLY a JSON array with exactly one entry per sub-question,
in the same order, each entry being the list of relevant resource names:
[["<resource name>", ...], ...]`
