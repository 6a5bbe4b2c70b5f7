package reasoner

// reasonPromptTemplate drives one observe-orient-decide-act pass. The model
// must end its reply with a confidence marker line the reasoner parses to
// pick the task's next status.
const reasonPromptTemplate = `Answer the question below as well as you can from the observations
and known facts provided.

QUESTION:
{{ .Ask }}
{{ if .Observations }}
OBSERVATIONS FROM INFORMATIONAL RESOURCES:
{{ bullets .Observations }}
{{ end }}{{ if .Knowledge }}
KNOWN FACTS:
{{ bullets .Knowledge }}
{{ end }}
After your answer, judge whether it fully and confidently answers the
question, or whether the question should first be broken into smaller
sub-questions. End your reply with exactly one line:

CONFIDENCE: HIGH
or
CONFIDENCE: LOW`
