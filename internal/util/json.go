package util

import "strings"

// ExtractJSON strips Markdown code fences and surrounding prose from a model
// completion, returning the first JSON value found. Models routinely wrap
// structured output in ```json fences even when told not to.
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "```"); start >= 0 {
		rest := s[start+3:]
		if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
			rest = rest[nl+1:] // drop the language tag line
		}
		if end := strings.Index(rest, "```"); end >= 0 {
			return strings.TrimSpace(rest[:end])
		}
	}

	// No fences: cut from the first bracket to the matching last one.
	for _, pair := range [][2]byte{{'[', ']'}, {'{', '}'}} {
		first := strings.IndexByte(s, pair[0])
		last := strings.LastIndexByte(s, pair[1])
		if first >= 0 && last > first {
			return s[first : last+1]
		}
	}
	return s
}
