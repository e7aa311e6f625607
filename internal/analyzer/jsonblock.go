package analyzer

import "strings"

const jsonFence = "```json"

// ExtractJSONBlock locates the JSON payload inside a raw model reply. Models
// wrap their output unpredictably, so two patterns are tried in order: a
// fenced ```json block, then the substring between the first opening brace
// and the last closing brace. Returns false when neither pattern matches.
func ExtractJSONBlock(text string) (string, bool) {
	cleaned := strings.TrimSpace(text)

	if idx := strings.Index(cleaned, jsonFence); idx != -1 {
		start := idx + len(jsonFence)
		if end := strings.Index(cleaned[start:], "```"); end != -1 {
			return strings.TrimSpace(cleaned[start : start+end]), true
		}
		// Unterminated fence, fall through to the brace scan.
	}

	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end < start {
		return "", false
	}
	return cleaned[start : end+1], true
}
