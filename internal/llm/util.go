// Package llm - util.go provides shared utilities for LLM response processing.
package llm

import "strings"

// CleanFencedBlock removes markdown code fence wrappers from a response.
// Models often wrap plain-text output in ``` blocks even when instructed not to.
func CleanFencedBlock(text string) string {
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	// Skip a potential language identifier on the first line
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := text[:idx]
		if len(firstLine) < 20 && !strings.Contains(firstLine, " ") {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
