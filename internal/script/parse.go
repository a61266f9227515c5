package script

import (
	"strings"

	"github.com/jonathan/review-scripter/internal/llm"
	"github.com/jonathan/review-scripter/internal/types"
)

// sectionNames in expected response order. Parsing is order-insensitive but
// all four must be present and non-empty.
var sectionNames = []string{"HEADLINE", "HOOK", "BODY", "CTA"}

// ParseSections parses an LLM response into the four script fields.
// Expected format is one "NAME: content" header per section, with BODY
// commonly spanning multiple lines of bullets. Markdown fences, bold markers
// and stray whitespace are tolerated.
func ParseSections(response string) (*types.Script, error) {
	text := llm.CleanFencedBlock(response)

	sections := make(map[string][]string)
	var current string

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(strings.Trim(strings.TrimSpace(line), "*#"))
		if trimmed == "" {
			continue
		}

		matched := false
		for _, name := range sectionNames {
			rest, ok := cutHeader(trimmed, name)
			if !ok {
				continue
			}
			current = name
			if rest != "" {
				sections[name] = append(sections[name], rest)
			}
			matched = true
			break
		}
		if !matched && current != "" {
			sections[current] = append(sections[current], strings.TrimSpace(line))
		}
	}

	for _, name := range sectionNames {
		if len(sections[name]) == 0 {
			return nil, &GenerationError{Message: "response missing " + name + " section"}
		}
	}

	return &types.Script{
		Headline: strings.Join(sections["HEADLINE"], " "),
		Hook:     strings.Join(sections["HOOK"], "\n"),
		Body:     strings.Join(sections["BODY"], "\n"),
		CTA:      strings.Join(sections["CTA"], " "),
	}, nil
}

// cutHeader strips a case-insensitive "NAME:" prefix, returning the remainder.
func cutHeader(line, name string) (string, bool) {
	if len(line) < len(name)+1 {
		return "", false
	}
	if !strings.EqualFold(line[:len(name)], name) {
		return "", false
	}
	rest := strings.TrimSpace(line[len(name):])
	if !strings.HasPrefix(rest, ":") {
		return "", false
	}
	return strings.TrimSpace(strings.Trim(strings.TrimPrefix(rest, ":"), "*")), true
}
