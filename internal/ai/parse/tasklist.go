// Package parse extracts structured results from free-form model output.
package parse

import (
	"regexp"
	"strings"
)

// ordinalMarker matches a leading numbered-list marker: one or more digits, a
// period, optional whitespace ("1. ", "12.", "3.Finish").
var ordinalMarker = regexp.MustCompile(`^\d+\.\s*`)

// TaskList splits raw model output into one action item per non-blank line,
// stripping any leading numbered-list marker. Models that ignore the numbering
// instruction degrade gracefully: every non-blank line becomes a task. Line
// order is preserved and the result is never nil for non-empty input lines.
func TaskList(raw string) []string {
	lines := strings.Split(raw, "\n")

	tasks := make([]string, 0, len(lines))
	for _, line := range lines {
		cleaned := strings.TrimSpace(ordinalMarker.ReplaceAllString(line, ""))
		if cleaned == "" {
			continue
		}
		tasks = append(tasks, cleaned)
	}

	return tasks
}
