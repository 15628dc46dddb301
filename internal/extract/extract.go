// Package extract turns raw résumé text into a structured profile fragment
// using a fixed skill catalogue and line-oriented section heuristics.
//
// Extraction never fails: missing sections and unrecognized layouts yield
// empty slices, not errors. The heuristics are intentionally shallow (the
// position title is the line above a date range, the institution is the next
// non-empty line, and so on) and should not be generalized into a grammar.
package extract

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// Extract parses raw résumé text into a profile fragment. It is pure and
// side-effect-free; identical input always yields identical output.
func Extract(rawText string) types.ProfileFragment {
	text := normalizeNewlines(rawText)
	return types.ProfileFragment{
		Skills:     extractSkills(text),
		Experience: extractExperience(text),
		Education:  extractEducation(text),
		Projects:   extractProjects(text),
	}
}

// extractSkills tests the skill catalogue against the entire document, not
// just a "Skills" section, to tolerate résumés without an explicit heading.
func extractSkills(text string) []string {
	return skillCatalog.FindAll(text)
}

// normalizeNewlines collapses all line-ending variants to a single \n.
func normalizeNewlines(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.ReplaceAll(text, "\r", "\n")
}

// nonEmptyLines splits text into trimmed, non-empty lines.
func nonEmptyLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
