package extract

import (
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	maxProjectEntries = 10
	minProjectName    = 5
	maxProjectName    = 99
)

// extractProjects detects (name, description) pairs within the Projects
// section: a short non-bullet line followed by a strictly longer line starts
// an entry, and later long lines extend its description.
func extractProjects(text string) []types.ProjectEntry {
	region, ok := sectionText(text, projectsRegion)
	if !ok {
		return []types.ProjectEntry{}
	}
	return projectsFromLines(nonEmptyLines(region))
}

func projectsFromLines(lines []string) []types.ProjectEntry {
	entries := make([]types.ProjectEntry, 0)
	var current *types.ProjectEntry

	flush := func() {
		if current != nil {
			entries = append(entries, *current)
			current = nil
		}
	}

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if projectName(line) && i+1 < len(lines) && len(lines[i+1]) > len(line) {
			flush()
			current = &types.ProjectEntry{Name: line, Description: lines[i+1]}
			i++
			continue
		}
		if current != nil && len(line) >= minDescriptionLine {
			current.Description += " " + line
		}
	}
	flush()

	if len(entries) > maxProjectEntries {
		entries = entries[:maxProjectEntries]
	}
	return entries
}

func projectName(line string) bool {
	if len(line) < minProjectName || len(line) > maxProjectName {
		return false
	}
	if isHeaderLine(line) {
		return false
	}
	switch line[0] {
	case '-', '*', '.':
		return false
	}
	return !strings.HasPrefix(line, "•") && !strings.HasPrefix(line, "·")
}
