package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	maxEducationEntries  = 5
	institutionLookahead = 3
)

// degreePatterns is the ordered set of recognized degree names. Group 1
// captures the degree text, group 2 an optional "in <field>" clause.
// Two-letter abbreviations require dots (B.A., M.S.) so that ordinary words
// like "be" and "ma" never register as degrees.
var degreePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\b(Bachelor(?:'s)?(?:\s+of\s+(?:Applied\s+)?(?:Arts|Sciences?|Engineering|Technology|Commerce|Business\s+Administration|Fine\s+Arts|Education))?|B\.A\.?|B\.Sc?\.?|B\.E\.?|B\.Tech\.?)(?:\s+in\s+([A-Za-z][^,\n]*))?`),
	regexp.MustCompile(`(?i)\b(Master(?:'s)?(?:\s+of\s+(?:Applied\s+)?(?:Arts|Sciences?|Engineering|Technology|Commerce|Business\s+Administration|Fine\s+Arts|Education))?|M\.A\.?|M\.Sc?\.?|M\.E\.?|M\.Tech\.?|MBA)(?:\s+in\s+([A-Za-z][^,\n]*))?`),
	regexp.MustCompile(`(?i)\b(Ph\.?D\.?|Doctorate|Doctor\s+of\s+Philosophy)(?:\s+in\s+([A-Za-z][^,\n]*))?`),
	regexp.MustCompile(`(?i)\b(Associate(?:'s)?(?:\s+of\s+(?:Arts|Sciences?|Applied\s+Sciences?))?|A\.A\.?|A\.S\.?)(?:\s+in\s+([A-Za-z][^,\n]*))?`),
}

var yearToken = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)

var hasLetter = regexp.MustCompile(`[A-Za-z]`)

// extractEducation detects education entries strictly within the Education
// section. Unlike experience there is no whole-document fallback: a degree
// name alone does not identify an entry reliably enough.
func extractEducation(text string) []types.EducationEntry {
	region, ok := sectionText(text, educationRegion)
	if !ok {
		return []types.EducationEntry{}
	}
	return educationFromLines(nonEmptyLines(region))
}

func educationFromLines(lines []string) []types.EducationEntry {
	entries := make([]types.EducationEntry, 0)
	for i, line := range lines {
		if len(entries) >= maxEducationEntries {
			break
		}
		degree, field, ok := matchDegree(line)
		if !ok {
			continue
		}

		entry := types.EducationEntry{Degree: degree, Field: field}
		years := yearToken.FindAllString(line, -1)
		for j := i + 1; j <= i+institutionLookahead && j < len(lines); j++ {
			next := lines[j]
			years = append(years, yearToken.FindAllString(next, -1)...)
			if entry.Institution == "" && institutionCandidate(next) {
				entry.Institution = next
			}
		}
		if len(years) > 0 {
			entry.StartDate = years[0]
		}
		if len(years) > 1 {
			entry.EndDate = years[1]
		}
		// Without an institution the match is too weak to keep.
		if entry.Institution != "" {
			entries = append(entries, entry)
		}
	}
	return entries
}

// matchDegree tests a line against the ordered degree patterns, returning the
// matched degree text and any trailing "in <field>" clause.
func matchDegree(line string) (degree, field string, ok bool) {
	for _, re := range degreePatterns {
		m := re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		return strings.TrimSpace(m[1]), strings.TrimSpace(m[2]), true
	}
	return "", "", false
}

// institutionCandidate reports whether a line can serve as an institution
// name: not a degree, not a header, and not a bare year range.
func institutionCandidate(line string) bool {
	if _, _, ok := matchDegree(line); ok {
		return false
	}
	if isHeaderLine(line) {
		return false
	}
	return hasLetter.MatchString(line)
}
