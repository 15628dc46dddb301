package extract

import (
	"regexp"
	"strings"
)

// Header synonyms per section, longest variants first so the alternation
// matches "WORK EXPERIENCE" before its "EXPERIENCE" suffix.
var (
	experienceHeaders = []string{
		"WORK EXPERIENCE",
		"PROFESSIONAL EXPERIENCE",
		"WORK HISTORY",
		"EMPLOYMENT",
		"EXPERIENCE",
	}
	educationHeaders = []string{
		"ACADEMIC BACKGROUND",
		"QUALIFICATIONS",
		"EDUCATION",
	}
	projectHeaders = []string{
		"WORK SAMPLES",
		"PORTFOLIO",
		"PROJECTS",
	}
	// Headers that only terminate regions; they have no extractor of their own.
	trailerHeaders = []string{"SKILLS", "CERTIFICATIONS"}
)

var (
	experienceRegion = sectionRegexp(experienceHeaders, educationHeaders, projectHeaders, trailerHeaders)
	educationRegion  = sectionRegexp(educationHeaders, experienceHeaders, projectHeaders, trailerHeaders)
	projectsRegion   = sectionRegexp(projectHeaders, experienceHeaders, educationHeaders, trailerHeaders)
)

// sectionRegexp builds a regexp that captures the text between a section
// header and the next recognized header (or end of document). The lazy
// [\s\S]*? over the full document is an accepted cost: résumés are short and
// not attacker-controlled in this trust model.
func sectionRegexp(headers []string, stops ...[]string) *regexp.Regexp {
	var stopAlts []string
	for _, group := range stops {
		stopAlts = append(stopAlts, group...)
	}
	return regexp.MustCompile(
		`(?i)\b(?:` + strings.Join(headers, "|") + `)\b` +
			`([\s\S]*?)` +
			`(?:\n\s*(?:` + strings.Join(stopAlts, "|") + `)\b|$)`,
	)
}

// sectionText returns the captured region for re, reporting whether the
// section header was present at all.
func sectionText(text string, re *regexp.Regexp) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1], true
}

var headerLine = regexp.MustCompile(`(?i)^(?:` + strings.Join(allHeaders(), "|") + `)\b`)

func allHeaders() []string {
	var all []string
	for _, group := range [][]string{experienceHeaders, educationHeaders, projectHeaders, trailerHeaders} {
		all = append(all, group...)
	}
	return all
}

// isHeaderLine reports whether a trimmed line starts with any recognized
// section header.
func isHeaderLine(line string) bool {
	return headerLine.MatchString(line)
}
