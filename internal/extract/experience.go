package extract

import (
	"regexp"
	"strings"

	"github.com/jonathan/job-matcher/internal/types"
)

// dateRange matches lines like "Jan 2020 - Present", "2018 – 2022" or
// "March 2019 — June 2021". The month token is optional on either side.
var (
	dateRange   = regexp.MustCompile(`(?i)(?:[A-Za-z]{3,9}\.?\s+)?\d{4}\s*[-–—]\s*(?:(?:[A-Za-z]{3,9}\.?\s+)?\d{4}|Present|Current)`)
	dashSplit   = regexp.MustCompile(`\s*[-–—]\s*`)
	presentWord = regexp.MustCompile(`(?i)present|current`)
)

const minDescriptionLine = 21

// extractExperience detects experience entries within the Experience section,
// or across the whole document when no header is found. The fallback is
// deliberate: experience entries are identifiable purely by date-range shape,
// so a résumé without headings still yields entries.
func extractExperience(text string) []types.ExperienceEntry {
	region, ok := sectionText(text, experienceRegion)
	if !ok {
		region = text
	}
	return experienceFromLines(nonEmptyLines(region))
}

func experienceFromLines(lines []string) []types.ExperienceEntry {
	entries := make([]types.ExperienceEntry, 0)
	var current *types.ExperienceEntry
	var description []string
	companyLine := -1

	flush := func() {
		if current == nil {
			return
		}
		current.Description = strings.Join(description, " ")
		entries = append(entries, *current)
		current = nil
		description = nil
	}

	for i, line := range lines {
		loc := dateRange.FindStringIndex(line)
		if loc == nil {
			// Lines beyond the company line that carry enough text become
			// part of the running description.
			if current != nil && i != companyLine && len(line) >= minDescriptionLine {
				description = append(description, line)
			}
			continue
		}

		flush()
		start, end := splitRange(line[loc[0]:loc[1]])
		entry := types.ExperienceEntry{
			Position:  "Position",
			Company:   "Company",
			StartDate: start,
			Current:   presentWord.MatchString(end),
		}
		if !entry.Current {
			entry.EndDate = end
		}
		if i > 0 && !dateRange.MatchString(lines[i-1]) && !isHeaderLine(lines[i-1]) {
			entry.Position = lines[i-1]
		}
		companyLine = -1
		if i+1 < len(lines) && !dateRange.MatchString(lines[i+1]) && !isHeaderLine(lines[i+1]) {
			entry.Company = lines[i+1]
			companyLine = i + 1
		} else if rest := stripDate(line, loc); rest != "" {
			entry.Company = rest
		}
		current = &entry
	}
	flush()
	return entries
}

// splitRange splits a matched date range into its start and end tokens.
func splitRange(match string) (start, end string) {
	parts := dashSplit.Split(match, 2)
	start = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		end = strings.TrimSpace(parts[1])
	}
	return start, end
}

// stripDate removes the matched date range from its line, returning whatever
// company text shares the line (e.g. "Acme Corp | Jan 2020 - Present").
func stripDate(line string, loc []int) string {
	rest := line[:loc[0]] + line[loc[1]:]
	return strings.Trim(rest, " \t|,;:-–—·()")
}
