package match

import (
	"math"
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// dateLayouts are tried in order against the free-form dates extraction
// produces ("Jan 2020", "2018", "03/2019").
var dateLayouts = []string{
	"Jan 2006",
	"January 2006",
	"Jan 2, 2006",
	"January 2, 2006",
	"2006-01-02",
	"2006-01",
	"01/2006",
	"2006",
}

// ExperienceYears sums whole months across all experience entries and
// rounds to years. Entries marked current run until now; malformed or
// inverted ranges contribute nothing rather than going negative.
func ExperienceYears(entries []types.ExperienceEntry, now time.Time) int {
	months := 0
	for _, entry := range entries {
		start, ok := parseLooseDate(entry.StartDate)
		if !ok {
			continue
		}
		end := now
		if !entry.Current {
			parsed, ok := parseLooseDate(entry.EndDate)
			if !ok {
				continue
			}
			end = parsed
		}
		if m := monthsBetween(start, end); m > 0 {
			months += m
		}
	}
	return int(math.Round(float64(months) / 12))
}

func parseLooseDate(text string) (time.Time, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, text); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func monthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
