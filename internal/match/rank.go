package match

import (
	"sort"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// Rank scores every posting against the profile and orders the results by
// compatibility, highest first. Ties keep the postings' original order.
func Rank(jobs []types.JobPosting, profile types.Profile) []types.JobMatch {
	return RankAt(jobs, profile, time.Now())
}

// RankAt is Rank with an explicit "now" for current experience entries.
func RankAt(jobs []types.JobPosting, profile types.Profile, now time.Time) []types.JobMatch {
	matches := make([]types.JobMatch, 0, len(jobs))
	for _, job := range jobs {
		matches = append(matches, MatchAt(job, profile, now))
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].CompatibilityScore > matches[j].CompatibilityScore
	})
	return matches
}
