// Package match scores job postings against a candidate profile. Scoring is
// a pure heuristic: keyword overlap weighted with years of experience and
// education presence, producing a 0–99 compatibility score per posting.
package match

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

const (
	maxMissingSkills   = 5
	maxScore           = 99
	maxExperienceScore = 40
)

// Match scores one posting against a profile. It never fails; an empty
// profile simply scores low. Entries marked current are measured against the
// present time.
func Match(job types.JobPosting, profile types.Profile) types.JobMatch {
	return MatchAt(job, profile, time.Now())
}

// MatchAt is Match with an explicit "now", used when current experience
// entries must resolve against a fixed point in time.
func MatchAt(job types.JobPosting, profile types.Profile, now time.Time) types.JobMatch {
	keywords := jobKeywords(job)
	matched, missing := matchSkills(keywords, profile.Skills)
	years := ExperienceYears(profile.Experience, now)

	skillPct := 0.0
	if len(keywords) > 0 {
		skillPct = 100 * float64(len(matched)) / float64(len(keywords))
	}
	experienceScore := math.Min(float64(years*10), maxExperienceScore)
	educationScore := 10.0
	if len(profile.Education) > 0 {
		educationScore = 20
	}
	score := int(math.Round(skillPct*0.6 + experienceScore*0.8 + educationScore))
	if score > maxScore {
		score = maxScore
	}

	return types.JobMatch{
		JobPosting:         job,
		CompatibilityScore: score,
		MatchReasons: types.MatchReasons{
			SkillsMatch:     matched,
			ExperienceMatch: experienceSummary(years),
			EducationMatch:  educationSummary(profile.Education),
			MissingSkills:   missing,
		},
	}
}

// jobKeywords extracts the keyword set from a posting's title, description
// and requirements, deduplicated in catalogue order.
func jobKeywords(job types.JobPosting) []string {
	text := job.Title + " " + job.Description + " " + strings.Join(job.Requirements, " ")
	return keywordCatalog.FindAll(text)
}

// matchSkills partitions job keywords into matched profile skills and missing
// keywords. Matching is a bidirectional case-insensitive substring test, so
// "React" on a profile satisfies a "React.js" keyword and vice versa. Matched
// entries carry the profile's display name, missing entries the keyword.
func matchSkills(keywords []string, skills []types.Skill) (matched, missing []string) {
	matched = make([]string, 0, len(keywords))
	missing = make([]string, 0, len(keywords))
	seenMatched := make(map[string]bool)
	seenMissing := make(map[string]bool)

	for _, keyword := range keywords {
		name, ok := firstMatchingSkill(keyword, skills)
		if ok {
			if key := strings.ToLower(name); !seenMatched[key] {
				seenMatched[key] = true
				matched = append(matched, name)
			}
			continue
		}
		if key := strings.ToLower(keyword); !seenMissing[key] {
			seenMissing[key] = true
			missing = append(missing, keyword)
		}
	}
	if len(missing) > maxMissingSkills {
		missing = missing[:maxMissingSkills]
	}
	return matched, missing
}

func firstMatchingSkill(keyword string, skills []types.Skill) (string, bool) {
	kw := strings.ToLower(keyword)
	for _, skill := range skills {
		name := strings.ToLower(skill.Name)
		if strings.Contains(kw, name) || strings.Contains(name, kw) {
			return skill.Name, true
		}
	}
	return "", false
}

func experienceSummary(years int) string {
	switch {
	case years >= 5:
		return fmt.Sprintf("Your %d years of experience makes you well-qualified for this role", years)
	case years >= 3:
		return fmt.Sprintf("Your %d years of experience aligns with this position", years)
	case years >= 1:
		return fmt.Sprintf("Your %d years of experience is a good foundation for this role", years)
	default:
		return "Entry-level position suitable for building experience"
	}
}

func educationSummary(education []types.EducationEntry) string {
	if len(education) == 0 {
		return "Relevant work experience"
	}
	first := education[0]
	if first.Field == "" {
		return first.Degree
	}
	return first.Degree + " in " + first.Field
}
