// Package types provides type definitions for structured data used throughout the job-matcher system.
package types

// ProfileFragment is the structured result of a single résumé extraction pass.
// It carries no identity; the caller merges it into the stored profile.
type ProfileFragment struct {
	Skills     []string          `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Projects   []ProjectEntry    `json:"projects"`
}

// ExperienceEntry represents one employment entry detected in a résumé.
// Dates are free-form text as they appeared in the document, not validated dates.
type ExperienceEntry struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Description string `json:"description,omitempty"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
}

// EducationEntry represents one education entry detected in a résumé.
type EducationEntry struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Field       string `json:"field,omitempty"`
	StartDate   string `json:"startDate,omitempty"`
	EndDate     string `json:"endDate,omitempty"`
}

// ProjectEntry represents one project entry detected in a résumé.
type ProjectEntry struct {
	Name         string `json:"name"`
	Description  string `json:"description,omitempty"`
	Technologies string `json:"technologies,omitempty"`
}

// Skill is a named skill as stored on a profile.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Profile is the stored candidate profile built from résumé extraction.
type Profile struct {
	Skills     []Skill           `json:"skills"`
	Experience []ExperienceEntry `json:"experience"`
	Education  []EducationEntry  `json:"education"`
	Projects   []ProjectEntry    `json:"projects"`
}

// FromFragment converts an extraction result into a stored profile,
// tagging every extracted skill with the default category.
func FromFragment(frag ProfileFragment) Profile {
	skills := make([]Skill, 0, len(frag.Skills))
	for _, name := range frag.Skills {
		skills = append(skills, Skill{Name: name, Category: "Technical"})
	}
	return Profile{
		Skills:     skills,
		Experience: frag.Experience,
		Education:  frag.Education,
		Projects:   frag.Projects,
	}
}
