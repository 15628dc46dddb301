package types

// JobPosting is a job advertisement fetched from an external source.
// It is an immutable input to the matcher.
type JobPosting struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	Salary       string   `json:"salary,omitempty"`
	JobType      string   `json:"jobType"`
	PostedDate   string   `json:"postedDate"`
	URL          string   `json:"url"`
}

// MatchReasons explains why a posting received its compatibility score.
type MatchReasons struct {
	SkillsMatch     []string `json:"skillsMatch"`
	ExperienceMatch string   `json:"experienceMatch"`
	EducationMatch  string   `json:"educationMatch"`
	MissingSkills   []string `json:"missingSkills"`
}

// JobMatch is a posting annotated with its compatibility against a profile.
type JobMatch struct {
	JobPosting
	CompatibilityScore int          `json:"compatibilityScore"`
	MatchReasons       MatchReasons `json:"matchReasons"`
}
