package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResume = `John Doe
Senior Software Engineer

WORK EXPERIENCE

Senior Software Engineer
Jan 2020 - Present
Acme Corp
Led a team of five engineers building React and Node.js services on AWS.
Migrated legacy deployments to Docker and Kubernetes with CI/CD pipelines.

Software Engineer
Jun 2016 - Dec 2019
Initech
Built REST API backends in Python and PostgreSQL.

EDUCATION

Bachelor of Science in Computer Science
MIT
2012
2016

PROJECTS

Job Board Crawler
A distributed crawler that aggregates postings from multiple job boards.
Implemented rate limiting and retry handling for flaky upstream sources.
`

func TestExtract_Skills(t *testing.T) {
	frag := Extract(sampleResume)

	assert.Contains(t, frag.Skills, "React")
	assert.Contains(t, frag.Skills, "Node.js")
	assert.Contains(t, frag.Skills, "AWS")
	assert.Contains(t, frag.Skills, "Docker")
	assert.Contains(t, frag.Skills, "Kubernetes")
	assert.Contains(t, frag.Skills, "CI/CD")
	assert.Contains(t, frag.Skills, "Python")
	assert.Contains(t, frag.Skills, "PostgreSQL")
	assert.Contains(t, frag.Skills, "REST API")
	assert.NotContains(t, frag.Skills, "Java", "JavaScript must not register as Java")
}

func TestExtract_SkillsCatalogOrderAndDedup(t *testing.T) {
	frag := Extract("Python python PYTHON and JavaScript")

	assert.Equal(t, []string{"JavaScript", "Python"}, frag.Skills)
}

func TestExtract_Experience(t *testing.T) {
	frag := Extract(sampleResume)

	require.Len(t, frag.Experience, 2)

	first := frag.Experience[0]
	assert.Equal(t, "Senior Software Engineer", first.Position)
	assert.Equal(t, "Acme Corp", first.Company)
	assert.Equal(t, "Jan 2020", first.StartDate)
	assert.Empty(t, first.EndDate)
	assert.True(t, first.Current)
	assert.Contains(t, first.Description, "Led a team of five engineers")
	assert.Contains(t, first.Description, "Migrated legacy deployments")

	second := frag.Experience[1]
	assert.Equal(t, "Software Engineer", second.Position)
	assert.Equal(t, "Initech", second.Company)
	assert.Equal(t, "Jun 2016", second.StartDate)
	assert.Equal(t, "Dec 2019", second.EndDate)
	assert.False(t, second.Current)
}

func TestExtract_ExperienceFallbackWithoutHeader(t *testing.T) {
	text := `Senior Developer
Mar 2018 - Present
Globex
Responsible for the main ordering platform and its deployment tooling.`

	frag := Extract(text)

	require.Len(t, frag.Experience, 1)
	assert.Equal(t, "Senior Developer", frag.Experience[0].Position)
	assert.Equal(t, "Globex", frag.Experience[0].Company)
	assert.True(t, frag.Experience[0].Current)
}

func TestExtract_ExperienceCompanyOnDateLine(t *testing.T) {
	text := `EXPERIENCE
Backend Engineer
Acme Corp | Jan 2019 - Feb 2021`

	frag := Extract(text)

	require.Len(t, frag.Experience, 1)
	assert.Equal(t, "Backend Engineer", frag.Experience[0].Position)
	assert.Equal(t, "Acme Corp", frag.Experience[0].Company)
}

func TestExtract_ExperiencePlaceholdersWhenLinesMissing(t *testing.T) {
	frag := Extract("EXPERIENCE\n2019 - 2021")

	require.Len(t, frag.Experience, 1)
	assert.Equal(t, "Position", frag.Experience[0].Position)
	assert.Equal(t, "Company", frag.Experience[0].Company)
}

func TestExtract_EducationScenario(t *testing.T) {
	text := `EDUCATION
Bachelor of Science
MIT
2018
2022
EXPERIENCE`

	frag := Extract(text)

	require.Len(t, frag.Education, 1)
	entry := frag.Education[0]
	assert.Equal(t, "MIT", entry.Institution)
	assert.Equal(t, "Bachelor of Science", entry.Degree)
	assert.Equal(t, "2018", entry.StartDate)
	assert.Equal(t, "2022", entry.EndDate)
}

func TestExtract_EducationFieldCapture(t *testing.T) {
	frag := Extract(sampleResume)

	require.Len(t, frag.Education, 1)
	assert.Equal(t, "Bachelor of Science", frag.Education[0].Degree)
	assert.Equal(t, "Computer Science", frag.Education[0].Field)
	assert.Equal(t, "MIT", frag.Education[0].Institution)
	assert.Equal(t, "2012", frag.Education[0].StartDate)
	assert.Equal(t, "2016", frag.Education[0].EndDate)
}

func TestExtract_EducationRequiresInstitution(t *testing.T) {
	frag := Extract("EDUCATION\nBachelor of Science")

	assert.Empty(t, frag.Education)
}

func TestExtract_EducationStrictWithoutHeader(t *testing.T) {
	frag := Extract("Bachelor of Science\nMIT\n2018\n2022")

	assert.Empty(t, frag.Education)
}

func TestExtract_EducationIgnoresLowercaseDegreeWords(t *testing.T) {
	// "be" and "ma" are ordinary words, not B.E. / M.A. degrees.
	frag := Extract("EDUCATION\nThis should not be a degree\nma non-entry line")

	assert.Empty(t, frag.Education)
}

func TestExtract_Projects(t *testing.T) {
	frag := Extract(sampleResume)

	require.Len(t, frag.Projects, 1)
	assert.Equal(t, "Job Board Crawler", frag.Projects[0].Name)
	assert.Contains(t, frag.Projects[0].Description, "distributed crawler")
	assert.Contains(t, frag.Projects[0].Description, "rate limiting and retry handling")
}

func TestExtract_ProjectsIgnoreBulletsAndShortNames(t *testing.T) {
	text := `PROJECTS
- Bulleted line that cannot be a project name
Tool
Too short a name above, so no pair forms here either`

	frag := Extract(text)

	assert.Empty(t, frag.Projects)
}

func TestExtract_NoSectionHeaders(t *testing.T) {
	frag := Extract("just a plain paragraph with nothing recognizable in it")

	assert.Empty(t, frag.Skills)
	assert.Empty(t, frag.Experience)
	assert.Empty(t, frag.Education)
	assert.Empty(t, frag.Projects)
	assert.NotNil(t, frag.Skills)
	assert.NotNil(t, frag.Experience)
	assert.NotNil(t, frag.Education)
	assert.NotNil(t, frag.Projects)
}

func TestExtract_Deterministic(t *testing.T) {
	first := Extract(sampleResume)
	second := Extract(sampleResume)

	assert.Equal(t, first, second)
}

func TestExtract_CRLFInput(t *testing.T) {
	frag := Extract("EDUCATION\r\nBachelor of Science\r\nMIT\r\n2018\r\n2022")

	require.Len(t, frag.Education, 1)
	assert.Equal(t, "MIT", frag.Education[0].Institution)
}
