package sources

import (
	"context"
	"fmt"
	"time"

	"github.com/jonathan/job-matcher/internal/types"
)

// boardJob is a static posting template; ID suffix and posted date are
// stamped per search call.
type boardJob struct {
	slot         int
	title        string
	company      string
	location     string
	description  string
	requirements []string
	salary       string
	jobType      string
	ageDays      int
	url          string
}

// staticBoard serves a fixed set of postings. It stands in for boards that
// have no stable public API; postings are stamped with a per-call ID suffix
// so repeated searches yield distinct IDs, like live scrape results would.
type staticBoard struct {
	name string
	jobs []boardJob
	now  func() time.Time
}

func (b *staticBoard) Name() string { return b.name }

func (b *staticBoard) Search(_ context.Context, _ Query) ([]types.JobPosting, error) {
	now := b.now()
	stamp := now.UnixMilli()
	postings := make([]types.JobPosting, 0, len(b.jobs))
	for _, j := range b.jobs {
		postings = append(postings, types.JobPosting{
			ID:           fmt.Sprintf("%s-%d-%d", b.name, j.slot, stamp),
			Title:        j.title,
			Company:      j.company,
			Location:     j.location,
			Description:  j.description,
			Requirements: j.requirements,
			Salary:       j.salary,
			JobType:      j.jobType,
			PostedDate:   now.AddDate(0, 0, -j.ageDays).UTC().Format(time.RFC3339),
			URL:          j.url,
		})
	}
	return postings, nil
}

// BuiltinBoards returns the default static boards. The now function controls
// ID stamping and posted dates; pass time.Now outside tests.
func BuiltinBoards(now func() time.Time) []Source {
	if now == nil {
		now = time.Now
	}
	return []Source{
		&staticBoard{name: "indeed", now: now, jobs: []boardJob{
			{
				slot:        1,
				title:       "Senior Full Stack Developer",
				company:     "TechCorp Solutions",
				location:    "Remote",
				description: "We are seeking an experienced Full Stack Developer to join our growing team. You will work on cutting-edge web applications using React, Node.js, and PostgreSQL.",
				requirements: []string{
					"5+ years of experience with JavaScript/TypeScript",
					"Strong proficiency in React and Node.js",
					"Experience with PostgreSQL or similar databases",
					"Familiarity with Docker and CI/CD",
					"Excellent problem-solving skills",
				},
				salary:  "$120k - $160k",
				jobType: "Full-time",
				ageDays: 2,
				url:     "https://www.indeed.com/job/12345",
			},
			{
				slot:        2,
				title:       "React Developer",
				company:     "Innovative Apps Inc",
				location:    "New York, NY",
				description: "Join our team to build responsive and performant web applications. We use modern tools like React, TypeScript, and Tailwind CSS.",
				requirements: []string{
					"3+ years React experience",
					"TypeScript proficiency",
					"Experience with REST APIs",
					"Knowledge of modern CSS frameworks",
					"Git version control",
				},
				salary:  "$100k - $140k",
				jobType: "Full-time",
				ageDays: 5,
				url:     "https://www.indeed.com/job/12346",
			},
			{
				slot:        3,
				title:       "Junior Software Engineer",
				company:     "StartupXYZ",
				location:    "San Francisco, CA",
				description: "Looking for a motivated junior developer to join our engineering team. Great opportunity to learn and grow.",
				requirements: []string{
					"1-2 years programming experience",
					"Knowledge of JavaScript or Python",
					"Familiarity with web development",
					"Strong communication skills",
					"Eagerness to learn",
				},
				salary:  "$80k - $100k",
				jobType: "Full-time",
				ageDays: 1,
				url:     "https://www.indeed.com/job/12347",
			},
		}},
		&staticBoard{name: "linkedin", now: now, jobs: []boardJob{
			{
				slot:        1,
				title:       "Backend Engineer - Node.js",
				company:     "CloudScale Technologies",
				location:    "Remote - US",
				description: "We are building scalable microservices and need a talented backend engineer with Node.js expertise.",
				requirements: []string{
					"Strong Node.js and Express experience",
					"PostgreSQL or MongoDB knowledge",
					"RESTful API design",
					"Docker and Kubernetes",
					"AWS or similar cloud platform",
				},
				salary:  "$110k - $150k",
				jobType: "Full-time",
				ageDays: 3,
				url:     "https://www.linkedin.com/jobs/view/12345",
			},
			{
				slot:        2,
				title:       "Full Stack Developer",
				company:     "DataFlow Systems",
				location:    "Austin, TX (Hybrid)",
				description: "Join our team working on data visualization tools and analytics dashboards using React and Python.",
				requirements: []string{
					"React and TypeScript",
					"Python (Django or Flask)",
					"Data visualization libraries",
					"SQL databases",
					"Agile methodology",
				},
				salary:  "$105k - $135k",
				jobType: "Full-time",
				ageDays: 4,
				url:     "https://www.linkedin.com/jobs/view/12346",
			},
		}},
		&staticBoard{name: "remoteok", now: now, jobs: []boardJob{
			{
				slot:        1,
				title:       "Remote Frontend Developer",
				company:     "GlobalTech Remote",
				location:    "Worldwide Remote",
				description: "Build beautiful user interfaces for our SaaS platform. Work from anywhere with a fully distributed team.",
				requirements: []string{
					"React and modern JavaScript",
					"CSS/Tailwind expertise",
					"Responsive design",
					"Git workflow",
					"Strong communication for remote work",
				},
				salary:  "$90k - $130k",
				jobType: "Full-time",
				ageDays: 6,
				url:     "https://remoteok.com/remote-jobs/12345",
			},
			{
				slot:        2,
				title:       "Python Developer (ML Focus)",
				company:     "AI Innovations",
				location:    "Remote",
				description: "Work on machine learning pipelines and data processing systems using Python and modern ML frameworks.",
				requirements: []string{
					"Strong Python skills",
					"Machine Learning experience",
					"TensorFlow or PyTorch",
					"Data processing (Pandas, NumPy)",
					"REST API development",
				},
				salary:  "$115k - $145k",
				jobType: "Full-time",
				ageDays: 7,
				url:     "https://remoteok.com/remote-jobs/12346",
			},
		}},
	}
}
