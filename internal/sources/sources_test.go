package sources

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

type stubSource struct {
	name string
	jobs []types.JobPosting
	err  error
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Search(context.Context, Query) ([]types.JobPosting, error) {
	return s.jobs, s.err
}

func posting(id, title, company, jobType string) types.JobPosting {
	return types.JobPosting{ID: id, Title: title, Company: company, JobType: jobType}
}

func TestAggregate_MergesInSourceOrder(t *testing.T) {
	srcs := []Source{
		&stubSource{name: "a", jobs: []types.JobPosting{posting("a1", "Backend Engineer", "Acme", "Full-time")}},
		&stubSource{name: "b", jobs: []types.JobPosting{posting("b1", "Frontend Engineer", "Globex", "Full-time")}},
	}

	jobs := Aggregate(context.Background(), Query{}, srcs)

	require.Len(t, jobs, 2)
	assert.Equal(t, "a1", jobs[0].ID)
	assert.Equal(t, "b1", jobs[1].ID)
}

func TestAggregate_FailedSourceContributesNothing(t *testing.T) {
	srcs := []Source{
		&stubSource{name: "down", err: errors.New("connection refused")},
		&stubSource{name: "up", jobs: []types.JobPosting{posting("u1", "Engineer", "Acme", "Full-time")}},
	}

	jobs := Aggregate(context.Background(), Query{}, srcs)

	require.Len(t, jobs, 1)
	assert.Equal(t, "u1", jobs[0].ID)
}

func TestAggregate_AllSourcesFailed(t *testing.T) {
	srcs := []Source{
		&stubSource{name: "down1", err: errors.New("boom")},
		&stubSource{name: "down2", err: errors.New("boom")},
	}

	jobs := Aggregate(context.Background(), Query{}, srcs)

	assert.Empty(t, jobs)
}

func TestAggregate_DeduplicatesByTitleAndCompany(t *testing.T) {
	srcs := []Source{
		&stubSource{name: "a", jobs: []types.JobPosting{posting("a1", "Engineer", "Acme", "Full-time")}},
		&stubSource{name: "b", jobs: []types.JobPosting{
			posting("b1", "ENGINEER", "acme", "Full-time"), // duplicate, different case
			posting("b2", "Engineer", "Globex", "Full-time"),
		}},
	}

	jobs := Aggregate(context.Background(), Query{}, srcs)

	require.Len(t, jobs, 2)
	assert.Equal(t, "a1", jobs[0].ID, "first occurrence wins")
	assert.Equal(t, "b2", jobs[1].ID)
}

func TestAggregate_FiltersJobType(t *testing.T) {
	srcs := []Source{&stubSource{name: "a", jobs: []types.JobPosting{
		posting("1", "Engineer", "Acme", "Full-time"),
		posting("2", "Contractor", "Acme", "Contract"),
	}}}

	jobs := Aggregate(context.Background(), Query{JobType: "contract"}, srcs)

	require.Len(t, jobs, 1)
	assert.Equal(t, "2", jobs[0].ID)
}

func TestAggregate_JobTypeAllPassesEverything(t *testing.T) {
	srcs := []Source{&stubSource{name: "a", jobs: []types.JobPosting{
		posting("1", "Engineer", "Acme", "Full-time"),
		posting("2", "Contractor", "Acme", "Contract"),
	}}}

	assert.Len(t, Aggregate(context.Background(), Query{JobType: "all"}, srcs), 2)
	assert.Len(t, Aggregate(context.Background(), Query{}, srcs), 2)
}

func TestQuery_SearchTerms(t *testing.T) {
	assert.Equal(t, "software engineer developer", Query{}.SearchTerms())
	assert.Equal(t, "software engineer developer", Query{Keywords: "   "}.SearchTerms())
	assert.Equal(t, "golang backend", Query{Keywords: "golang backend"}.SearchTerms())
}

func TestBuiltinBoards(t *testing.T) {
	fixed := func() time.Time {
		return time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)
	}
	boards := BuiltinBoards(fixed)
	require.Len(t, boards, 3)

	jobs := Aggregate(context.Background(), Query{}, boards)
	require.Len(t, jobs, 7)

	assert.Equal(t, "Senior Full Stack Developer", jobs[0].Title)
	assert.Equal(t, "TechCorp Solutions", jobs[0].Company)
	assert.Contains(t, jobs[0].ID, "indeed-1-")
	assert.NotEmpty(t, jobs[0].Requirements)

	// Posted dates are derived from the injected clock.
	posted, err := time.Parse(time.RFC3339, jobs[0].PostedDate)
	require.NoError(t, err)
	assert.True(t, posted.Equal(fixed().AddDate(0, 0, -2)))
}

func TestBuiltinBoards_StampDiffersBetweenCalls(t *testing.T) {
	calls := 0
	clock := func() time.Time {
		calls++
		return time.Date(2024, time.June, 1, 12, 0, 0, int(calls)*int(time.Millisecond), time.UTC)
	}
	boards := BuiltinBoards(clock)

	first, err := boards[0].Search(context.Background(), Query{})
	require.NoError(t, err)
	second, err := boards[0].Search(context.Background(), Query{})
	require.NoError(t, err)

	assert.NotEqual(t, first[0].ID, second[0].ID)
}
