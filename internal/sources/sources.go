// Package sources aggregates job postings from multiple boards. Each board
// is a Source; a search fans out to all of them and collects whatever
// succeeded, so one failing board never fails the whole search.
package sources

import (
	"context"
	"log"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/job-matcher/internal/types"
)

// Query carries the user's search parameters. Zero values mean "no filter";
// JobType additionally treats "all" as a pass-through.
type Query struct {
	Keywords        string
	Location        string
	JobType         string
	ExperienceLevel string
}

// SearchTerms returns the effective keyword query, defaulting to a broad
// search when the user supplied none.
func (q Query) SearchTerms() string {
	if strings.TrimSpace(q.Keywords) == "" {
		return "software engineer developer"
	}
	return q.Keywords
}

// Source is one job board.
type Source interface {
	Name() string
	Search(ctx context.Context, query Query) ([]types.JobPosting, error)
}

// Aggregate searches all sources concurrently and merges their results.
// Failed sources are logged and contribute nothing; the merged list is
// deduplicated by (title, company) and filtered by the query's job type.
// Result order follows the given source order, not completion order.
func Aggregate(ctx context.Context, query Query, sources []Source) []types.JobPosting {
	perSource := make([][]types.JobPosting, len(sources))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range sources {
		g.Go(func() error {
			jobs, err := src.Search(ctx, query)
			if err != nil {
				log.Printf("source %s failed: %v", src.Name(), err)
				return nil
			}
			mu.Lock()
			perSource[i] = jobs
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait() // workers never return errors

	var merged []types.JobPosting
	for _, jobs := range perSource {
		merged = append(merged, jobs...)
	}
	return filterJobType(dedupe(merged), query.JobType)
}

// dedupe keeps the first posting for each case-insensitive (title, company)
// pair, preserving order.
func dedupe(jobs []types.JobPosting) []types.JobPosting {
	seen := make(map[string]bool, len(jobs))
	unique := make([]types.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		key := strings.ToLower(job.Title) + "\x00" + strings.ToLower(job.Company)
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, job)
	}
	return unique
}

// filterJobType drops postings whose type differs from the requested one.
// An empty or "all" request passes everything.
func filterJobType(jobs []types.JobPosting, jobType string) []types.JobPosting {
	if jobType == "" || strings.EqualFold(jobType, "all") {
		return jobs
	}
	filtered := make([]types.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if strings.EqualFold(job.JobType, jobType) {
			filtered = append(filtered, job)
		}
	}
	return filtered
}
