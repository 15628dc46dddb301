package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func feedSchemaPath(t *testing.T) string {
	t.Helper()
	path, err := filepath.Abs(filepath.Join("..", "..", "schemas", "job_feed.schema.json"))
	require.NoError(t, err)
	return path
}

func writeFeed(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFeedBoard_Search(t *testing.T) {
	path := writeFeed(t, `{
		"source": "internal-board",
		"jobs": [
			{
				"id": "feed-1",
				"title": "Go Developer",
				"company": "Acme",
				"location": "Remote",
				"description": "Build backend services in Go with PostgreSQL.",
				"requirements": ["Go", "PostgreSQL"],
				"jobType": "Full-time",
				"postedDate": "2024-05-01T00:00:00Z",
				"url": "https://jobs.acme.example/go-developer"
			}
		]
	}`)

	board := &FeedBoard{BoardName: "feed", Path: path, SchemaPath: feedSchemaPath(t)}
	jobs, err := board.Search(context.Background(), Query{})

	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "feed-1", jobs[0].ID)
	assert.Equal(t, "Go Developer", jobs[0].Title)
	assert.Equal(t, []string{"Go", "PostgreSQL"}, jobs[0].Requirements)
}

func TestFeedBoard_RejectsInvalidFeed(t *testing.T) {
	// Missing required "title" on the posting.
	path := writeFeed(t, `{"jobs":[{"id":"feed-1","company":"Acme","description":"x"}]}`)

	board := &FeedBoard{BoardName: "feed", Path: path, SchemaPath: feedSchemaPath(t)}
	_, err := board.Search(context.Background(), Query{})

	assert.Error(t, err)
}

func TestFeedBoard_MissingFile(t *testing.T) {
	board := &FeedBoard{
		BoardName:  "feed",
		Path:       filepath.Join(t.TempDir(), "absent.json"),
		SchemaPath: feedSchemaPath(t),
	}

	_, err := board.Search(context.Background(), Query{})

	assert.Error(t, err)
}
