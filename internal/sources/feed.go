package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/job-matcher/internal/schemas"
	"github.com/jonathan/job-matcher/internal/types"
)

// FeedSchemaPath is the feed schema location relative to the repo root.
const FeedSchemaPath = "schemas/job_feed.schema.json"

// feedDocument is the on-disk shape of a job feed file.
type feedDocument struct {
	Source string             `json:"source,omitempty"`
	Jobs   []types.JobPosting `json:"jobs"`
}

// FeedBoard serves postings from a local JSON feed file, validated against
// the job feed schema before decoding. Feeds are how operators plug in
// postings from systems we have no scraper for.
type FeedBoard struct {
	BoardName string
	Path      string
	// SchemaPath overrides the default schema location, mainly for tests.
	SchemaPath string
}

func (b *FeedBoard) Name() string { return b.BoardName }

func (b *FeedBoard) Search(_ context.Context, _ Query) ([]types.JobPosting, error) {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		return nil, fmt.Errorf("read feed %s: %w", b.Path, err)
	}

	schemaPath := b.SchemaPath
	if schemaPath == "" {
		schemaPath = schemas.ResolveSchemaPath(FeedSchemaPath)
	}
	if schemaPath == "" {
		return nil, fmt.Errorf("feed schema %s not found", FeedSchemaPath)
	}
	schema, err := os.ReadFile(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("read feed schema: %w", err)
	}
	if err := schemas.ValidateJSONString(string(schema), string(data)); err != nil {
		return nil, fmt.Errorf("feed %s: %w", b.Path, err)
	}

	var doc feedDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode feed %s: %w", b.Path, err)
	}
	return doc.Jobs, nil
}
