package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func readSchema(t *testing.T) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(".", "job_feed.schema.json"))
	require.NoError(t, err, "should be able to read schema file")
	return data
}

func TestJobFeedSchema_ValidJSON(t *testing.T) {
	var v interface{}
	assert.NoError(t, json.Unmarshal(readSchema(t), &v), "schema file should be valid JSON")
}

func TestJobFeedSchema_Compiles(t *testing.T) {
	_, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(readSchema(t)))
	assert.NoError(t, err, "schema should compile as a JSON Schema")
}

func TestJobFeedSchema_AcceptsMinimalFeed(t *testing.T) {
	feed := `{"jobs":[{"id":"feed-1","title":"Go Developer","company":"Acme","description":"Build services in Go."}]}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(readSchema(t)),
		gojsonschema.NewStringLoader(feed),
	)
	require.NoError(t, err)
	assert.True(t, result.Valid(), "minimal feed should validate: %v", result.Errors())
}

func TestJobFeedSchema_RejectsPostingWithoutTitle(t *testing.T) {
	feed := `{"jobs":[{"id":"feed-1","company":"Acme","description":"No title here."}]}`

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(readSchema(t)),
		gojsonschema.NewStringLoader(feed),
	)
	require.NoError(t, err)
	assert.False(t, result.Valid())
}
