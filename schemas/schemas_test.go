package schemas

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			data, err := FS.ReadFile(name)
			require.NoError(t, err, "should be able to read schema file")

			var v map[string]any
			require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON: %s", name)
			assert.Equal(t, "http://json-schema.org/draft-07/schema#", v["$schema"])
		})
	}
}

func TestNames_MatchEmbeddedFiles(t *testing.T) {
	entries, err := FS.ReadDir(".")
	require.NoError(t, err)
	assert.Len(t, entries, len(Names()))
}
