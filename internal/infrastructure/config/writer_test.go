package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sectionHeaders(content string) []string {
	var sections []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			sections = append(sections, line)
		}
	}
	return sections
}

func TestWriteConfigOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteConfigOrdered(DefaultConfig(), path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	sections := sectionHeaders(string(content))
	require.NotEmpty(t, sections)
	assert.IsNonDecreasing(t, sections)
	assert.Contains(t, string(content), "portosprivados.org.br")

	assert.Error(t, WriteConfigOrdered(nil, path))
}

func TestSortTOMLSections(t *testing.T) {
	input := `locale = 'en'

[schema]
endpoint = 'https://example.com'

[appearance]
active_tint = 'tomato'

[schema.extra]
a = 1

[appearance.palette]
tomato = '#ff6347'
`

	result := sortTOMLSections(input)

	assert.True(t, strings.HasPrefix(result, "locale = 'en'\n"))
	assert.Equal(t, []string{
		"[appearance]",
		"[appearance.palette]",
		"[schema]",
		"[schema.extra]",
	}, sectionHeaders(result))
	assert.True(t, strings.HasSuffix(result, "'#ff6347'\n"))
}

func TestDocumentSchema(t *testing.T) {
	data, err := DocumentSchema()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "tabshell navigation document", doc["title"])
	assert.Contains(t, string(data), `"tabs"`)
	assert.Contains(t, string(data), `"screens"`)
}

func TestGenerateSchemaFile(t *testing.T) {
	configDir := isolateXDG(t)

	path, err := GenerateSchemaFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(configDir, "config.schema.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "reuse_active_route")
}
