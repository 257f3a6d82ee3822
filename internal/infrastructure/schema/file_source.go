package schema

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bnema/tabshell/internal/application/port"
	"github.com/bnema/tabshell/internal/logging"
)

// FileSource reads the document from a local JSON or YAML file.
type FileSource struct {
	path string
}

var _ port.SchemaSource = (*FileSource)(nil)

// NewFileSource creates a source reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// Path returns the file the document is read from.
func (s *FileSource) Path() string {
	return s.path
}

// Fetch implements port.SchemaSource. Every error wraps port.ErrSchemaFetch.
func (s *FileSource) Fetch(ctx context.Context) (any, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrSchemaFetch, err)
	}

	doc, err := Decode(s.path, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", port.ErrSchemaFetch, err)
	}

	logging.FromContext(ctx).Debug().Str("path", s.path).Msg("schema document read")
	return doc, nil
}

// Decode parses data as YAML when name has a YAML extension and as JSON
// otherwise.
func Decode(name string, data []byte) (any, error) {
	var doc any
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	}
	return doc, nil
}

// Origin returns the path or URL src reads from, or "" for other sources.
func Origin(src port.SchemaSource) string {
	switch s := src.(type) {
	case *FileSource:
		return s.Path()
	case *HTTPSource:
		return s.Endpoint()
	default:
		return ""
	}
}

// NewSource returns a file source when path is set and an HTTP source
// otherwise.
func NewSource(path, endpoint string, opts ...HTTPOption) port.SchemaSource {
	if path != "" {
		return NewFileSource(path)
	}
	src := NewHTTPSource(endpoint, 0, "")
	for _, opt := range opts {
		opt(src)
	}
	return src
}
