package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/invopop/jsonschema"

	"github.com/bnema/tabshell/internal/domain/entity"
)

const schemaBaseURL = "https://github.com/bnema/tabshell/"

func reflectSchema(v any, id, title, description string) ([]byte, error) {
	r := new(jsonschema.Reflector)
	schema := r.Reflect(v)

	schema.ID = jsonschema.ID(schemaBaseURL + id)
	schema.Title = title
	schema.Description = description

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return data, nil
}

// DocumentSchema returns the JSON Schema of the navigation document served
// by the schema endpoint.
func DocumentSchema() ([]byte, error) {
	return reflectSchema(&entity.Schema{}, "navigation.schema.json",
		"tabshell navigation document",
		"Tabs, their screens and the theme a tabshell session is built from")
}

// ConfigSchema returns the JSON Schema of config.toml.
func ConfigSchema() ([]byte, error) {
	return reflectSchema(&Config{}, "config.schema.json",
		"tabshell configuration",
		"Configuration schema for tabshell, a terminal shell for remote tab navigation documents")
}

// GenerateSchemaFile writes config.schema.json next to the config file and
// returns its path.
func GenerateSchemaFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get config directory: %w", err)
	}

	data, err := ConfigSchema()
	if err != nil {
		return "", err
	}

	schemaFile := filepath.Join(configDir, "config.schema.json")
	if err := os.MkdirAll(configDir, dirPerm); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(schemaFile, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write schema file: %w", err)
	}
	return schemaFile, nil
}
