// Package gameconfig loads and validates event configuration documents.
package gameconfig

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/TowerIdle_Go/internal/domain"
	"github.com/osse101/TowerIdle_Go/internal/validation"
)

//go:embed events/*.yaml schema/*.json
var files embed.FS

// Load reads an event configuration from path. An empty path loads the
// embedded default event. The format follows the file extension.
func Load(path string) (*domain.EventConfig, error) {
	if path == "" {
		slog.Default().Info(LogMsgUsingEmbedded, "file", DefaultEventFile)
		return Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read event config %s: %w", path, err)
	}

	cfg, err := Parse(data, formatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	slog.Default().Info(LogMsgLoadedEvent,
		"path", path,
		"event_id", cfg.ID,
		"producers", len(cfg.Producers),
		"boosts", len(cfg.Boosts))
	return cfg, nil
}

// Default returns the embedded default event
func Default() (*domain.EventConfig, error) {
	data, err := files.ReadFile(DefaultEventFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded event: %w", err)
	}
	return Parse(data, FormatYAML)
}

// Parse decodes and validates a document in the given format
func Parse(data []byte, format string) (*domain.EventConfig, error) {
	var cfg domain.EventConfig

	switch format {
	case FormatJSON:
		if err := validateJSONSchema(data); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidConfig, err)
		}
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to decode JSON: %v", domain.ErrInvalidConfig, err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("%w: failed to decode YAML: %v", domain.ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported format %q", domain.ErrInvalidConfig, format)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func formatFromPath(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	default:
		return FormatYAML
	}
}

var schemaValidator = newSchemaValidator()

func newSchemaValidator() validation.SchemaValidator {
	v := validation.NewSchemaValidator()
	schema, err := files.ReadFile(eventSchemaFile)
	if err != nil {
		panic(fmt.Sprintf("embedded schema missing: %v", err))
	}
	if err := v.AddSchema(eventSchemaName, schema); err != nil {
		panic(fmt.Sprintf("embedded schema invalid: %v", err))
	}
	return v
}

func validateJSONSchema(data []byte) error {
	return schemaValidator.ValidateBytes(data, eventSchemaName)
}
