// Package profile loads veteran profile files for the matching pipeline.
package profile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marcus/benefits-finder/internal/schemas"
	"github.com/marcus/benefits-finder/internal/types"
)

// Load reads a veteran profile from a JSON or YAML file, validates it
// against the profile schema, and validates the decoded record. Fields
// absent from the file stay nil so the engine can tell unknown answers
// apart from explicit ones.
func Load(path string) (*types.VeteranProfile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext == ".yaml" || ext == ".yml" {
		converted, err := yamlToJSON(content)
		if err != nil {
			return nil, &LoadError{
				Message: "failed to parse YAML",
				Cause:   err,
			}
		}
		content = converted
	}

	// Schema validation is best effort outside the repo root; record
	// validation below is the hard gate.
	if schemaPath := schemas.ResolveSchemaPath("schemas/veteran_profile.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, content); err != nil {
			return nil, &LoadError{
				Message: "profile failed schema validation",
				Cause:   err,
			}
		}
	}

	var veteran types.VeteranProfile
	if err := json.Unmarshal(content, &veteran); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	if err := veteran.Validate(); err != nil {
		return nil, &LoadError{
			Message: "profile failed validation",
			Cause:   err,
		}
	}

	return &veteran, nil
}

// yamlToJSON re-encodes YAML content as JSON so the shared types keep a
// single set of field tags.
func yamlToJSON(content []byte) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(content, &raw); err != nil {
		return nil, err
	}
	return json.Marshal(raw)
}
