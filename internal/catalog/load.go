// Package catalog supplies the built-in benefit catalog, loads external
// catalog files, and checks catalog integrity on behalf of producers.
package catalog

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

// catalogFile is the on-disk shape of an external catalog.
type catalogFile struct {
	Benefits []types.Benefit `json:"benefits"`
}

// Load reads an external catalog from a JSON or YAML file, validates it
// against the catalog schema, and validates every record. The returned
// slice preserves file order.
func Load(path string) ([]types.Benefit, error) {
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
	if schemaPath := schemas.ResolveSchemaPath("schemas/benefit_catalog.schema.json"); schemaPath != "" {
		if err := schemas.ValidateJSONBytes(schemaPath, content); err != nil {
			return nil, &LoadError{
				Message: "catalog failed schema validation",
				Cause:   err,
			}
		}
	}

	var file catalogFile
	if err := json.Unmarshal(content, &file); err != nil {
		return nil, &LoadError{
			Message: "failed to unmarshal JSON",
			Cause:   err,
		}
	}

	for i := range file.Benefits {
		if err := file.Benefits[i].Validate(); err != nil {
			return nil, &LoadError{
				Message: fmt.Sprintf("benefit %q failed validation", file.Benefits[i].ID),
				Cause:   err,
			}
		}
	}

	return file.Benefits, nil
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
