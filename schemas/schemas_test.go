package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/benefits-finder/internal/catalog"
	"github.com/marcus/benefits-finder/internal/schemas"
	"github.com/marcus/benefits-finder/internal/types"
)

var schemaFiles = []string{
	"common.schema.json",
	"benefit_catalog.schema.json",
	"veteran_profile.schema.json",
	"match_report.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var v interface{}
			err = json.Unmarshal(data, &v)
			assert.NoError(t, err, "schema file should be valid JSON: %s", schemaFile)
		})
	}
}

func TestSchemaFiles_DeclareDraft(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err)

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj))

			assert.Contains(t, schemaObj, "$schema")
			assert.Contains(t, schemaObj, "$id")
		})
	}
}

func TestBenefitCatalogSchema_AcceptsBuiltInCatalog(t *testing.T) {
	document := struct {
		Benefits []types.Benefit `json:"benefits"`
	}{Benefits: catalog.Default()}

	content, err := json.Marshal(document)
	require.NoError(t, err)

	err = schemas.ValidateJSONBytes(filepath.Join(".", "benefit_catalog.schema.json"), content)
	assert.NoError(t, err)
}

func TestBenefitCatalogSchema_RejectsUnknownCategory(t *testing.T) {
	content := []byte(`{
		"benefits": [
			{"id": "x", "name": "X", "category": "lottery", "level": "federal"}
		]
	}`)

	err := schemas.ValidateJSONBytes(filepath.Join(".", "benefit_catalog.schema.json"), content)
	require.Error(t, err)

	var validationErr *schemas.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.NotEmpty(t, validationErr.Errors)
}

func TestVeteranProfileSchema_RequiresZipCode(t *testing.T) {
	schemaPath := filepath.Join(".", "veteran_profile.schema.json")

	err := schemas.ValidateJSONBytes(schemaPath, []byte(`{"state": "TX"}`))
	assert.Error(t, err)

	err = schemas.ValidateJSONBytes(schemaPath, []byte(`{"zip_code": "78701", "disability_rating": 80}`))
	assert.NoError(t, err)
}
