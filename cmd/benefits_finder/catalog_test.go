package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogValidateCommand_ValidFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	catalogPath := filepath.Join("..", "..", "testdata", "valid", "benefit_catalog.json")

	cmd := exec.Command(binaryPath, "catalog", "validate", catalogPath)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "Catalog OK")
}

func TestCatalogValidateCommand_MissingFile(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "catalog", "validate", "/nonexistent/catalog.json")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "catalog failed to load")
}

func TestCatalogValidateCommand_DuplicateIDs(t *testing.T) {
	binaryPath := getBinaryPath(t)

	catalogPath := filepath.Join(t.TempDir(), "dupes.json")
	content := `{
  "benefits": [
    {
      "id": "twin",
      "name": "First Twin",
      "description": "First of two benefits sharing an ID.",
      "category": "education",
      "level": "federal",
      "eligibility": {"summary": "Any veteran."},
      "action": {"instructions": "Apply online."},
      "source": {"name": "VA", "url": "https://www.va.gov/", "verified_at": "2025-06-01"}
    },
    {
      "id": "twin",
      "name": "Second Twin",
      "description": "Second of two benefits sharing an ID.",
      "category": "education",
      "level": "federal",
      "eligibility": {"summary": "Any veteran."},
      "action": {"instructions": "Apply online."},
      "source": {"name": "VA", "url": "https://www.va.gov/", "verified_at": "2025-06-01"}
    }
  ]
}`
	require.NoError(t, os.WriteFile(catalogPath, []byte(content), 0644))

	cmd := exec.Command(binaryPath, "catalog", "validate", catalogPath)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "duplicate_id")
	assert.Contains(t, string(output), "integrity errors")
}
