package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	// Create temp config file
	content := `{
		"catalog": "catalog.yaml",
		"database_url": "postgres://localhost:5432/benefits",
		"workers": 8,
		"group": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "catalog.yaml", cfg.Catalog)
	assert.Equal(t, "postgres://localhost:5432/benefits", cfg.DatabaseURL)
	assert.Equal(t, 8, cfg.Workers)
	assert.True(t, cfg.Group)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	content := `{ invalid json }`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/config.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "config path is empty")
}

func TestValidate_NegativeWorkers(t *testing.T) {
	cfg := &Config{
		Workers: -1,
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "workers")
}

func TestValidate_MissingCatalogFile(t *testing.T) {
	cfg := &Config{
		Catalog: "/nonexistent/catalog.yaml",
	}

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "catalog file not found")
}

func TestValidate_ValidConfig(t *testing.T) {
	catalogFile := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(catalogFile, []byte(`{"benefits": []}`), 0644))

	cfg := &Config{
		Catalog: catalogFile,
		Workers: 4,
		Verbose: true,
	}

	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Catalog:     "default_catalog.yaml",
		DatabaseURL: "postgres://default:5432/benefits",
		Out:         "report.json",
		Workers:     8,
	}

	partial := Config{
		Catalog: "custom_catalog.json",
	}

	merged := partial.MergeWithDefaults(defaults)

	// Custom values should be preserved
	assert.Equal(t, "custom_catalog.json", merged.Catalog)

	// Default values should fill in empty fields
	assert.Equal(t, "postgres://default:5432/benefits", merged.DatabaseURL)
	assert.Equal(t, "report.json", merged.Out)
	assert.Equal(t, 8, merged.Workers)
}

func TestMergeWithDefaults_EmptyDefaults(t *testing.T) {
	cfg := Config{
		Catalog: "catalog.json",
	}

	merged := cfg.MergeWithDefaults(Config{})

	assert.Equal(t, "catalog.json", merged.Catalog)
	// Workers falls back to the built-in default when neither side sets it.
	assert.Equal(t, DefaultConfig().Workers, merged.Workers)
}
