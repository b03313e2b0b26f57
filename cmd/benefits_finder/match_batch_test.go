package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectProfilePaths(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.json"), []byte(`{}`), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.YAML"), []byte(``), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(``), 0644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "reports"), 0755))

	paths, err := collectProfilePaths(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "a.json"),
		filepath.Join(dir, "b.YAML"),
	}, paths)
}

func TestCollectProfilePaths_MissingDir(t *testing.T) {
	_, err := collectProfilePaths("/nonexistent/profiles")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read profiles directory")
}

func TestMatchBatchCommand_MissingFlags(t *testing.T) {
	binaryPath := getBinaryPath(t)

	cmd := exec.Command(binaryPath, "match-batch")
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "required")
}

func TestMatchBatchCommand_EmptyProfilesDir(t *testing.T) {
	binaryPath := getBinaryPath(t)
	profilesDir := t.TempDir()
	outDir := t.TempDir()

	cmd := exec.Command(binaryPath, "match-batch", "--profiles", profilesDir, "--out", outDir)
	output, err := cmd.CombinedOutput()

	assert.Error(t, err)
	assert.Contains(t, string(output), "no profile files found")
}

func TestMatchBatchCommand_RunsProfiles(t *testing.T) {
	binaryPath := getBinaryPath(t)
	profilesDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "reports")

	require.NoError(t, os.WriteFile(
		filepath.Join(profilesDir, "austin.json"),
		[]byte(`{"zip_code": "78701", "discharge_status": "honorable"}`), 0644))

	cmd := exec.Command(binaryPath, "match-batch", "--profiles", profilesDir, "--out", outDir)
	output, err := cmd.CombinedOutput()

	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, string(output), "Matched 1 profiles")

	_, statErr := os.Stat(filepath.Join(outDir, "austin_report.json"))
	assert.NoError(t, statErr, "report file should exist")
}
