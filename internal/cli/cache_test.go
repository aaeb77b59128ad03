package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCacheEntry(t *testing.T, scratch, commit string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Join(scratch, "qemu-"+commit), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(scratch, "qemu-"+commit+".zip"), []byte("zip"), 0o644))
}

func TestCacheCleanAll(t *testing.T) {
	workDir := t.TempDir()
	scratch := filepath.Join(workDir, "scratch")
	manifest := writeTestManifest(t, workDir, testManifestCommits)
	for _, commit := range testManifestCommits {
		seedCacheEntry(t, scratch, commit)
	}

	stdout, _, err := runCLI(t,
		"cache", "clean",
		"--registry", manifest,
		"--scratch", scratch,
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Cleaned 2 cache entries")

	for _, commit := range testManifestCommits {
		_, err := os.Stat(filepath.Join(scratch, "qemu-"+commit+".zip"))
		assert.True(t, os.IsNotExist(err), "archive for %s should be removed", commit)
		_, err = os.Stat(filepath.Join(scratch, "qemu-"+commit))
		assert.True(t, os.IsNotExist(err), "tree for %s should be removed", commit)
	}
}

func TestCacheCleanSingleRevision(t *testing.T) {
	workDir := t.TempDir()
	scratch := filepath.Join(workDir, "scratch")
	manifest := writeTestManifest(t, workDir, testManifestCommits)
	for _, commit := range testManifestCommits {
		seedCacheEntry(t, scratch, commit)
	}

	stdout, _, err := runCLI(t,
		"cache", "clean",
		"--registry", manifest,
		"--scratch", scratch,
		"--revision", "1",
	)
	require.NoError(t, err)
	assert.Contains(t, stdout, "✓ Cleaned 1 cache entry")

	_, err = os.Stat(filepath.Join(scratch, "qemu-"+testManifestCommits[0]+".zip"))
	assert.True(t, os.IsNotExist(err))

	// The other revision's cache entry survives.
	_, err = os.Stat(filepath.Join(scratch, "qemu-"+testManifestCommits[1]+".zip"))
	assert.NoError(t, err)
}

func TestCacheCleanOutOfRangeRevision(t *testing.T) {
	workDir := t.TempDir()
	manifest := writeTestManifest(t, workDir, testManifestCommits)

	stdout, _, err := runCLI(t,
		"cache", "clean",
		"--registry", manifest,
		"--scratch", filepath.Join(workDir, "scratch"),
		"--revision", "9",
	)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stdout, "Error [OUT_OF_RANGE]")
}

func TestCacheCleanJSON(t *testing.T) {
	workDir := t.TempDir()
	scratch := filepath.Join(workDir, "scratch")
	manifest := writeTestManifest(t, workDir, testManifestCommits)

	stdout, _, err := runCLI(t,
		"cache", "clean",
		"--format", "json",
		"--registry", manifest,
		"--scratch", scratch,
	)
	require.NoError(t, err)
	assert.True(t, strings.Contains(stdout, `"status":"ok"`) || strings.Contains(stdout, `"status": "ok"`))
	assert.Contains(t, stdout, testManifestCommits[0])
}
