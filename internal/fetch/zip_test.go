package fetch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpick/qemu-plugin-bindgen/internal/testutil"
)

func writeArchive(t *testing.T, entries []testutil.ZipEntry) string {
	t.Helper()
	data, err := testutil.BuildZip(entries)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "src.zip")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestExtractZip_StripsOneLeadingComponent(t *testing.T) {
	archive := writeArchive(t, []testutil.ZipEntry{
		{Name: "root/"},
		{Name: "root/a/"},
		{Name: "root/a/b.txt", Body: "contents of b"},
		{Name: "root/top.txt", Body: "top-level file"},
	})
	dest := t.TempDir()

	require.NoError(t, extractZip(archive, dest))

	b, err := os.ReadFile(filepath.Join(dest, "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "contents of b", string(b))

	top, err := os.ReadFile(filepath.Join(dest, "top.txt"))
	require.NoError(t, err)
	assert.Equal(t, "top-level file", string(top))

	// The root directory itself is never materialized.
	_, statErr := os.Stat(filepath.Join(dest, "root"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtractZip_SkipsBareRootEntry(t *testing.T) {
	archive := writeArchive(t, []testutil.ZipEntry{
		{Name: "root/"},
	})
	dest := t.TempDir()

	require.NoError(t, extractZip(archive, dest))

	entries, err := os.ReadDir(dest)
	require.NoError(t, err)
	assert.Empty(t, entries, "an archive of only the root produces an empty tree")
}

func TestExtractZip_CreatesMissingParents(t *testing.T) {
	// No explicit directory entries; parents come from the file path.
	archive := writeArchive(t, []testutil.ZipEntry{
		{Name: "root/include/qemu/qemu-plugin.h", Body: "header"},
	})
	dest := t.TempDir()

	require.NoError(t, extractZip(archive, dest))

	got, err := os.ReadFile(filepath.Join(dest, "include", "qemu", "qemu-plugin.h"))
	require.NoError(t, err)
	assert.Equal(t, "header", string(got))
}

func TestExtractZip_RejectsPathEscape(t *testing.T) {
	archive := writeArchive(t, []testutil.ZipEntry{
		{Name: "root/../evil.txt", Body: "escape attempt"},
	})
	dest := t.TempDir()

	err := extractZip(archive, dest)
	var archiveErr *ArchiveError
	require.ErrorAs(t, err, &archiveErr)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(dest), "evil.txt"))
	assert.True(t, os.IsNotExist(statErr), "escaping entry must not be written")
}

func TestExtractZip_InvalidArchive(t *testing.T) {
	dir := t.TempDir()
	archive := filepath.Join(dir, "corrupt.zip")
	require.NoError(t, os.WriteFile(archive, []byte("this is not a zip file"), 0o644))

	err := extractZip(archive, filepath.Join(dir, "out"))

	var archiveErr *ArchiveError
	require.ErrorAs(t, err, &archiveErr)
	assert.Equal(t, archive, archiveErr.Path)
}
