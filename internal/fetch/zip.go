package fetch

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ArchiveError reports an unreadable or invalid cached archive. A prior
// partial or corrupt download that satisfied the existence check surfaces
// here; remediation is deleting the stale cache entry.
type ArchiveError struct {
	Path string
	Err  error
}

func (e *ArchiveError) Error() string {
	return fmt.Sprintf("archive %s: %v", e.Path, e.Err)
}

func (e *ArchiveError) Unwrap() error {
	return e.Err
}

// extractZip extracts archive into dest, stripping exactly one leading
// path component from every entry.
//
// GitHub source archives wrap all content in a single root directory
// named after the revision; stripping it recreates the source tree
// directly under dest. Entries consisting of only the root component are
// skipped entirely.
func extractZip(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return &ArchiveError{Path: archive, Err: err}
	}
	defer r.Close()

	for _, f := range r.File {
		rel, ok := stripRoot(f.Name)
		if !ok {
			continue
		}
		if !filepath.IsLocal(filepath.FromSlash(rel)) {
			return &ArchiveError{Path: archive, Err: fmt.Errorf("entry %q escapes extraction directory", f.Name)}
		}

		out := filepath.Join(dest, filepath.FromSlash(rel))

		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", out, err)
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", filepath.Dir(out), err)
		}
		if err := extractFile(archive, f, out); err != nil {
			return err
		}
	}

	return nil
}

// stripRoot drops the first path component of a zip entry name. Returns
// false for entries with a single component (the archive root itself).
// Works on the raw name so that ".." components survive for the caller's
// escape check rather than being collapsed away.
func stripRoot(name string) (string, bool) {
	name = strings.TrimSuffix(name, "/")
	i := strings.IndexByte(name, '/')
	if i < 0 || i == len(name)-1 {
		return "", false
	}
	return name[i+1:], true
}

func extractFile(archive string, f *zip.File, out string) error {
	rc, err := f.Open()
	if err != nil {
		return &ArchiveError{Path: archive, Err: fmt.Errorf("opening entry %q: %w", f.Name, err)}
	}
	defer rc.Close()

	w, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating %s: %w", out, err)
	}
	if _, err := io.Copy(w, rc); err != nil {
		w.Close()
		return &ArchiveError{Path: archive, Err: fmt.Errorf("extracting entry %q: %w", f.Name, err)}
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", out, err)
	}

	return nil
}
