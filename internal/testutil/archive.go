// Package testutil provides shared fixtures for cache and pipeline tests:
// in-memory source archives and instrumented downloaders.
package testutil

import (
	"archive/zip"
	"bytes"
	"fmt"
	"strings"
)

// ZipEntry is one entry of a synthetic source archive. Entries with a
// trailing slash and empty Body are directories.
type ZipEntry struct {
	Name string
	Body string
}

// BuildZip assembles a zip archive from entries and returns its bytes.
func BuildZip(entries []ZipEntry) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := zip.NewWriter(buf)

	for _, e := range entries {
		if strings.HasSuffix(e.Name, "/") {
			if _, err := w.Create(e.Name); err != nil {
				return nil, fmt.Errorf("creating dir entry %q: %w", e.Name, err)
			}
			continue
		}
		f, err := w.Create(e.Name)
		if err != nil {
			return nil, fmt.Errorf("creating entry %q: %w", e.Name, err)
		}
		if _, err := f.Write([]byte(e.Body)); err != nil {
			return nil, fmt.Errorf("writing entry %q: %w", e.Name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("closing archive: %w", err)
	}
	return buf.Bytes(), nil
}

// SourceZip builds an archive shaped like a GitHub source snapshot for
// the given commit: a single root directory wrapping the QEMU files the
// pipeline reads, with headerText at include/qemu/qemu-plugin.h and
// symbolsText at plugins/qemu-plugins.symbols.
func SourceZip(commit, headerText, symbolsText string) ([]byte, error) {
	root := "qemu-" + commit
	return BuildZip([]ZipEntry{
		{Name: root + "/"},
		{Name: root + "/include/qemu/qemu-plugin.h", Body: headerText},
		{Name: root + "/plugins/qemu-plugins.symbols", Body: symbolsText},
	})
}
