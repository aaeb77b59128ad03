package testutil

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// ArchiveDownloader is a Downloader test double that serves canned
// archive bytes keyed by URL and counts every call.
//
// Thread-safety: all methods are safe for concurrent use, although the
// pipeline itself is strictly sequential.
type ArchiveDownloader struct {
	mu       sync.Mutex
	archives map[string][]byte
	errs     map[string]error
	calls    int
}

// NewArchiveDownloader creates an empty downloader. Unregistered URLs
// fail the way an unreachable endpoint would.
func NewArchiveDownloader() *ArchiveDownloader {
	return &ArchiveDownloader{
		archives: map[string][]byte{},
		errs:     map[string]error{},
	}
}

// Serve registers archive bytes for a URL.
func (d *ArchiveDownloader) Serve(url string, data []byte) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.archives[url] = data
}

// Fail registers an error for a URL, simulating a transfer failure.
func (d *ArchiveDownloader) Fail(url string, err error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.errs[url] = err
}

// Calls returns how many downloads were attempted.
func (d *ArchiveDownloader) Calls() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.calls
}

// Download writes the canned bytes for url to dst, or returns the
// registered error. Nothing is written to dst on failure.
func (d *ArchiveDownloader) Download(_ context.Context, url, dst string) error {
	d.mu.Lock()
	d.calls++
	err, failed := d.errs[url]
	data, ok := d.archives[url]
	d.mu.Unlock()

	if failed {
		return err
	}
	if !ok {
		return fmt.Errorf("no archive registered for %s", url)
	}
	return os.WriteFile(dst, data, 0o644)
}
