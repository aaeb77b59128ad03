package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
)

// Downloader fetches a remote URL into a local file.
//
// Implementations must not leave a file at dst on failure: the cache
// treats file existence as download completeness.
type Downloader interface {
	Download(ctx context.Context, url, dst string) error
}

// TransferError reports a failed network fetch.
type TransferError struct {
	URL    string
	Status int // HTTP status, 0 when the request never completed
	Err    error
}

func (e *TransferError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("downloading %s: unexpected status %d", e.URL, e.Status)
	}
	return fmt.Sprintf("downloading %s: %v", e.URL, e.Err)
}

func (e *TransferError) Unwrap() error {
	return e.Err
}

// HTTPDownloader fetches archives over HTTP(S).
type HTTPDownloader struct {
	// Client is the HTTP client to use. Defaults to http.DefaultClient.
	Client *http.Client
}

// Download streams url into dst. The body is written to a sibling
// .partial file first and renamed into place once fully written, so an
// interrupted transfer never satisfies the cache's existence check.
func (d *HTTPDownloader) Download(ctx context.Context, url, dst string) error {
	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransferError{URL: url, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return &TransferError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TransferError{URL: url, Status: resp.StatusCode}
	}

	partial := dst + ".partial"
	f, err := os.Create(partial)
	if err != nil {
		return fmt.Errorf("creating %s: %w", partial, err)
	}

	if _, err := io.Copy(f, resp.Body); err != nil {
		f.Close()
		os.Remove(partial)
		return &TransferError{URL: url, Err: err}
	}
	if err := f.Close(); err != nil {
		os.Remove(partial)
		return fmt.Errorf("closing %s: %w", partial, err)
	}

	if err := os.Rename(partial, dst); err != nil {
		os.Remove(partial)
		return fmt.Errorf("finalizing %s: %w", dst, err)
	}

	return nil
}
