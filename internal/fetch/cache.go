// Package fetch maintains the on-disk cache of QEMU source snapshots, one
// archive and one extracted tree per tracked revision.
//
// The cache is existence-based: an archive file that exists is assumed
// complete, an extracted tree that exists is assumed fully extracted.
// That trades correctness-under-corruption for cheap idempotent re-runs;
// a corrupt entry is remediated by deleting it (see Refresh), never
// detected automatically.
package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// DefaultBaseURL is the upstream project the archives are fetched from.
const DefaultBaseURL = "https://github.com/qemu/qemu"

// extractingSuffix marks an in-progress extraction staging directory.
const extractingSuffix = ".extracting"

// Cache fetches and extracts source snapshots keyed by commit hash.
type Cache struct {
	dir     string
	baseURL string
	client  Downloader
	log     *zap.Logger
}

// NewCache creates a cache rooted at dir. Archives are fetched from
// baseURL (DefaultBaseURL when empty) using client (HTTPDownloader when
// nil).
func NewCache(dir, baseURL string, client Downloader) *Cache {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if client == nil {
		client = &HTTPDownloader{}
	}
	return &Cache{dir: dir, baseURL: baseURL, client: client, log: zap.NewNop()}
}

// SetLogger installs a logger for progress events.
func (c *Cache) SetLogger(log *zap.Logger) {
	if log != nil {
		c.log = log
	}
}

// ArchiveURL returns the download URL for a commit's source archive.
func (c *Cache) ArchiveURL(commit string) string {
	return fmt.Sprintf("%s/archive/%s.zip", c.baseURL, commit)
}

// ArchivePath returns the cached archive location for a commit.
func (c *Cache) ArchivePath(commit string) string {
	return filepath.Join(c.dir, fmt.Sprintf("qemu-%s.zip", commit))
}

// TreePath returns the extracted tree location for a commit.
func (c *Cache) TreePath(commit string) string {
	return filepath.Join(c.dir, fmt.Sprintf("qemu-%s", commit))
}

// EnsureSource returns the extracted source tree for commit, downloading
// and extracting as needed.
//
// Idempotent: with an intact cache, a second call performs no I/O beyond
// existence checks and returns the same path. Extraction stages into a
// temporary directory renamed into place, so a crashed run never leaves a
// half-extracted tree that passes the existence check.
func (c *Cache) EnsureSource(ctx context.Context, commit string) (string, error) {
	archive := c.ArchivePath(commit)
	tree := c.TreePath(commit)

	if _, err := os.Stat(archive); os.IsNotExist(err) {
		url := c.ArchiveURL(commit)
		c.log.Info("downloading source archive",
			zap.String("url", url),
			zap.String("archive", archive))
		if err := c.client.Download(ctx, url, archive); err != nil {
			return "", err
		}
	} else if err != nil {
		return "", fmt.Errorf("checking archive %s: %w", archive, err)
	}

	if _, err := os.Stat(tree); os.IsNotExist(err) {
		c.log.Info("extracting source archive",
			zap.String("archive", archive),
			zap.String("tree", tree))
		staging := tree + extractingSuffix
		if err := os.RemoveAll(staging); err != nil {
			return "", fmt.Errorf("clearing staging directory %s: %w", staging, err)
		}
		if err := os.MkdirAll(staging, 0o755); err != nil {
			return "", fmt.Errorf("creating staging directory %s: %w", staging, err)
		}
		if err := extractZip(archive, staging); err != nil {
			os.RemoveAll(staging)
			return "", err
		}
		if err := os.Rename(staging, tree); err != nil {
			os.RemoveAll(staging)
			return "", fmt.Errorf("finalizing tree %s: %w", tree, err)
		}
	} else if err != nil {
		return "", fmt.Errorf("checking tree %s: %w", tree, err)
	}

	return tree, nil
}

// Refresh drops the cached archive and tree for commit so the next
// EnsureSource refetches from scratch. This is the manual remediation
// path for corrupt cache entries.
func (c *Cache) Refresh(commit string) error {
	archive := c.ArchivePath(commit)
	if err := os.Remove(archive); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing archive %s: %w", archive, err)
	}
	tree := c.TreePath(commit)
	for _, dir := range []string{tree, tree + extractingSuffix} {
		if err := os.RemoveAll(dir); err != nil {
			return fmt.Errorf("removing tree %s: %w", dir, err)
		}
	}
	return nil
}
