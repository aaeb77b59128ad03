package pipeline

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
)

// Metadata locates the directories the pipeline writes to: the package's
// declared source directory for artifacts and a shared build-cache
// scratch directory for downloaded sources.
type Metadata interface {
	SourceDir() (string, error)
	ScratchDir() (string, error)
}

// ResolveError reports that build metadata could not locate the expected
// package or cache root. Always fatal before any revision is processed.
type ResolveError struct {
	Message string
	Err     error
}

func (e *ResolveError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("resolving build metadata: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("resolving build metadata: %s", e.Message)
}

func (e *ResolveError) Unwrap() error {
	return e.Err
}

// GoToolMetadata resolves directories by querying the Go toolchain for
// the enclosing module.
type GoToolMetadata struct {
	// Module is the expected module path; resolution fails if the
	// enclosing go.mod declares a different module.
	Module string

	// SourceDirName is the artifact directory relative to the module
	// root.
	SourceDirName string

	// CacheSubdir is this tool's subdirectory of the Go build cache.
	CacheSubdir string

	// Env overrides `go env` lookups in tests. Nil means the real
	// toolchain.
	Env func(key string) (string, error)
}

// NewGoToolMetadata returns metadata resolution for this tool's own
// module.
func NewGoToolMetadata() *GoToolMetadata {
	return &GoToolMetadata{
		Module:        "github.com/cpick/qemu-plugin-bindgen",
		SourceDirName: "qemuplugin",
		CacheSubdir:   "qemu-plugin-bindgen",
	}
}

// SourceDir locates the module root via GOMOD, verifies the module path,
// and returns the declared source subdirectory.
func (m *GoToolMetadata) SourceDir() (string, error) {
	gomod, err := m.env("GOMOD")
	if err != nil {
		return "", &ResolveError{Message: "querying GOMOD", Err: err}
	}
	if gomod == "" || gomod == os.DevNull {
		return "", &ResolveError{Message: "not inside a module (GOMOD is unset)"}
	}

	data, err := os.ReadFile(gomod)
	if err != nil {
		return "", &ResolveError{Message: fmt.Sprintf("reading %s", gomod), Err: err}
	}
	path := modfile.ModulePath(data)
	if path != m.Module {
		return "", &ResolveError{Message: fmt.Sprintf("module at %s is %q, want %q", gomod, path, m.Module)}
	}

	return filepath.Join(filepath.Dir(gomod), m.SourceDirName), nil
}

// ScratchDir returns this tool's subdirectory of the shared Go build
// cache.
func (m *GoToolMetadata) ScratchDir() (string, error) {
	gocache, err := m.env("GOCACHE")
	if err != nil {
		return "", &ResolveError{Message: "querying GOCACHE", Err: err}
	}
	if gocache == "" {
		return "", &ResolveError{Message: "build cache location unknown (GOCACHE is unset)"}
	}
	return filepath.Join(gocache, m.CacheSubdir), nil
}

func (m *GoToolMetadata) env(key string) (string, error) {
	if m.Env != nil {
		return m.Env(key)
	}
	out, err := exec.Command("go", "env", key).Output()
	if err != nil {
		return "", fmt.Errorf("go env %s: %w", key, err)
	}
	return strings.TrimSpace(string(out)), nil
}

// FixedMetadata returns the same directories on every call. Used when
// the caller overrides resolution explicitly, and in tests.
type FixedMetadata struct {
	Source  string
	Scratch string
}

func (m *FixedMetadata) SourceDir() (string, error)  { return m.Source, nil }
func (m *FixedMetadata) ScratchDir() (string, error) { return m.Scratch, nil }
