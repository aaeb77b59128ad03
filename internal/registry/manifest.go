package registry

import (
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Manifest error codes.
const (
	ErrCodeManifestNotFound = "MANIFEST_NOT_FOUND"
	ErrCodeManifestParse    = "MANIFEST_PARSE"
	ErrCodeManifestSchema   = "MANIFEST_SCHEMA"
	ErrCodeManifestOrdinals = "MANIFEST_ORDINALS"
)

// ManifestError reports a failure to load or validate a registry manifest.
type ManifestError struct {
	Code    string
	Path    string
	Message string
}

func (e *ManifestError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Code, e.Path, e.Message)
}

// manifest is the YAML shape of a registry override file.
type manifest struct {
	Revisions []Revision `json:"revisions" yaml:"revisions"`
}

// LoadManifest reads a YAML registry manifest and returns the registry it
// describes.
//
// The decoded document is validated against the embedded CUE schema
// (positive ordinals, 40-char lowercase hex commits, at least one
// revision), then checked for dense 1-based ordinal numbering. Any
// violation returns a *ManifestError; a partially valid manifest never
// produces a registry.
func LoadManifest(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &ManifestError{Code: ErrCodeManifestNotFound, Path: path, Message: "manifest file not found"}
		}
		return nil, &ManifestError{Code: ErrCodeManifestNotFound, Path: path, Message: err.Error()}
	}

	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, &ManifestError{Code: ErrCodeManifestParse, Path: path, Message: fmt.Sprintf("decoding YAML: %v", err)}
	}

	if err := validateManifest(&m); err != nil {
		return nil, &ManifestError{Code: ErrCodeManifestSchema, Path: path, Message: err.Error()}
	}

	for i, rev := range m.Revisions {
		if rev.Ordinal != i+1 {
			return nil, &ManifestError{
				Code: ErrCodeManifestOrdinals,
				Path: path,
				Message: fmt.Sprintf("revisions must be dense and 1-based: entry %d has ordinal %d, want %d",
					i, rev.Ordinal, i+1),
			}
		}
	}

	return New(m.Revisions), nil
}

// validateManifest unifies the decoded manifest with the #Manifest schema
// and requires the result to be fully concrete.
func validateManifest(m *manifest) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE)
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compiling manifest schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Manifest"))
	if err := def.Err(); err != nil {
		return fmt.Errorf("looking up #Manifest: %w", err)
	}

	value := ctx.Encode(m)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}

	unified := def.Unify(value)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return err
	}

	return nil
}
