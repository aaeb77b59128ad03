package cli

import (
	"errors"

	"github.com/cpick/qemu-plugin-bindgen/internal/bindgen"
	"github.com/cpick/qemu-plugin-bindgen/internal/fetch"
	"github.com/cpick/qemu-plugin-bindgen/internal/patch"
	"github.com/cpick/qemu-plugin-bindgen/internal/pipeline"
	"github.com/cpick/qemu-plugin-bindgen/internal/registry"
)

// Error code constants - unified across all CLI commands.
const (
	ErrCodeGeneric    = "GENERATION_ERROR"  // Unknown error
	ErrCodeOutOfRange = "OUT_OF_RANGE"      // Revision ordinal outside the registry
	ErrCodeResolve    = "RESOLVE_FAILED"    // Build metadata resolution failure
	ErrCodeTransfer   = "TRANSFER_FAILED"   // Archive download failure
	ErrCodeArchive    = "ARCHIVE_INVALID"   // Cached archive unreadable or corrupt
	ErrCodeGeneration = "GENERATION_FAILED" // Translation engine rejected the header
	ErrCodePatch      = "PATCH_FAILED"      // Expected glib include absent
	ErrCodeManifest   = "MANIFEST_INVALID"  // Registry manifest failed to load
	ErrCodeIO         = "IO_FAILED"         // Filesystem read/write failure
)

// MapErrorCode classifies an error from the pipeline or its collaborators
// into a CLI error code.
func MapErrorCode(err error) string {
	var (
		outOfRange *registry.OutOfRangeError
		manifest   *registry.ManifestError
		resolve    *pipeline.ResolveError
		transfer   *fetch.TransferError
		archive    *fetch.ArchiveError
		generation *bindgen.GenerationError
		missing    *patch.MissingIncludeError
	)
	switch {
	case errors.As(err, &outOfRange):
		return ErrCodeOutOfRange
	case errors.As(err, &manifest):
		return ErrCodeManifest
	case errors.As(err, &resolve):
		return ErrCodeResolve
	case errors.As(err, &transfer):
		return ErrCodeTransfer
	case errors.As(err, &archive):
		return ErrCodeArchive
	case errors.As(err, &generation):
		return ErrCodeGeneration
	case errors.As(err, &missing):
		return ErrCodePatch
	default:
		return ErrCodeGeneric
	}
}
