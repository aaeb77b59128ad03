// Package patch rewrites the QEMU plugin header so it type-checks without
// glib.
//
// qemu-plugin.h declares a handful of callbacks in terms of GArray and
// GByteArray. Resolving those through the real glib headers would require
// pkg-config include paths and drag the entire glib surface into the
// generated bindings. Instead the glib include is stripped and two
// structural stand-ins are prepended, each reproducing only the data/len
// field layout generated code actually touches.
//
// The stand-ins are an ABI-layout assumption, not a substitute for glib:
// if glib ever changes the leading fields of these two types, the
// stand-ins must change with them.
package patch

import (
	"fmt"
	"strings"
)

// glibInclude is the exact include line removed from the header.
const glibInclude = "#include <glib.h>"

const (
	gArrayStandin     = "typedef struct GArray { char *data; unsigned int len; } GArray;"
	gByteArrayStandin = "typedef struct GByteArray { unsigned char *data; unsigned int len; } GByteArray;"
)

// Result is the outcome of patching one header.
type Result struct {
	// Text is the patched header contents.
	Text string

	// IncludeRemoved reports whether the glib include line was present
	// and removed. The stand-ins are prepended either way.
	IncludeRemoved bool
}

// MissingIncludeError reports that PatchStrict did not find the glib
// include line it was asked to remove. This usually means the upstream
// header layout drifted and the patch targets need revisiting.
type MissingIncludeError struct {
	Include string
}

func (e *MissingIncludeError) Error() string {
	return fmt.Sprintf("header does not contain expected include line %q", e.Include)
}

// Patch removes every occurrence of the glib include line and prepends
// the GArray and GByteArray stand-ins.
//
// The removal step is idempotent: a header with no glib include is
// returned unchanged apart from the prepended stand-ins.
func Patch(header string) Result {
	removed := strings.Contains(header, glibInclude)
	body := strings.ReplaceAll(header, glibInclude, "")
	return Result{
		Text:           fmt.Sprintf("%s\n%s\n%s\n", gArrayStandin, gByteArrayStandin, body),
		IncludeRemoved: removed,
	}
}

// PatchStrict is Patch for callers that expect the glib include to be
// present. It fails with *MissingIncludeError when the line is absent,
// catching upstream header-format drift instead of silently producing a
// header that was never glib-dependent.
func PatchStrict(header string) (string, error) {
	if !strings.Contains(header, glibInclude) {
		return "", &MissingIncludeError{Include: glibInclude}
	}
	return Patch(header).Text, nil
}
