// Package bindgen configures and invokes the external header-translation
// engine that turns the patched plugin header into typed bindings.
//
// The translation itself (preprocessing, type-layout inference, code
// emission) lives outside this tool; this package owns the generation
// policy, the symbol denylist, and the contract that a failed run never
// leaves a truncated artifact behind.
package bindgen

// FieldVisibility controls the visibility of generated struct fields.
type FieldVisibility string

// VisibilityPublic makes every generated field public.
const VisibilityPublic FieldVisibility = "public"

// AliasStyle controls how C typedefs are represented.
type AliasStyle string

// AliasTypeAlias represents typedefs as plain type aliases.
const AliasTypeAlias AliasStyle = "type-alias"

// EnumStyle controls how C enums are represented.
type EnumStyle string

// EnumPlain represents enums as plain tagged values, not bit-flag sets.
const EnumPlain EnumStyle = "plain"

// MacroType controls the type given to macro-derived integer constants.
type MacroType string

// MacroUnsigned types macro constants as unsigned integers.
const MacroUnsigned MacroType = "unsigned"

// UnionStyle controls how unions needing drop/copy distinctions are
// represented.
type UnionStyle string

// UnionWrapper wraps such unions instead of leaving them unsafely
// transparent.
const UnionWrapper UnionStyle = "wrapper"

// Policy is the fixed generation configuration, constant across all
// revisions. Values are passed explicitly into the adapter rather than
// read from package state, so tests can substitute a smaller denylist.
type Policy struct {
	FieldVisibility FieldVisibility
	AliasStyle      AliasStyle
	EnumStyle       EnumStyle
	MacroType       MacroType
	UnionStyle      UnionStyle

	// Derives is the trait set generated types implement.
	Derives []string

	// GenerateComments carries header doc comments into the output.
	GenerateComments bool

	// LayoutTests enables auto-generated layout self-tests. Disabled
	// here: declared layouts are trusted to match what the engine infers
	// from the patched header, not verified against a real compiler
	// target.
	LayoutTests bool

	// ClangArgs are extra arguments for the engine's preprocessor. The
	// patched header carries forward the original file's compiler
	// pragmas, so warnings from non-project headers are suppressed.
	ClangArgs []string

	BlockedFunctions []string
	BlockedItems     []string
}

// DefaultPolicy returns the generation policy used for every tracked
// revision.
func DefaultPolicy() Policy {
	return Policy{
		FieldVisibility: VisibilityPublic,
		AliasStyle:      AliasTypeAlias,
		EnumStyle:       EnumPlain,
		MacroType:       MacroUnsigned,
		UnionStyle:      UnionWrapper,
		Derives: []string{
			"default",
			"hash",
			"partialord",
			"ord",
			"eq",
			"partialeq",
		},
		GenerateComments: true,
		LayoutTests:      false,
		ClangArgs: []string{
			"-fretain-comments-from-system-headers",
			"-fparse-all-comments",
			"-Wno-everything",
		},
		BlockedFunctions: DefaultBlockedFunctions,
		BlockedItems:     DefaultBlockedItems,
	}
}
