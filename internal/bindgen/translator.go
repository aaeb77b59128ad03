package bindgen

import (
	"context"
	"fmt"
)

// Unit is the sole compilation unit handed to the translation engine.
type Unit struct {
	// Name is the display name reported in diagnostics, e.g.
	// "qemu-plugin.h".
	Name string

	// Contents is the patched header text.
	Contents string
}

// Translator is the external header-translation capability: given one
// preprocessed compilation unit and a policy, produce the equivalent
// declaration set in the target language.
type Translator interface {
	Translate(ctx context.Context, unit Unit, policy Policy) ([]byte, error)
}

// GenerationError reports that the translation engine rejected a header
// or failed internally.
type GenerationError struct {
	Unit   string
	Detail string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("translating %s: %v: %s", e.Unit, e.Err, e.Detail)
	}
	return fmt.Sprintf("translating %s: %v", e.Unit, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}
