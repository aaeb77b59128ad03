package bindgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// Adapter drives the translation engine under a fixed policy and owns
// artifact writing.
type Adapter struct {
	Translator Translator
	Policy     Policy
}

// NewAdapter creates an adapter around translator using the default
// policy.
func NewAdapter(translator Translator) *Adapter {
	return &Adapter{Translator: translator, Policy: DefaultPolicy()}
}

// Generate translates headerText and writes the declaration set to
// outputPath, overwriting any existing artifact.
//
// Translation failures are propagated unmodified. The output is staged in
// a temporary file and renamed into place, so a failed run never leaves a
// truncated artifact at outputPath; whatever was there before remains.
func (a *Adapter) Generate(ctx context.Context, headerText, headerName, outputPath string) error {
	generated, err := a.Translator.Translate(ctx, Unit{Name: headerName, Contents: headerText}, a.Policy)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(outputPath), filepath.Base(outputPath)+".tmp-*")
	if err != nil {
		return fmt.Errorf("staging bindings for %s: %w", outputPath, err)
	}

	if _, err := tmp.Write(generated); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("setting mode on %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), outputPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("finalizing %s: %w", outputPath, err)
	}

	return nil
}
