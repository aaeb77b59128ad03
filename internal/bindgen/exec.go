package bindgen

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// DefaultTranslatorCommand is the translation engine binary invoked when
// no override is given.
var DefaultTranslatorCommand = []string{"qemu-plugin-translate"}

// ExecTranslator invokes an external translation engine binary.
//
// The compilation unit is fed on stdin, the policy is mapped to
// command-line flags, and the generated declaration set is read from
// stdout. A non-zero exit is surfaced as *GenerationError with the
// engine's stderr as detail.
type ExecTranslator struct {
	// Command is the engine argv prefix; policy flags are appended.
	Command []string
}

// Translate implements Translator.
func (t *ExecTranslator) Translate(ctx context.Context, unit Unit, policy Policy) ([]byte, error) {
	argv := t.Command
	if len(argv) == 0 {
		argv = DefaultTranslatorCommand
	}
	args := append(argv[1:len(argv):len(argv)], policyArgs(unit, policy)...)

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, argv[0], args...)
	cmd.Stdin = strings.NewReader(unit.Contents)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &GenerationError{
			Unit:   unit.Name,
			Detail: strings.TrimSpace(stderr.String()),
			Err:    err,
		}
	}

	return stdout.Bytes(), nil
}

// policyArgs maps a generation policy to engine command-line flags.
func policyArgs(unit Unit, policy Policy) []string {
	args := []string{
		"--unit-name", unit.Name,
		"--field-visibility", string(policy.FieldVisibility),
		"--alias-style", string(policy.AliasStyle),
		"--enum-style", string(policy.EnumStyle),
		"--macro-constant-type", string(policy.MacroType),
		"--non-copy-union-style", string(policy.UnionStyle),
	}
	for _, d := range policy.Derives {
		args = append(args, "--derive", d)
	}
	if policy.GenerateComments {
		args = append(args, "--with-comments")
	}
	if !policy.LayoutTests {
		args = append(args, "--no-layout-tests")
	}
	for _, a := range policy.ClangArgs {
		args = append(args, "--clang-arg", a)
	}
	for _, f := range policy.BlockedFunctions {
		args = append(args, "--block-function", f)
	}
	for _, i := range policy.BlockedItems {
		args = append(args, "--block-item", i)
	}
	return args
}

// String returns the effective argv prefix for diagnostics.
func (t *ExecTranslator) String() string {
	argv := t.Command
	if len(argv) == 0 {
		argv = DefaultTranslatorCommand
	}
	return fmt.Sprintf("%v", argv)
}
