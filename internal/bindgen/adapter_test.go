package bindgen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTranslator is a canned Translator recording what it was invoked
// with.
type fakeTranslator struct {
	output []byte
	err    error

	gotUnit   Unit
	gotPolicy Policy
	calls     int
}

func (f *fakeTranslator) Translate(_ context.Context, unit Unit, policy Policy) ([]byte, error) {
	f.calls++
	f.gotUnit = unit
	f.gotPolicy = policy
	if f.err != nil {
		return nil, f.err
	}
	return f.output, nil
}

func TestAdapter_Generate_WritesDeclarations(t *testing.T) {
	translator := &fakeTranslator{output: []byte("pub struct qemu_plugin_id_t(u64);\n")}
	adapter := NewAdapter(translator)
	out := filepath.Join(t.TempDir(), "bindings_v1.go")

	err := adapter.Generate(context.Background(), "patched header", "qemu-plugin.h", out)
	require.NoError(t, err)

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "pub struct qemu_plugin_id_t(u64);\n", string(got))

	assert.Equal(t, "qemu-plugin.h", translator.gotUnit.Name)
	assert.Equal(t, "patched header", translator.gotUnit.Contents)
}

func TestAdapter_Generate_PassesPolicy(t *testing.T) {
	translator := &fakeTranslator{output: []byte("x")}
	adapter := NewAdapter(translator)

	err := adapter.Generate(context.Background(), "h", "qemu-plugin.h", filepath.Join(t.TempDir(), "out"))
	require.NoError(t, err)

	policy := translator.gotPolicy
	assert.Equal(t, VisibilityPublic, policy.FieldVisibility)
	assert.Equal(t, EnumPlain, policy.EnumStyle)
	assert.Equal(t, MacroUnsigned, policy.MacroType)
	assert.Equal(t, UnionWrapper, policy.UnionStyle)
	assert.False(t, policy.LayoutTests, "layout self-tests are disabled")
	assert.Contains(t, policy.BlockedFunctions, "qemu_plugin_install")
	assert.Contains(t, policy.BlockedItems, "qemu_plugin_version")
}

func TestAdapter_Generate_OverwritesPriorArtifact(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bindings_v1.go")
	require.NoError(t, os.WriteFile(out, []byte("previous run"), 0o644))

	translator := &fakeTranslator{output: []byte("current run")}
	adapter := NewAdapter(translator)

	require.NoError(t, adapter.Generate(context.Background(), "h", "qemu-plugin.h", out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "current run", string(got))
}

func TestAdapter_Generate_FailurePropagatedUnmodified(t *testing.T) {
	genErr := &GenerationError{Unit: "qemu-plugin.h", Detail: "unresolved symbol", Err: errors.New("exit status 1")}
	translator := &fakeTranslator{err: genErr}
	adapter := NewAdapter(translator)

	err := adapter.Generate(context.Background(), "h", "qemu-plugin.h", filepath.Join(t.TempDir(), "out"))
	assert.Same(t, genErr, err, "translation errors pass through unwrapped")
}

func TestAdapter_Generate_NoPartialFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "bindings_v2.go")

	translator := &fakeTranslator{err: errors.New("engine crashed")}
	adapter := NewAdapter(translator)

	err := adapter.Generate(context.Background(), "h", "qemu-plugin.h", out)
	require.Error(t, err)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr), "no output file after a failed translation")

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no staging files left behind")
}

func TestAdapter_Generate_FailureKeepsPriorArtifact(t *testing.T) {
	out := filepath.Join(t.TempDir(), "bindings_v1.go")
	require.NoError(t, os.WriteFile(out, []byte("last good run"), 0o644))

	translator := &fakeTranslator{err: errors.New("engine crashed")}
	adapter := NewAdapter(translator)

	require.Error(t, adapter.Generate(context.Background(), "h", "qemu-plugin.h", out))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "last good run", string(got), "prior artifact untouched by a failed run")
}
