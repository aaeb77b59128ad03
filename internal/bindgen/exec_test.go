package bindgen

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyArgs_DefaultPolicy(t *testing.T) {
	unit := Unit{Name: "qemu-plugin.h"}
	args := policyArgs(unit, DefaultPolicy())

	joined := map[string]bool{}
	for i := 0; i+1 < len(args); i++ {
		joined[args[i]+" "+args[i+1]] = true
	}

	assert.True(t, joined["--unit-name qemu-plugin.h"])
	assert.True(t, joined["--field-visibility public"])
	assert.True(t, joined["--alias-style type-alias"])
	assert.True(t, joined["--enum-style plain"])
	assert.True(t, joined["--macro-constant-type unsigned"])
	assert.True(t, joined["--non-copy-union-style wrapper"])
	assert.True(t, joined["--derive hash"])
	assert.True(t, joined["--clang-arg -Wno-everything"])
	assert.True(t, joined["--block-function qemu_plugin_install"])
	assert.True(t, joined["--block-item qemu_plugin_version"])
	assert.Contains(t, args, "--with-comments")
	assert.Contains(t, args, "--no-layout-tests")
}

func TestPolicyArgs_LayoutTestsEnabled(t *testing.T) {
	policy := DefaultPolicy()
	policy.LayoutTests = true
	policy.GenerateComments = false

	args := policyArgs(Unit{Name: "h"}, policy)
	assert.NotContains(t, args, "--no-layout-tests")
	assert.NotContains(t, args, "--with-comments")
}

func TestPolicyArgs_SmallDenylist(t *testing.T) {
	// The policy is explicit configuration: tests can run with a reduced
	// denylist instead of the full platform list.
	policy := DefaultPolicy()
	policy.BlockedItems = []string{"only_this"}

	args := policyArgs(Unit{Name: "h"}, policy)

	count := 0
	for i, a := range args {
		if a == "--block-item" {
			count++
			assert.Equal(t, "only_this", args[i+1])
		}
	}
	assert.Equal(t, 1, count)
}

func TestExecTranslator_CommandFailure(t *testing.T) {
	translator := &ExecTranslator{Command: []string{"false"}}

	_, err := translator.Translate(context.Background(), Unit{Name: "qemu-plugin.h", Contents: "int x;"}, DefaultPolicy())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
	assert.Equal(t, "qemu-plugin.h", genErr.Unit)
}

func TestExecTranslator_MissingBinary(t *testing.T) {
	translator := &ExecTranslator{Command: []string{"definitely-not-a-real-translator-binary"}}

	_, err := translator.Translate(context.Background(), Unit{Name: "qemu-plugin.h"}, DefaultPolicy())

	var genErr *GenerationError
	require.ErrorAs(t, err, &genErr)
}
