package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand()
	require.NotNil(t, cmd)
	assert.Equal(t, "qemu-plugin-bindgen", cmd.Use)
	assert.Contains(t, cmd.Long, "QEMU plugin API")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand()
	commands := []string{"generate", "cache", "runs"}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand()

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestGenerateCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	genCmd, _, err := cmd.Find([]string{"generate"})
	require.NoError(t, err)

	for _, name := range []string{"registry", "refresh", "keep-going", "translator", "base-url", "scratch", "out"} {
		flag := genCmd.Flags().Lookup(name)
		require.NotNil(t, flag, "Flag --%s should exist", name)
	}

	refreshFlag := genCmd.Flags().Lookup("refresh")
	assert.Equal(t, "false", refreshFlag.DefValue)
	keepGoingFlag := genCmd.Flags().Lookup("keep-going")
	assert.Equal(t, "false", keepGoingFlag.DefValue)
}

func TestCacheCleanCommandFlags(t *testing.T) {
	cmd := NewRootCommand()
	cleanCmd, _, err := cmd.Find([]string{"cache", "clean"})
	require.NoError(t, err)

	revisionFlag := cleanCmd.Flags().Lookup("revision")
	require.NotNil(t, revisionFlag)
	assert.Equal(t, "0", revisionFlag.DefValue)

	scratchFlag := cleanCmd.Flags().Lookup("scratch")
	require.NotNil(t, scratchFlag)
}

func TestRunsCommandStructure(t *testing.T) {
	cmd := NewRootCommand()

	for _, sub := range []string{"list", "show"} {
		subCmd, _, err := cmd.Find([]string{"runs", sub})
		require.NoError(t, err, "runs %s should exist", sub)
		assert.Equal(t, sub, subCmd.Name())
	}
}

func TestInvalidFormatRejected(t *testing.T) {
	cmd := NewRootCommand()
	buf := &bytes.Buffer{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"runs", "list", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}
