package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scanvocab/scanvocab/internal/testutil"
)

func TestNewStudyCommand_RunE_NoWords(t *testing.T) {
	cfgPath := testutil.SetupTestConfig(t, t.TempDir())
	setConfigFile(t, cfgPath)
	setLocalOnly(t)

	// With nothing to study the command explains itself instead of
	// starting an interactive session.
	cmd := newStudyCommand()
	cmd.SetArgs([]string{})
	require.NoError(t, cmd.Execute())
}

func TestNewStudyCommand_InvalidConfig(t *testing.T) {
	cfgPath := setupBrokenConfigFile(t)
	setConfigFile(t, cfgPath)
	setLocalOnly(t)

	cmd := newStudyCommand()
	cmd.SetArgs([]string{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration")
}
