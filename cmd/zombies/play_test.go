package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setFlag overrides a global flag for the duration of a test.
func setFlag(t *testing.T, flag *string, value string) {
	t.Helper()
	old := *flag
	*flag = value
	t.Cleanup(func() { *flag = old })
}

func TestPlayReturnsConfigErrors(t *testing.T) {
	setFlag(t, &flagDifficulty, "nightmare")

	err := runPlay(playCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nightmare")
}

func TestPlayReturnsLoggerErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "zombies.log")
	setFlag(t, &flagLogFile, path)
	setFlag(t, &flagLogLevel, "loud")

	err := runPlay(playCmd, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid log level")

	// The log file was opened before the failure and is left in place
	_, statErr := os.Stat(path)
	assert.NoError(t, statErr)
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	got, err := expandHome("~/.zombies/zombies.log")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".zombies", "zombies.log"), got)

	got, err = expandHome("./local.log")
	require.NoError(t, err)
	assert.Equal(t, "./local.log", got)
}
