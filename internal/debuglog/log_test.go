package debuglog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupFile points the logger at a fresh file and restores the
// disabled state when the test ends.
func setupFile(t *testing.T, level LogLevel) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "devtec.log")
	require.NoError(t, Setup(level, path))
	t.Cleanup(func() {
		_ = Close()
		_ = Setup(LevelOff)
	})
	return path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func TestParseLogLevelFromConfig(t *testing.T) {
	tests := map[string]LogLevel{
		"off":     LevelOff,
		" debug ": LevelDebug,
		"Warning": LevelWarn,
		"ERROR":   LevelError,
		"verbose": LevelInfo,
		"":        LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, ParseLogLevel(input), "ParseLogLevel(%q)", input)
	}
}

func TestCharmLevelMapping(t *testing.T) {
	assert.Equal(t, log.DebugLevel, LevelDebug.charm())
	assert.Equal(t, log.InfoLevel, LevelInfo.charm())
	assert.Equal(t, log.WarnLevel, LevelWarn.charm())
	assert.Equal(t, log.ErrorLevel, LevelError.charm())
}

func TestSetupCreatesLogDirectory(t *testing.T) {
	path := setupFile(t, LevelInfo)

	Infof("starting %s", "devtec")
	require.NoError(t, Close())

	out := readLog(t, path)
	assert.Contains(t, out, "devtec")
	assert.Contains(t, out, "INFO")
	assert.Contains(t, out, "starting devtec")
}

func TestSetupDefaultsToHomeLog(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	require.NoError(t, Setup(LevelInfo))
	t.Cleanup(func() {
		_ = Close()
		_ = Setup(LevelOff)
	})

	Infof("default path")
	require.NoError(t, Close())

	assert.Contains(t, readLog(t, filepath.Join(home, ".devtec", "devtec.log")), "default path")
}

func TestSetupOffWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "devtec.log")
	require.NoError(t, Setup(LevelOff, path))

	Errorf("should not appear")
	WithFields(map[string]interface{}{"source": "data.json"}).Errorf("nor this")

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "no log file is opened when logging is off")
	assert.Equal(t, LevelOff, GetLevel())
}

func TestLevelFiltering(t *testing.T) {
	path := setupFile(t, LevelWarn)

	Debugf("debug line")
	Infof("info line")
	Warnf("warn line")
	Errorf("error line")
	require.NoError(t, Close())

	out := readLog(t, path)
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "WARN")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "ERRO")
	assert.Contains(t, out, "error line")
}

func TestSetLevelRaisesCharmLevel(t *testing.T) {
	path := setupFile(t, LevelError)

	Infof("hidden before")
	SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, GetLevel())
	assert.Equal(t, log.DebugLevel, logger.GetLevel())

	Debugf("visible after")
	require.NoError(t, Close())

	out := readLog(t, path)
	assert.NotContains(t, out, "hidden before")
	assert.Contains(t, out, "visible after")
}

func TestSetLevelOffSilences(t *testing.T) {
	path := setupFile(t, LevelDebug)

	SetLevel(LevelOff)
	Errorf("silenced")
	SetLevel(LevelInfo)
	Infof("back on")
	require.NoError(t, Close())

	out := readLog(t, path)
	assert.NotContains(t, out, "silenced")
	assert.Contains(t, out, "back on")
}

func TestWithFieldsWritesKeyValues(t *testing.T) {
	path := setupFile(t, LevelInfo)

	WithFields(map[string]interface{}{
		"source":  "data.json",
		"entries": 4,
	}).Infof("catalog loaded")
	WithFields(map[string]interface{}{"opener": "xdg-open"}).Debugf("below level")
	require.NoError(t, Close())

	out := readLog(t, path)
	assert.Contains(t, out, "catalog loaded")
	assert.Contains(t, out, "source=data.json")
	assert.Contains(t, out, "entries=4")
	assert.NotContains(t, out, "opener=xdg-open")
}

func TestCloseWithoutSetup(t *testing.T) {
	require.NoError(t, Setup(LevelOff))
	assert.NoError(t, Close())

	// Logging after Close is a no-op.
	Errorf("after close")
}
