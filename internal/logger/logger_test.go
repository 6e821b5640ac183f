package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Domenick1991/flightsinfo/config"
	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	testCases := map[string]log.Lvl{
		"debug": log.DEBUG,
		"INFO":  log.INFO,
		"":      log.INFO,
		"warn":  log.WARN,
		"error": log.ERROR,
		"off":   log.OFF,
	}
	for in, want := range testCases {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestSetup_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "flightsinfo.log")

	l, cleanup, err := Setup("flightsinfo", config.LogConfig{Level: "info", Format: "json", Path: path})
	require.NoError(t, err)

	l.Debugf("hidden %d", 1)
	l.Infof("flight %d added", 7)
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"flight 7 added"`)
	assert.Contains(t, string(data), `"prefix":"flightsinfo"`)
	assert.NotContains(t, string(data), "hidden")
}

func TestSetup_TextFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "text.log")

	l, cleanup, err := Setup("worker", config.LogConfig{Level: "debug", Format: "text", Path: path})
	require.NoError(t, err)
	l.Warnf("event %s dropped", "abc")
	require.NoError(t, cleanup())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "WARN worker")
	assert.Contains(t, string(data), "event abc dropped")
}

func TestSetup_BadLevel(t *testing.T) {
	_, _, err := Setup("x", config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
