package common

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
logPath: out.log
requestTimeout: 1500
imageMaxDimension: 512
`)
	config, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "out.log", config.GetString("logPath"))
	require.Equal(t, "fallback", config.GetStringOrDefault("missing", "fallback"))
	require.Equal(t, 512, config.GetIntOrDefault("imageMaxDimension", 0))
	require.Equal(t, 7, config.GetIntOrDefault("logPath", 7))
	require.Equal(t, 1500*time.Millisecond, config.GetDurationOrDefault("requestTimeout", time.Second))
	require.Equal(t, time.Second, config.GetDurationOrDefault("missing", time.Second))
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	config, err := LoadConfigIfExists(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	require.Equal(t, "", config.GetString("logPath"))
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	path := writeConfig(t, "logPath: [unterminated")
	_, err := LoadConfigIfExists(path)
	require.Error(t, err)
}

func TestNewConfig(t *testing.T) {
	config := NewConfig(map[string]any{"hfToken": "secret"})
	require.Equal(t, "secret", config.GetString("hfToken"))
	require.Equal(t, "", NewConfig(nil).GetString("hfToken"))
}
