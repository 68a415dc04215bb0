package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoadMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.toml")

	cfg, err := Load(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, `
platform = "console"

[divider]
char = "="
length = 12

[types]
audit = ["red", "bold"]
deploy = ["cyan"]
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "console", cfg.Platform)
	assert.Equal(t, "=", cfg.Divider.Char)
	assert.Equal(t, 12, cfg.Divider.Length)
	assert.Equal(t, []string{"gray"}, cfg.Divider.Styles)
	assert.Equal(t, []string{"red", "bold"}, cfg.Types["audit"])
	assert.Equal(t, []string{"cyan"}, cfg.Types["deploy"])
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeFile(t, "colour = true\n")

	_, err := Load(path, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown keys")
}

func TestLoadRejectsInvalidToml(t *testing.T) {
	path := writeFile(t, "platform = \n")

	_, err := Load(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestDefaultPath(t *testing.T) {
	path, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "config.toml", filepath.Base(path))
	assert.Equal(t, "conlog", filepath.Base(filepath.Dir(path)))
}
