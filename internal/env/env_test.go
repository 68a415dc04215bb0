//go:build !js

package env

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	t.Setenv(PlatformEnv, "")

	tests := []struct {
		name        string
		input       string
		expect      Platform
		expectError bool
	}{
		{"terminal", "terminal", Terminal, false},
		{"node alias", "node", Terminal, false},
		{"console", "console", Console, false},
		{"browser alias", "Browser", Console, false},
		{"auto detects", "auto", Terminal, false},
		{"empty detects", "", Terminal, false},
		{"invalid", "teletype", Terminal, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParsePlatform(tt.input)
			if tt.expectError {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid platform")

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expect, p)
		})
	}
}

func TestDetect(t *testing.T) {
	t.Run("native host falls back to terminal", func(t *testing.T) {
		t.Setenv(PlatformEnv, "")
		assert.False(t, IsBrowser())
		assert.False(t, IsMiniProgram())
		assert.True(t, IsNode())
		assert.Equal(t, Terminal, Detect())
	})

	t.Run("environment override", func(t *testing.T) {
		t.Setenv(PlatformEnv, "console")
		assert.Equal(t, Console, Detect())
	})

	t.Run("invalid override is ignored", func(t *testing.T) {
		t.Setenv(PlatformEnv, "bogus")
		assert.Equal(t, Terminal, Detect())
	})
}

func TestPlatformString(t *testing.T) {
	assert.Equal(t, "terminal", Terminal.String())
	assert.Equal(t, "console", Console.String())
}

func TestIsTerminalOnPipe(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	assert.False(t, IsTerminal(w.Fd()))
}
