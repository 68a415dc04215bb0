package spin

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kedare/conlog/internal/capability"
)

func fixedClock() time.Time {
	return time.Date(2024, 1, 15, 10, 30, 45, 0, time.Local)
}

func TestFallbackLines(t *testing.T) {
	var buf bytes.Buffer
	f := Fallback{W: &buf, Now: fixedClock}

	f.Started("go")
	f.Updated("half way")
	f.Succeeded("done")
	f.Failed("broken")
	f.Stopped("")

	assert.Equal(t,
		"[STREAM STARTED] go\n"+
			"[10:30:45] half way\n"+
			"✓ [STREAM SUCCESS] done\n"+
			"✗ [STREAM FAILED] broken\n"+
			"[STREAM STOPPED]\n",
		buf.String())
}

func TestProbeRejectsNonTerminal(t *testing.T) {
	t.Run("buffer", func(t *testing.T) {
		_, err := Probe(&bytes.Buffer{}, nil)(context.Background())
		assert.ErrorIs(t, err, capability.ErrNotTerminal)
	})

	t.Run("pipe", func(t *testing.T) {
		r, w, err := os.Pipe()
		require.NoError(t, err)
		defer r.Close()
		defer w.Close()

		_, err = Probe(w, w)(context.Background())
		assert.ErrorIs(t, err, capability.ErrNotTerminal)
	})
}

func TestFitTruncatesToTerminal(t *testing.T) {
	t.Setenv("COLUMNS", "20")

	got := fit("a spinner message that is far too long")
	assert.Contains(t, got, "…")
	assert.Equal(t, "short", fit("short"))
}
