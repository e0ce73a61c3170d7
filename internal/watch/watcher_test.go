package watch_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peruse/internal/watch"
)

func waitChanged(t *testing.T, w *watch.Watcher) bool {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if w.Changed() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return false
}

func TestWatcherFlagsChanges(t *testing.T) {
	tmpDir := t.TempDir()

	w, err := watch.New()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(tmpDir))
	assert.False(t, w.Changed())

	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "new.txt"), []byte("x"), 0644))
	assert.True(t, waitChanged(t, w), "change flag should rise after a write")

	w.Clear()
	assert.False(t, w.Changed())
}

func TestWatcherSwitchesDirectory(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()

	w, err := watch.New()
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, w.Watch(first))
	require.NoError(t, w.Watch(second))

	// Events in the new directory are seen
	require.NoError(t, os.WriteFile(filepath.Join(second, "b.txt"), []byte("x"), 0644))
	assert.True(t, waitChanged(t, w))
}

func TestWatchMissingDirectory(t *testing.T) {
	w, err := watch.New()
	require.NoError(t, err)
	defer w.Close()

	assert.Error(t, w.Watch(filepath.Join(t.TempDir(), "gone")))
}
