package catalog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestWatcher_FiresOnDatasetChange(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(zerolog.Nop(), func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "products.json"), []byte("[]"), 0644))

	select {
	case <-changed:
		// ok
	case <-time.After(3 * time.Second):
		t.Fatal("watcher did not report dataset change within timeout")
	}
}

func TestWatcher_IgnoresNonDatasetFiles(t *testing.T) {
	dir := t.TempDir()

	changed := make(chan struct{}, 1)
	w, err := NewWatcher(zerolog.Nop(), func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	require.NoError(t, err)
	defer w.Stop()

	require.NoError(t, w.Watch(dir))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))

	select {
	case <-changed:
		t.Fatal("watcher fired for a non-dataset file")
	case <-time.After(1 * time.Second):
		// ok
	}
}
