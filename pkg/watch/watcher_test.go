package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/isaacfidler/cratedig/pkg/types"
)

// eventTimeout is generous: events pass through the settle delay before
// delivery, and CI filesystems can be slow.
const eventTimeout = 5 * time.Second

func newTestWatcher(t *testing.T) (*Watcher, string) {
	t.Helper()
	root := t.TempDir()

	w, err := New(root, []string{".wav"})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	t.Cleanup(func() { _ = w.Stop() })

	return w, root
}

func waitFor(t *testing.T, events <-chan types.Event, want types.Event) {
	t.Helper()
	deadline := time.After(eventTimeout)
	for {
		select {
		case got := <-events:
			if got == want {
				return
			}
			// Unrelated events (editor temp files, duplicate notifications)
			// are allowed; keep draining.
		case <-deadline:
			t.Fatalf("timed out waiting for %+v", want)
		}
	}
}

func TestWatcherEmitsAddedForNewSample(t *testing.T) {
	w, root := newTestWatcher(t)

	path := filepath.Join(root, "kick.wav")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0644))

	waitFor(t, w.Events(), types.Event{Kind: types.EventAdded, Path: path})
}

func TestWatcherIgnoresOtherExtensions(t *testing.T) {
	w, root := newTestWatcher(t)

	require.NoError(t, os.WriteFile(filepath.Join(root, "cover.jpg"), []byte("img"), 0644))

	select {
	case got := <-w.Events():
		t.Fatalf("unexpected event %+v", got)
	case <-time.After(2 * settleDelay):
	}
}

func TestWatcherEmitsRemoved(t *testing.T) {
	w, root := newTestWatcher(t)

	path := filepath.Join(root, "kick.wav")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0644))
	waitFor(t, w.Events(), types.Event{Kind: types.EventAdded, Path: path})

	require.NoError(t, os.Remove(path))
	waitFor(t, w.Events(), types.Event{Kind: types.EventRemoved, Path: path})
}

func TestWatcherFollowsNewDirectories(t *testing.T) {
	w, root := newTestWatcher(t)

	// A new pack directory appears with a file already inside
	pack := filepath.Join(root, "New_Pack")
	require.NoError(t, os.MkdirAll(pack, 0755))

	path := filepath.Join(pack, "snare.wav")
	require.NoError(t, os.WriteFile(path, []byte("audio"), 0644))

	waitFor(t, w.Events(), types.Event{Kind: types.EventAdded, Path: path})
}

func TestWatcherStop(t *testing.T) {
	root := t.TempDir()

	w, err := New(root, []string{".wav"})
	require.NoError(t, err)
	require.NoError(t, w.Start())
	assert.NoError(t, w.Stop())
}
