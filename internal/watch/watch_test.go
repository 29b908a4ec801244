package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, root string) <-chan []string {
	t.Helper()
	calls := make(chan []string, 8)
	w, err := New(root, func(_ context.Context, changed []string) error {
		calls <- changed
		return nil
	}, WithDebounce(50*time.Millisecond))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(func() {
		cancel()
		w.wg.Wait()
	})
	require.NoError(t, w.Start(ctx))
	return calls
}

func TestWatcher_RebuildsOnPageWrite(t *testing.T) {
	root := t.TempDir()
	calls := startWatcher(t, root)

	page := filepath.Join(root, "buttons.md")
	require.NoError(t, os.WriteFile(page, []byte("# Buttons\n"), 0o644))
	require.NoError(t, os.WriteFile(page, []byte("# Buttons!\n"), 0o644))

	select {
	case changed := <-calls:
		abs, err := filepath.Abs(page)
		require.NoError(t, err)
		require.Contains(t, changed, abs)
	case <-time.After(3 * time.Second):
		t.Fatal("expected a rebuild")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	root := t.TempDir()
	calls := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644))

	select {
	case changed := <-calls:
		t.Fatalf("unexpected rebuild for %v", changed)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	calls := startWatcher(t, root)

	sub := filepath.Join(root, "forms")
	require.NoError(t, os.Mkdir(sub, 0o755))

	require.Eventually(t, func() bool {
		_ = os.WriteFile(filepath.Join(sub, "input.mdx"), []byte("# Input\n"), 0o644)
		select {
		case <-calls:
			return true
		case <-time.After(200 * time.Millisecond):
			return false
		}
	}, 3*time.Second, 10*time.Millisecond)
}

func TestNew_MissingRoot(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "missing"), func(context.Context, []string) error { return nil })
	require.NoError(t, err)
	require.Error(t, w.Start(context.Background()))
}
