package watcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/philipparndt/gohabitat/pkg/habitat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newWatcher(t *testing.T) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(20*time.Millisecond, WithLogger(zap.NewNop()))
	require.NoError(t, err)
	return fw
}

func TestReloadsOnRewrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.json")
	require.NoError(t, habitat.ExportFile(path, habitat.DefaultState()))

	fw := newWatcher(t)
	defer fw.Close()

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	// ExportFile replaces the file through a rename
	s := habitat.DefaultState()
	s.Mission.CrewSize = 6
	require.NoError(t, habitat.ExportFile(path, s))

	select {
	case got := <-changed:
		assert.Equal(t, path, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	loaded, err := habitat.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 6, loaded.Mission.CrewSize)
}

func TestDebounceCoalescesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gohabitat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("a: 1\n"), 0o644))

	fw, err := NewFileWatcher(150 * time.Millisecond)
	require.NoError(t, err)
	defer fw.Close()

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("a: 2\n"), 0o644))
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("no change event")
	}

	select {
	case <-changed:
		t.Fatal("writes were not coalesced")
	case <-time.After(400 * time.Millisecond):
	}
}

func TestIgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	fw := newWatcher(t)
	defer fw.Close()

	changed := make(chan string, 8)
	require.NoError(t, fw.Watch([]string{path}, func(p string) { changed <- p }))
	fw.Start()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte("{}"), 0o644))

	select {
	case p := <-changed:
		t.Fatalf("unexpected event for %s", p)
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRemoveAllAndDoubleClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "design.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	fw := newWatcher(t)
	require.NoError(t, fw.Watch([]string{path, path}, func(string) {}))
	assert.Equal(t, 1, fw.dirs[dir])

	require.NoError(t, fw.RemoveAll())
	assert.Empty(t, fw.callbacks)

	fw.Start()
	require.NoError(t, fw.Close())
	assert.NoError(t, fw.Close())
}
