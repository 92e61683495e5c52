package watcher

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/mdvault/backend/internal/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventRecorder 记录收到的文件变更事件
type eventRecorder struct {
	mu     sync.Mutex
	events []*events.FileChangeEvent
}

func (r *eventRecorder) HandleEvent(e events.Event) error {
	fce, ok := e.(*events.FileChangeEvent)
	if !ok {
		return nil
	}
	r.mu.Lock()
	r.events = append(r.events, fce)
	r.mu.Unlock()
	return nil
}

func (r *eventRecorder) snapshot() []*events.FileChangeEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*events.FileChangeEvent(nil), r.events...)
}

// waitForEvents 轮询等待记录器至少收到 n 个事件
func (r *eventRecorder) waitForEvents(t *testing.T, n int, timeout time.Duration) []*events.FileChangeEvent {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if got := r.snapshot(); len(got) >= n {
			return got
		}
		time.Sleep(20 * time.Millisecond)
	}
	got := r.snapshot()
	t.Fatalf("等待事件超时: 期望至少 %d 个，实际 %d 个", n, len(got))
	return got
}

func startWatcher(t *testing.T, dir string) (*FileWatcher, *eventRecorder) {
	t.Helper()

	bus := NewEventBus()
	t.Cleanup(bus.Close)

	recorder := &eventRecorder{}
	bus.SubscribeMultiple(events.FileEventTypes, recorder)

	fw := NewFileWatcher(WatchConfig{VaultDir: dir}, bus)
	require.NoError(t, fw.Start())
	require.True(t, fw.IsWatching())

	// 等待监听注册生效
	time.Sleep(100 * time.Millisecond)
	return fw, recorder
}

func TestFileWatcher_CreateMarkdownFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "vault-watch-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	_, recorder := startWatcher(t, dir)

	notePath := filepath.Join(dir, "note.md")
	require.NoError(t, os.WriteFile(notePath, []byte("# hello"), 0644))

	received := recorder.waitForEvents(t, 1, 3*time.Second)
	assert.Equal(t, events.FileCreated, received[0].EventType)
	assert.Equal(t, notePath, received[0].Path)
}

func TestFileWatcher_IgnoresIrrelevantSuffix(t *testing.T) {
	dir, err := os.MkdirTemp("", "vault-watch-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	_, recorder := startWatcher(t, dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "image.png"), []byte("png"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "data.json"), []byte("{}"), 0644))

	time.Sleep(500 * time.Millisecond)
	assert.Empty(t, recorder.snapshot())
}

func TestFileWatcher_RemoveFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "vault-watch-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	dbPath := filepath.Join(dir, "tasks.db.json")
	require.NoError(t, os.WriteFile(dbPath, []byte("{}"), 0644))

	_, recorder := startWatcher(t, dir)

	require.NoError(t, os.Remove(dbPath))

	received := recorder.waitForEvents(t, 1, 3*time.Second)
	assert.Equal(t, events.FileDeleted, received[0].EventType)
	assert.Equal(t, dbPath, received[0].Path)
}

func TestFileWatcher_NewSubdirectoryIsWatched(t *testing.T) {
	dir, err := os.MkdirTemp("", "vault-watch-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	_, recorder := startWatcher(t, dir)

	// 启动后新建的子目录也要纳入监听
	subDir := filepath.Join(dir, "daily")
	require.NoError(t, os.Mkdir(subDir, 0755))
	time.Sleep(300 * time.Millisecond)

	notePath := filepath.Join(subDir, "today.md")
	require.NoError(t, os.WriteFile(notePath, []byte("# today"), 0644))

	received := recorder.waitForEvents(t, 1, 3*time.Second)
	found := false
	for _, e := range received {
		if e.Path == notePath && e.EventType == events.FileCreated {
			found = true
		}
	}
	assert.True(t, found, "子目录中的新文件应产生创建事件")
}

func TestFileWatcher_StartNonexistentDir(t *testing.T) {
	bus := NewEventBus()
	defer bus.Close()

	fw := NewFileWatcher(WatchConfig{VaultDir: "/nonexistent/vault/dir"}, bus)
	err := fw.Start()
	require.Error(t, err)
	assert.False(t, fw.IsWatching())
}

func TestFileWatcher_StartOnFile(t *testing.T) {
	file, err := os.CreateTemp("", "not-a-dir-*")
	require.NoError(t, err)
	defer os.Remove(file.Name())
	require.NoError(t, file.Close())

	bus := NewEventBus()
	defer bus.Close()

	fw := NewFileWatcher(WatchConfig{VaultDir: file.Name()}, bus)
	err = fw.Start()
	require.Error(t, err)
	assert.False(t, fw.IsWatching())
}

func TestFileWatcher_MultipleSessions(t *testing.T) {
	// 同一目录允许多个独立会话，各自收到各自的事件
	dir, err := os.MkdirTemp("", "vault-watch-*")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	_, recorder1 := startWatcher(t, dir)
	_, recorder2 := startWatcher(t, dir)

	notePath := filepath.Join(dir, "shared.md")
	require.NoError(t, os.WriteFile(notePath, []byte("# shared"), 0644))

	received1 := recorder1.waitForEvents(t, 1, 3*time.Second)
	received2 := recorder2.waitForEvents(t, 1, 3*time.Second)
	assert.Equal(t, notePath, received1[0].Path)
	assert.Equal(t, notePath, received2[0].Path)
}
