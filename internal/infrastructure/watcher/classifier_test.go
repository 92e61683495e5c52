package watcher

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/mdvault/backend/internal/domain/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_KindMapping(t *testing.T) {
	tests := []struct {
		name     string
		raw      RawNotification
		wantType events.EventType
		wantOK   bool
	}{
		{
			name:     "create maps to created",
			raw:      RawNotification{Kind: RawCreate, Paths: []string{"/a/note.md"}},
			wantType: events.FileCreated,
			wantOK:   true,
		},
		{
			name:     "modify maps to modified",
			raw:      RawNotification{Kind: RawModify, Paths: []string{"/a/note.md"}},
			wantType: events.FileModified,
			wantOK:   true,
		},
		{
			name:     "remove maps to deleted",
			raw:      RawNotification{Kind: RawRemove, Paths: []string{"/a/note.md"}},
			wantType: events.FileDeleted,
			wantOK:   true,
		},
		{
			name:   "rename is dropped",
			raw:    RawNotification{Kind: RawRename, Paths: []string{"/a/note.md"}},
			wantOK: false,
		},
		{
			name:   "unknown kind is dropped",
			raw:    RawNotification{Kind: RawUnknown, Paths: []string{"/a/note.md"}},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, ok := Classify(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				require.NotNil(t, event)
				assert.Equal(t, tt.wantType, event.EventType)
				assert.Equal(t, "/a/note.md", event.Path)
				assert.False(t, event.EventTime.IsZero())
			} else {
				assert.Nil(t, event)
			}
		})
	}
}

func TestClassify_SuffixFilter(t *testing.T) {
	tests := []struct {
		name   string
		paths  []string
		wantOK bool
	}{
		{"markdown file", []string{"/vault/note.md"}, true},
		{"db.json file", []string{"/vault/tasks.db.json"}, true},
		{"plain json is not db.json", []string{"/vault/tasks.json"}, false},
		{"txt file", []string{"/vault/readme.txt"}, false},
		{"no extension", []string{"/vault/notes"}, false},
		{"all irrelevant", []string{"/vault/a.txt", "/vault/b.png"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Classify(RawNotification{Kind: RawCreate, Paths: tt.paths})
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestClassify_FirstMatchOnly(t *testing.T) {
	// 一条通知携带多个命中路径时，只取第一个命中的路径，
	// 且整条通知至多产生一个事件（既定设计，顺序在此固定验证）
	raw := RawNotification{
		Kind:  RawModify,
		Paths: []string{"/a/note.md", "/a/other.db.json"},
	}

	event, ok := Classify(raw)
	require.True(t, ok)
	assert.Equal(t, events.FileModified, event.EventType)
	assert.Equal(t, "/a/note.md", event.Path)
}

func TestClassify_FirstMatchSkipsIrrelevant(t *testing.T) {
	// 第一个命中的路径不一定是第一个路径
	raw := RawNotification{
		Kind:  RawCreate,
		Paths: []string{"/a/cover.png", "/a/note.md", "/a/other.md"},
	}

	event, ok := Classify(raw)
	require.True(t, ok)
	assert.Equal(t, "/a/note.md", event.Path)
}

func TestFromFsnotify(t *testing.T) {
	tests := []struct {
		name     string
		op       fsnotify.Op
		wantKind RawKind
	}{
		{"create", fsnotify.Create, RawCreate},
		{"write", fsnotify.Write, RawModify},
		{"chmod is metadata modify", fsnotify.Chmod, RawModify},
		{"remove", fsnotify.Remove, RawRemove},
		{"rename", fsnotify.Rename, RawRename},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := fromFsnotify(fsnotify.Event{Name: "/a/note.md", Op: tt.op})
			assert.Equal(t, tt.wantKind, raw.Kind)
			assert.Equal(t, []string{"/a/note.md"}, raw.Paths)
		})
	}
}

func TestWatchedSuffixes_ReturnsCopy(t *testing.T) {
	suffixes := WatchedSuffixes()
	require.Equal(t, []string{".md", ".db.json"}, suffixes)

	// 修改返回值不影响内部状态
	suffixes[0] = ".hacked"
	assert.Equal(t, []string{".md", ".db.json"}, WatchedSuffixes())
}
