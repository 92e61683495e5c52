package watcher

import (
	"strings"
	"time"

	"github.com/mdvault/backend/internal/domain/events"
)

// vault 内关注的文件后缀：笔记（.md）和轻量数据库（.db.json）
// 固定集合，不提供配置入口
var watchedSuffixes = []string{".md", ".db.json"}

// WatchedSuffixes 返回关注的文件后缀列表
func WatchedSuffixes() []string {
	suffixes := make([]string, len(watchedSuffixes))
	copy(suffixes, watchedSuffixes)
	return suffixes
}

// isWatchedPath 判断路径是否命中关注的后缀
func isWatchedPath(path string) bool {
	for _, suffix := range watchedSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// Classify 将一条原始通知映射为零或一个领域事件
// 规则：
//  1. 先按后缀过滤路径列表，全部不命中则整条丢弃
//  2. 命中时只取第一个命中的路径，一条通知至多产生一个事件
//  3. create/modify/remove 分别映射为 created/modified/deleted，
//     其余类型（rename、access 等）丢弃，不产生事件
func Classify(raw RawNotification) (*events.FileChangeEvent, bool) {
	var matched string
	for _, path := range raw.Paths {
		if isWatchedPath(path) {
			matched = path
			break
		}
	}
	if matched == "" {
		return nil, false
	}

	var eventType events.EventType
	switch raw.Kind {
	case RawCreate:
		eventType = events.FileCreated
	case RawModify:
		eventType = events.FileModified
	case RawRemove:
		eventType = events.FileDeleted
	default:
		return nil, false
	}

	return &events.FileChangeEvent{
		EventType: eventType,
		Path:      matched,
		EventTime: time.Now(),
	}, true
}
