// Package watcher 提供 vault 目录的文件监听和事件分发功能
package watcher

import "github.com/fsnotify/fsnotify"

// RawKind 底层文件系统通知的原始变更类型
type RawKind int

const (
	// RawUnknown 无法识别的变更（access 等）
	RawUnknown RawKind = iota
	// RawCreate 创建
	RawCreate
	// RawModify 修改（内容或元数据）
	RawModify
	// RawRemove 删除
	RawRemove
	// RawRename 底层重命名通知（不会被配对还原，整体丢弃）
	RawRename
)

// RawNotification 一条底层文件系统原始通知
// Paths 按底层上报顺序排列，至少包含一个路径；
// fsnotify 每条事件只携带一个路径，模型仍按约定保留路径序列
type RawNotification struct {
	Kind  RawKind
	Paths []string
}

// fromFsnotify 将 fsnotify 事件转换为原始通知
// Chmod 属于元数据修改，与 Write 一并归入 RawModify
func fromFsnotify(event fsnotify.Event) RawNotification {
	var kind RawKind
	switch {
	case event.Has(fsnotify.Create):
		kind = RawCreate
	case event.Has(fsnotify.Write), event.Has(fsnotify.Chmod):
		kind = RawModify
	case event.Has(fsnotify.Remove):
		kind = RawRemove
	case event.Has(fsnotify.Rename):
		kind = RawRename
	default:
		kind = RawUnknown
	}

	return RawNotification{
		Kind:  kind,
		Paths: []string{event.Name},
	}
}
