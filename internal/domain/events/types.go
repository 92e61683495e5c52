// Package events 定义领域事件类型和接口
// 用于系统内部的事件驱动通信
package events

import "time"

// EventType 事件类型标识
type EventType string

// 文件变更相关事件类型
const (
	// FileCreated 文件创建事件
	FileCreated EventType = "file.created"
	// FileModified 文件修改事件
	FileModified EventType = "file.modified"
	// FileDeleted 文件删除事件
	FileDeleted EventType = "file.deleted"
	// FileRenamed 文件重命名事件
	// 当前分类规则不会产生此类型（底层重命名通知被整体丢弃），保留用于后续的重命名配对
	FileRenamed EventType = "file.renamed"
)

// FileEventTypes 全部文件变更事件类型
// 订阅者通常一次性订阅全部类型
var FileEventTypes = []EventType{
	FileCreated,
	FileModified,
	FileDeleted,
	FileRenamed,
}

// Event 领域事件接口
// 所有事件类型都必须实现此接口
type Event interface {
	// Type 返回事件类型
	Type() EventType
	// Timestamp 返回事件发生时间
	Timestamp() time.Time
}
