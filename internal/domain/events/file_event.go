package events

import (
	"encoding/json"
	"fmt"
	"time"
)

// FileChangeEvent vault 内文件变更事件
// 四种变体（created/modified/deleted/renamed）共用同一结构，
// 由 EventType 区分；renamed 变体使用 OldPath/NewPath，其余变体使用 Path
type FileChangeEvent struct {
	// EventType 事件类型（created/modified/deleted/renamed）
	EventType EventType
	// Path 文件完整路径（renamed 变体为空）
	Path string
	// OldPath 重命名前路径（仅 renamed 变体）
	OldPath string
	// NewPath 重命名后路径（仅 renamed 变体）
	NewPath string
	// EventTime 事件发生时间
	EventTime time.Time
}

// Type 实现 Event 接口
func (e *FileChangeEvent) Type() EventType {
	return e.EventType
}

// Timestamp 实现 Event 接口
func (e *FileChangeEvent) Timestamp() time.Time {
	return e.EventTime
}

// filePayload 与前端约定的固定载荷结构
// 通过 type 字段区分变体
type filePayload struct {
	Type    string `json:"type"`
	Path    string `json:"path,omitempty"`
	OldPath string `json:"old_path,omitempty"`
	NewPath string `json:"new_path,omitempty"`
}

// 事件类型与载荷 type 标签的映射
var payloadTags = map[EventType]string{
	FileCreated:  "Created",
	FileModified: "Modified",
	FileDeleted:  "Deleted",
	FileRenamed:  "Renamed",
}

// MarshalJSON 序列化为前端载荷格式
// 形如 {"type":"Created","path":"/vault/note.md"}
func (e *FileChangeEvent) MarshalJSON() ([]byte, error) {
	tag, ok := payloadTags[e.EventType]
	if !ok {
		return nil, fmt.Errorf("未知的文件事件类型: %s", e.EventType)
	}

	payload := filePayload{Type: tag}
	if e.EventType == FileRenamed {
		payload.OldPath = e.OldPath
		payload.NewPath = e.NewPath
	} else {
		payload.Path = e.Path
	}

	return json.Marshal(payload)
}

// UnmarshalJSON 从前端载荷格式反序列化
func (e *FileChangeEvent) UnmarshalJSON(data []byte) error {
	var payload filePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return err
	}

	var eventType EventType
	for t, tag := range payloadTags {
		if tag == payload.Type {
			eventType = t
			break
		}
	}
	if eventType == "" {
		return fmt.Errorf("未知的文件事件载荷类型: %s", payload.Type)
	}

	e.EventType = eventType
	e.Path = payload.Path
	e.OldPath = payload.OldPath
	e.NewPath = payload.NewPath
	return nil
}
