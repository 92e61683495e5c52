// Package notification 提供面向前端的推送实现
package notification

import (
	"github.com/mdvault/backend/internal/application/monitor"
	"github.com/mdvault/backend/internal/domain/events"
	"github.com/mdvault/backend/internal/infrastructure/websocket"
)

// FsChangeEvent 文件变更推送的固定事件名
const FsChangeEvent = "fs:change"

// WebSocketPusher WebSocket 推送实现
// 无状态边界：推送失败对调用方不可见
type WebSocketPusher struct {
	hub *websocket.Hub
}

// NewWebSocketPusher 创建 WebSocket 推送器
func NewWebSocketPusher(hub *websocket.Hub) *WebSocketPusher {
	return &WebSocketPusher{hub: hub}
}

// Push 以 fs:change 事件名推送文件变更到前端
func (p *WebSocketPusher) Push(event *events.FileChangeEvent) error {
	return p.hub.Broadcast(FsChangeEvent, event)
}

// 编译时检查接口实现
var _ monitor.Pusher = (*WebSocketPusher)(nil)
