package monitor

import "github.com/mdvault/backend/internal/domain/events"

// Pusher 推送接口（定义在 application 层）
// 这是应用层需要的技术能力，不是领域概念；
// 测试中可以用记录型实现替换真实的 WebSocket 推送
type Pusher interface {
	Push(event *events.FileChangeEvent) error
}
