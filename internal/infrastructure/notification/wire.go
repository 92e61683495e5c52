package notification

import "github.com/google/wire"

// ProviderSet 推送基础设施层 ProviderSet
var ProviderSet = wire.NewSet(
	NewWebSocketPusher,
	// 注意：Pusher 接口绑定在顶层 wire.go 中处理
)
