//go:build wireinject
// +build wireinject

package wire

import (
	"github.com/google/wire"
	"github.com/mdvault/backend/internal/application"
	appMonitor "github.com/mdvault/backend/internal/application/monitor"
	"github.com/mdvault/backend/internal/infrastructure"
	infraNotification "github.com/mdvault/backend/internal/infrastructure/notification"
	"github.com/mdvault/backend/internal/interfaces"
)

// InitializeAll 初始化所有服务
func InitializeAll() (*App, error) {
	wire.Build(
		// 按层组合 ProviderSet
		infrastructure.ProviderSet, // 基础设施层
		application.ProviderSet,    // 应用层
		interfaces.ProviderSet,     // 接口层
		// 接口绑定：application.Pusher -> infrastructure.WebSocketPusher
		wire.Bind(
			new(appMonitor.Pusher),
			new(*infraNotification.WebSocketPusher),
		),
		NewApp, // 组合所有服务的应用结构
	)
	return nil, nil
}
