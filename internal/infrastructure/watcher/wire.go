package watcher

import (
	"github.com/google/wire"
	"github.com/mdvault/backend/internal/domain/events"
	"github.com/mdvault/backend/internal/infrastructure/config"
)

// ProviderSet 文件监听基础设施 ProviderSet
var ProviderSet = wire.NewSet(
	ProvideEventBus,
	ProvideFileWatcher,
)

// ProvideEventBus 提供事件总线实例
func ProvideEventBus() events.EventBus {
	return NewEventBus()
}

// ProvideFileWatcher 提供文件监听器实例
func ProvideFileWatcher(cfg *config.VaultConfig, eventBus events.EventBus) *FileWatcher {
	return NewFileWatcher(WatchConfig{VaultDir: cfg.Dir}, eventBus)
}
