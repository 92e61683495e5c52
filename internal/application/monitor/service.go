// Package monitor 编排 vault 文件监控用例
package monitor

import (
	"log/slog"

	"github.com/mdvault/backend/internal/domain/events"
	"github.com/mdvault/backend/internal/infrastructure/log"
	"github.com/mdvault/backend/internal/infrastructure/watcher"
)

// Service 文件监控应用服务
// 把监听会话产生的领域事件转发给前端推送器
type Service struct {
	fileWatcher *watcher.FileWatcher
	eventBus    events.EventBus
	pusher      Pusher
	logger      *slog.Logger
}

// NewService 创建文件监控应用服务
func NewService(fileWatcher *watcher.FileWatcher, eventBus events.EventBus, pusher Pusher) *Service {
	return &Service{
		fileWatcher: fileWatcher,
		eventBus:    eventBus,
		pusher:      pusher,
		logger:      log.NewModuleLogger("monitor", "service"),
	}
}

// Start 启动监控（用例）
// 先注册事件转发，再注册目录监听；返回的错误是唯一对调用方
// 可见的失败，只适合日志或提示，不用于程序化分支。
// 启动成功后监控持续到进程退出，没有停止入口
func (s *Service) Start() error {
	unsubscribe := s.eventBus.SubscribeMultiple(events.FileEventTypes, events.HandlerFunc(s.forward))

	if err := s.fileWatcher.Start(); err != nil {
		// 调用方可以在失败后重试 Start，撤销本次订阅，
		// 避免重试成功后同一事件被转发多次
		unsubscribe()
		return err
	}

	s.logger.Info("File monitor started",
		"vault_dir", s.fileWatcher.VaultDir(),
	)
	return nil
}

// forward 把文件变更事件推送给前端
// 尽力而为：前端未连接或推送失败时直接丢弃，不重试、不上报
func (s *Service) forward(event events.Event) error {
	fileEvent, ok := event.(*events.FileChangeEvent)
	if !ok {
		return nil
	}

	if err := s.pusher.Push(fileEvent); err != nil {
		s.logger.Debug("Push dropped", "error", err)
	}
	return nil
}

// Status 返回监控状态
func (s *Service) Status() *StatusDTO {
	return &StatusDTO{
		VaultDir: s.fileWatcher.VaultDir(),
		Watching: s.fileWatcher.IsWatching(),
		Suffixes: watcher.WatchedSuffixes(),
	}
}
