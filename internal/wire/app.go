package wire

import (
	"context"
	"errors"
	"net/http"
	"time"

	"log/slog"

	appMonitor "github.com/mdvault/backend/internal/application/monitor"
	"github.com/mdvault/backend/internal/domain/events"
	applog "github.com/mdvault/backend/internal/infrastructure/log"
	"github.com/mdvault/backend/internal/infrastructure/websocket"
	"github.com/mdvault/backend/internal/interfaces"
)

// shutdownTimeout HTTP 优雅关闭超时
const shutdownTimeout = 5 * time.Second

// App 应用主结构，组合所有服务
type App struct {
	HTTPServer     *interfaces.HTTPServer
	wsHub          *websocket.Hub
	monitorService *appMonitor.Service
	eventBus       events.EventBus
	logger         *slog.Logger
}

// NewApp 创建应用实例
func NewApp(
	httpServer *interfaces.HTTPServer,
	wsHub *websocket.Hub,
	monitorService *appMonitor.Service,
	eventBus events.EventBus,
) *App {
	return &App{
		HTTPServer:     httpServer,
		wsHub:          wsHub,
		monitorService: monitorService,
		eventBus:       eventBus,
		logger:         applog.NewModuleLogger("app", "main"),
	}
}

// Start 启动所有服务
func (a *App) Start() error {
	a.logger.Info("Starting mdvault backend application")

	// 启动 WebSocket Hub
	a.wsHub.Start()

	// 启动文件监控
	// 失败不致命：前端仍可正常使用，只是收不到变更推送
	if err := a.monitorService.Start(); err != nil {
		a.logger.Error("Failed to start file monitor",
			"error", err,
		)
	}

	// 启动 HTTP 服务器（goroutine）
	go func() {
		if err := a.HTTPServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("Failed to start HTTP server",
				"error", err,
			)
		}
	}()

	a.logger.Info("mdvault backend application started successfully")

	return nil
}

// Stop 停止所有服务
// 文件监控没有停止接口，监听会话随进程一起结束
func (a *App) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := a.HTTPServer.Shutdown(ctx)
	a.eventBus.Close()
	return err
}
