package handler

import (
	"net/http"
	"time"

	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorilla "github.com/gorilla/websocket"
	"github.com/mdvault/backend/internal/infrastructure/config"
	"github.com/mdvault/backend/internal/infrastructure/log"
	"github.com/mdvault/backend/internal/infrastructure/websocket"
)

const (
	// writeTimeout 单条消息写入超时
	writeTimeout = 10 * time.Second
	// pongTimeout 读取超时，收到 Pong 后续期
	pongTimeout = 60 * time.Second
	// pingInterval Ping 发送间隔，必须小于 pongTimeout
	pingInterval = 30 * time.Second
	// sendBuffer 每条连接的发送缓冲长度
	sendBuffer = 256
)

// WSHandler 前端 WebSocket 接入处理器
type WSHandler struct {
	hub      *websocket.Hub
	upgrader gorilla.Upgrader
	logger   *slog.Logger
}

// NewWSHandler 创建 WebSocket 接入处理器
func NewWSHandler(hub *websocket.Hub, wsCfg *config.WebSocketConfig) *WSHandler {
	return &WSHandler{
		hub:    hub,
		logger: log.NewModuleLogger("http", "ws_handler"),
		upgrader: gorilla.Upgrader{
			ReadBufferSize:  wsCfg.ReadBufferSize,
			WriteBufferSize: wsCfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true // 本机桌面前端，允许所有来源
			},
		},
	}
}

// Serve 升级连接并接入 Hub
// 前端连接是只收不发的：读取协程只负责心跳和探测断开
func (h *WSHandler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("failed to upgrade connection",
			"error", err,
		)
		return
	}

	client := &websocket.Connection{
		ID:   uuid.New().String(),
		Send: make(chan []byte, sendBuffer),
	}
	h.hub.Register(client)

	h.logger.Info("Frontend connected",
		"conn_id", client.ID,
	)

	go h.writePump(conn, client)
	go h.readPump(conn, client)
}

// writePump 把 Hub 投递的消息写入连接，并定期发送 Ping
func (h *WSHandler) writePump(conn *gorilla.Conn, client *websocket.Connection) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			if !ok {
				// Hub 已注销此连接
				_ = conn.WriteMessage(gorilla.CloseMessage, []byte{})
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(gorilla.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteMessage(gorilla.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// readPump 丢弃前端发来的消息，检测连接断开后注销
func (h *WSHandler) readPump(conn *gorilla.Conn, client *websocket.Connection) {
	defer func() {
		h.hub.Unregister(client)
		_ = conn.Close()
		h.logger.Info("Frontend disconnected",
			"conn_id", client.ID,
		)
	}()

	_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	conn.SetPongHandler(func(string) error {
		// 收到 Pong 说明对方存活，续期读取超时
		return conn.SetReadDeadline(time.Now().Add(pongTimeout))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if gorilla.IsUnexpectedCloseError(err, gorilla.CloseGoingAway, gorilla.CloseNormalClosure) {
				h.logger.Debug("connection read error",
					"conn_id", client.ID,
					"error", err,
				)
			}
			return
		}
		// 前端消息直接丢弃，但任何消息都续期读取超时
		_ = conn.SetReadDeadline(time.Now().Add(pongTimeout))
	}
}
