// Package websocket 管理后端到前端的 WebSocket 连接
package websocket

import (
	"encoding/json"
	"sync"
)

// broadcastBuffer 广播队列长度，队列满时直接丢弃消息
const broadcastBuffer = 256

// Hub WebSocket 连接管理中心
type Hub struct {
	// 当前活跃的前端连接
	clients map[*Connection]bool
	// 注册连接
	register chan *Connection
	// 注销连接
	unregister chan *Connection
	// 广播消息
	broadcast chan []byte
	mu        sync.RWMutex
}

// Connection 一条前端 WebSocket 连接
type Connection struct {
	ID   string
	Send chan []byte
}

// Envelope 推送给前端的消息信封
// 前端按 event 名分发，data 为事件载荷
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// NewHub 创建 Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan []byte, broadcastBuffer),
	}
}

// Run 运行 Hub（需要在 goroutine 中运行）
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				close(conn.Send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				select {
				case conn.Send <- data:
				default:
					// 发送缓冲已满，断开慢连接
					close(conn.Send)
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Start 启动 Hub（启动后台 goroutine）
func (h *Hub) Start() {
	go h.Run()
}

// Register 注册连接
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister 注销连接
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// ClientCount 返回当前连接数
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Broadcast 按事件名向所有前端连接广播载荷
// 尽力而为：广播队列满时直接丢弃，绝不阻塞调用方
func (h *Hub) Broadcast(event string, data any) error {
	raw, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		return err
	}

	select {
	case h.broadcast <- raw:
	default:
	}
	return nil
}
