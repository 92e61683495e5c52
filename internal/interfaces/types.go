// Package interfaces 聚合对外接口层
package interfaces

import (
	"github.com/mdvault/backend/internal/interfaces/http"
)

// HTTPServer HTTP 服务器类型别名
type HTTPServer = http.HTTPServer
