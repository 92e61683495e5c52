// Package handler 提供 HTTP 请求处理器
package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/mdvault/backend/internal/application/monitor"
	"github.com/mdvault/backend/internal/interfaces/http/response"
)

// MonitorHandler 文件监控处理器
type MonitorHandler struct {
	service *monitor.Service
}

// NewMonitorHandler 创建文件监控处理器
func NewMonitorHandler(service *monitor.Service) *MonitorHandler {
	return &MonitorHandler{service: service}
}

// Status 查询监控状态
// @Summary 监控状态
// @Tags 监控
// @Produce json
// @Success 200 {object} response.Response{data=monitor.StatusDTO}
// @Router /monitor/status [get]
func (h *MonitorHandler) Status(c *gin.Context) {
	response.Success(c, h.service.Status())
}
