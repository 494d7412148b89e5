package handlers

import (
	"net/http"
	"time"

	"medicore-ai/pkg/services"

	"github.com/gin-gonic/gin"
)

// ServiceName サービス名
const ServiceName = "MediCore AI"

// MonitoringHandler はサービス情報・ヘルスチェック・モニタリングのハンドラです。
type MonitoringHandler struct {
	Service   *services.MonitoringService
	version   string
	startedAt time.Time
	now       services.Clock
}

// NewMonitoringHandler は新しいMonitoringHandlerを生成します。
func NewMonitoringHandler(service *services.MonitoringService, version string, now services.Clock) *MonitoringHandler {
	if now == nil {
		now = time.Now
	}
	return &MonitoringHandler{
		Service:   service,
		version:   version,
		startedAt: now(),
		now:       now,
	}
}

// Root はサービス情報を返します。
func (h *MonitoringHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": ServiceName,
		"status":  "running",
		"version": h.version,
	})
}

// HealthCheck は外部のヘルスチェッカー（例: ロードバランサー）からのリクエストに応答します。
func (h *MonitoringHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":         "healthy",
		"service":        ServiceName,
		"version":        h.version,
		"uptime_seconds": int64(h.now().Sub(h.startedAt).Seconds()),
	})
}

// GetMetrics は集計されたリクエストログを返します。
func (h *MonitoringHandler) GetMetrics(c *gin.Context) {
	periodStr := c.DefaultQuery("period", "24h")
	var hours int

	switch periodStr {
	case "1h":
		hours = 1
	case "24h":
		hours = 24
	case "7d":
		hours = 24 * 7
	default:
		hours = 24
	}

	data := h.Service.GetDashboardData(hours)
	c.JSON(http.StatusOK, data)
}
