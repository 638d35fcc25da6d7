package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
)

// RecordCounter 提供各集合记录数（由 repository.Store 实现）
type RecordCounter interface {
	Counts() map[string]int
}

// HealthHandler 健康检查
type HealthHandler struct {
	storage string
	counter RecordCounter
}

// NewHealthHandler 创建 HealthHandler，storage 为持久化后端名称
func NewHealthHandler(storage string, counter RecordCounter) *HealthHandler {
	return &HealthHandler{storage: storage, counter: counter}
}

// Health 健康检查
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(200, dto.HealthResponse{
		Status:  "ok",
		Storage: h.storage,
		Records: h.counter.Counts(),
	})
}
