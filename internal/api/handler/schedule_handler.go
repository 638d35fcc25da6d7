package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/response"
)

// Schedule 排班总览（按日期分组）
// GET /api/v1/schedule?order=asc|desc
func (h *AssignmentHandler) Schedule(c *gin.Context) {
	var req dto.ScheduleRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, response.CodeInvalidParams, "order 只能为 asc 或 desc")
		return
	}

	days, err := h.assignmentSvc.Schedule(c.Request.Context(), req.Order)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"days": days})
}
