package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/service"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/response"
)

// ShiftHandler 班次模块 HTTP 处理器
type ShiftHandler struct {
	shiftSvc service.ShiftService
}

// NewShiftHandler 创建 ShiftHandler
func NewShiftHandler(shiftSvc service.ShiftService) *ShiftHandler {
	return &ShiftHandler{shiftSvc: shiftSvc}
}

// ListShifts 班次列表
// GET /api/v1/shifts
func (h *ShiftHandler) ListShifts(c *gin.Context) {
	list, err := h.shiftSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// GetShift 班次详情
// GET /api/v1/shifts/:id
func (h *ShiftHandler) GetShift(c *gin.Context) {
	shift, err := h.shiftSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, shift)
}

// CreateShift 新增班次
// POST /api/v1/shifts
func (h *ShiftHandler) CreateShift(c *gin.Context) {
	var req dto.CreateShiftRequest
	if !bindJSON(c, &req) {
		return
	}

	shift, err := h.shiftSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, shift)
}

// UpdateShift 更新班次（部分字段）
// PUT /api/v1/shifts/:id
func (h *ShiftHandler) UpdateShift(c *gin.Context) {
	var req dto.UpdateShiftRequest
	if !bindJSON(c, &req) {
		return
	}

	shift, err := h.shiftSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, shift)
}

// DeleteShift 删除班次
// DELETE /api/v1/shifts/:id
func (h *ShiftHandler) DeleteShift(c *gin.Context) {
	if err := h.shiftSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}
