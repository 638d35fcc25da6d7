package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/service"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/response"
)

// StaffHandler 员工模块 HTTP 处理器
type StaffHandler struct {
	staffSvc service.StaffService
}

// NewStaffHandler 创建 StaffHandler
func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

// ListStaff 员工列表
// GET /api/v1/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	list, err := h.staffSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// GetStaff 员工详情
// GET /api/v1/staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	staff, err := h.staffSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, staff)
}

// CreateStaff 新增员工
// POST /api/v1/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.staffSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, staff)
}

// UpdateStaff 更新员工（部分字段）
// PUT /api/v1/staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var req dto.UpdateStaffRequest
	if !bindJSON(c, &req) {
		return
	}

	staff, err := h.staffSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, staff)
}

// DeleteStaff 删除员工
// DELETE /api/v1/staff/:id
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	if err := h.staffSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}
