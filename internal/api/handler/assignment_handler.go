package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/service"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/response"
)

// AssignmentHandler 排班模块 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// ListAssignments 排班列表
// GET /api/v1/assignments
func (h *AssignmentHandler) ListAssignments(c *gin.Context) {
	list, err := h.assignmentSvc.List(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// GetAssignment 排班详情
// GET /api/v1/assignments/:id
func (h *AssignmentHandler) GetAssignment(c *gin.Context) {
	a, err := h.assignmentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, a)
}

// CreateAssignment 新增排班
// POST /api/v1/assignments
func (h *AssignmentHandler) CreateAssignment(c *gin.Context) {
	var req dto.CreateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.assignmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.Created(c, a)
}

// UpdateAssignment 更新排班（部分字段）
// PUT /api/v1/assignments/:id
func (h *AssignmentHandler) UpdateAssignment(c *gin.Context) {
	var req dto.UpdateAssignmentRequest
	if !bindJSON(c, &req) {
		return
	}

	a, err := h.assignmentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, a)
}

// DeleteAssignment 删除排班
// DELETE /api/v1/assignments/:id
func (h *AssignmentHandler) DeleteAssignment(c *gin.Context) {
	if err := h.assignmentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		handleServiceError(c, err)
		return
	}
	response.OK(c, nil)
}
