package dto

// ── 排班模块 DTO ──

// CreateAssignmentRequest 创建排班请求
type CreateAssignmentRequest struct {
	StaffID string `json:"staffId" validate:"required"`
	ShiftID string `json:"shiftId" validate:"required"`
	Date    string `json:"date"    validate:"required,isodate"`
}

// UpdateAssignmentRequest 更新排班请求
type UpdateAssignmentRequest struct {
	StaffID *string `json:"staffId"`
	ShiftID *string `json:"shiftId"`
	Date    *string `json:"date"`
}

// AssignmentResponse 排班响应
type AssignmentResponse struct {
	ID      string `json:"id"`
	StaffID string `json:"staffId"`
	ShiftID string `json:"shiftId"`
	Date    string `json:"date"`
}
