package dto

// ── 班次模块 DTO ──

// CreateShiftRequest 创建班次请求
type CreateShiftRequest struct {
	Type      string `json:"type"      validate:"required"`
	Date      string `json:"date"      validate:"required,isodate"`
	StartTime string `json:"startTime" validate:"required,clock"`
	EndTime   string `json:"endTime"   validate:"required,clock"`
}

// UpdateShiftRequest 更新班次请求
type UpdateShiftRequest struct {
	Type      *string `json:"type"`
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	EndTime   *string `json:"endTime"`
}

// ShiftResponse 班次信息响应
type ShiftResponse struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
