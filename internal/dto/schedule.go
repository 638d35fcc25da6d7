package dto

// ── 排班总览 DTO ──

// 排班总览排序方向
const (
	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// ScheduleRequest 排班总览查询参数
type ScheduleRequest struct {
	Order string `form:"order" binding:"omitempty,oneof=asc desc"` // 默认 desc
}

// ScheduleDayResponse 某一天的排班
type ScheduleDayResponse struct {
	Date    string                  `json:"date"`
	Entries []ScheduleEntryResponse `json:"entries"`
}

// ScheduleEntryResponse 单条排班（含员工与班次详情）
type ScheduleEntryResponse struct {
	AssignmentID string     `json:"assignmentId"`
	Staff        StaffBrief `json:"staff"`
	Shift        ShiftBrief `json:"shift"`
}

// StaffBrief 员工简要信息
type StaffBrief struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Position   string `json:"position"`
}

// ShiftBrief 班次简要信息
type ShiftBrief struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
