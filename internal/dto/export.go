package dto

import "bytes"

// ── 导出模块 DTO ──

// 导出数据集
const (
	DatasetStaff       = "staff"
	DatasetShifts      = "shifts"
	DatasetAssignments = "assignments"
)

// 导出格式
const (
	FormatCSV  = "csv"
	FormatXLSX = "xlsx"
)

// ExportRequest 导出查询参数
type ExportRequest struct {
	Format string `form:"format" binding:"omitempty,oneof=csv xlsx"` // 默认 csv
}

// ExportFile 导出结果，由 Handler 设置响应头后写出
type ExportFile struct {
	Filename    string
	ContentType string
	Body        *bytes.Buffer
}
