package handler

import "github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth       *AuthHandler
	Staff      *StaffHandler
	Shift      *ShiftHandler
	Assignment *AssignmentHandler
	Export     *ExportHandler
	Health     *HealthHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service, health *HealthHandler) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(svc.Auth),
		Staff:      NewStaffHandler(svc.Staff),
		Shift:      NewShiftHandler(svc.Shift),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Export:     NewExportHandler(svc.Export),
		Health:     health,
	}
}
