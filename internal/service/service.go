package service

import (
	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/config"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/repository"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/clock"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/jwt"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/validate"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth       AuthService
	Staff      StaffService
	Shift      ShiftService
	Assignment AssignmentService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	logger *zap.Logger,
) (*Service, error) {
	v, err := validate.New()
	if err != nil {
		return nil, err
	}
	encoder, err := NewPasswordEncoder(&cfg.Auth)
	if err != nil {
		return nil, err
	}

	loc := cfg.Schedule.Location()
	c := clock.NewSystem(loc)

	return &Service{
		Auth:       NewAuthService(repo, jwtMgr, encoder, v, logger),
		Staff:      NewStaffService(repo, v, c, logger),
		Shift:      NewShiftService(repo, v, c, cfg.Schedule.ShiftTypes, logger),
		Assignment: NewAssignmentService(repo, v, c, logger),
		Export:     NewExportService(repo, loc, logger),
	}, nil
}
