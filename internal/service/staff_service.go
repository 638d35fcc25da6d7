package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/repository"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/clock"
	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/validate"
)

// ── 员工模块业务错误 ──

var (
	ErrStaffNotFound       = apperrors.NotFound("员工不存在")
	ErrStaffHasAssignments = apperrors.Conflict("该员工仍有排班，请先删除相关排班")
	ErrHireDateInFuture    = apperrors.Validation("入职日期不能晚于今天")
)

// StaffService 员工业务接口
type StaffService interface {
	Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error)
	GetByID(ctx context.Context, id string) (*dto.StaffResponse, error)
	// List 按创建顺序返回全部员工
	List(ctx context.Context) ([]dto.StaffResponse, error)
	// Update 部分更新，nil 字段保持原值
	Update(ctx context.Context, id string, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error)
	Delete(ctx context.Context, id string) error
}

type staffService struct {
	repo      *repository.Repository
	validator *validate.Validator
	clock     clock.Clock
	logger    *zap.Logger
}

// NewStaffService 创建 StaffService 实例
func NewStaffService(repo *repository.Repository, v *validate.Validator, c clock.Clock, logger *zap.Logger) StaffService {
	return &staffService{repo: repo, validator: v, clock: c, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *staffService) Create(ctx context.Context, req *dto.CreateStaffRequest) (*dto.StaffResponse, error) {
	fields := trimStaffFields(*req)
	if err := s.validator.Struct(&fields); err != nil {
		return nil, err
	}
	if fields.HireDate > s.clock.Today() {
		return nil, ErrHireDateInFuture
	}

	staff := &model.Staff{
		IDNumber:     fields.IDNumber,
		Name:         fields.Name,
		Department:   fields.Department,
		Position:     fields.Position,
		Phone:        fields.Phone,
		Email:        fields.Email,
		HireDate:     fields.HireDate,
		ContractType: fields.ContractType,
	}
	if err := s.repo.Staff.Create(ctx, staff); err != nil {
		s.logger.Error("创建员工失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("员工已创建", zap.String("staff_id", staff.ID))
	return toStaffResponse(staff), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *staffService) GetByID(ctx context.Context, id string) (*dto.StaffResponse, error) {
	staff, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}
	return toStaffResponse(staff), nil
}

// ────────────────────── List ──────────────────────

func (s *staffService) List(ctx context.Context) ([]dto.StaffResponse, error) {
	list, err := s.repo.Staff.List(ctx)
	if err != nil {
		s.logger.Error("查询员工列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.StaffResponse, 0, len(list))
	for i := range list {
		result = append(result, *toStaffResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *staffService) Update(ctx context.Context, id string, req *dto.UpdateStaffRequest) (*dto.StaffResponse, error) {
	staff, err := s.repo.Staff.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("查询员工失败", zap.Error(err))
		return nil, err
	}

	mergeString(&staff.IDNumber, req.IDNumber)
	mergeString(&staff.Name, req.Name)
	mergeString(&staff.Department, req.Department)
	mergeString(&staff.Position, req.Position)
	mergeString(&staff.Phone, req.Phone)
	mergeString(&staff.Email, req.Email)
	mergeString(&staff.HireDate, req.HireDate)
	mergeString(&staff.ContractType, req.ContractType)

	// 合并后整体校验格式
	fields := staffFields(staff)
	if err := s.validator.Struct(&fields); err != nil {
		return nil, err
	}
	if req.HireDate != nil && staff.HireDate > s.clock.Today() {
		return nil, ErrHireDateInFuture
	}

	if err := s.repo.Staff.Update(ctx, staff); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrStaffNotFound
		}
		s.logger.Error("更新员工失败", zap.Error(err))
		return nil, err
	}

	return toStaffResponse(staff), nil
}

// ────────────────────── Delete ──────────────────────

func (s *staffService) Delete(ctx context.Context, id string) error {
	err := s.repo.Staff.Delete(ctx, id)
	switch {
	case err == nil:
		s.logger.Info("员工已删除", zap.String("staff_id", id))
		return nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return ErrStaffNotFound
	case errors.Is(err, repository.ErrStillReferenced):
		return ErrStaffHasAssignments
	default:
		s.logger.Error("删除员工失败", zap.Error(err))
		return err
	}
}

// ── 辅助函数 ──

func trimStaffFields(f dto.CreateStaffRequest) dto.CreateStaffRequest {
	for _, p := range []*string{&f.IDNumber, &f.Name, &f.Department, &f.Position, &f.Phone, &f.Email, &f.HireDate, &f.ContractType} {
		*p = strings.TrimSpace(*p)
	}
	return f
}

func staffFields(staff *model.Staff) dto.CreateStaffRequest {
	return dto.CreateStaffRequest{
		IDNumber:     staff.IDNumber,
		Name:         staff.Name,
		Department:   staff.Department,
		Position:     staff.Position,
		Phone:        staff.Phone,
		Email:        staff.Email,
		HireDate:     staff.HireDate,
		ContractType: staff.ContractType,
	}
}

func toStaffResponse(staff *model.Staff) *dto.StaffResponse {
	return &dto.StaffResponse{
		ID:           staff.ID,
		IDNumber:     staff.IDNumber,
		Name:         staff.Name,
		Department:   staff.Department,
		Position:     staff.Position,
		Phone:        staff.Phone,
		Email:        staff.Email,
		HireDate:     staff.HireDate,
		ContractType: staff.ContractType,
	}
}

// mergeString 非 nil 时以去除首尾空白后的新值覆盖
func mergeString(dst *string, src *string) {
	if src != nil {
		*dst = strings.TrimSpace(*src)
	}
}
