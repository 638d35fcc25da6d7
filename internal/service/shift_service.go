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

// ── 班次模块业务错误 ──

var (
	ErrShiftNotFound       = apperrors.NotFound("班次不存在")
	ErrShiftHasAssignments = apperrors.Conflict("该班次仍有排班，请先删除相关排班")
	ErrShiftTypeInvalid    = apperrors.Validation("班次类型不在允许范围内")
	ErrShiftDateInPast     = apperrors.Validation("班次日期不能早于今天")
	ErrShiftEndBeforeStart = apperrors.Validation("结束时间必须晚于开始时间")
)

// ShiftService 班次业务接口
type ShiftService interface {
	Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error)
	GetByID(ctx context.Context, id string) (*dto.ShiftResponse, error)
	List(ctx context.Context) ([]dto.ShiftResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error)
	Delete(ctx context.Context, id string) error
}

type shiftService struct {
	repo       *repository.Repository
	validator  *validate.Validator
	clock      clock.Clock
	shiftTypes []string
	logger     *zap.Logger
}

// NewShiftService 创建 ShiftService 实例
// shiftTypes 为允许的班次类型，比较时不区分大小写
func NewShiftService(repo *repository.Repository, v *validate.Validator, c clock.Clock, shiftTypes []string, logger *zap.Logger) ShiftService {
	return &shiftService{repo: repo, validator: v, clock: c, shiftTypes: shiftTypes, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *shiftService) Create(ctx context.Context, req *dto.CreateShiftRequest) (*dto.ShiftResponse, error) {
	shift := &model.Shift{
		Type:      strings.TrimSpace(req.Type),
		Date:      strings.TrimSpace(req.Date),
		StartTime: strings.TrimSpace(req.StartTime),
		EndTime:   strings.TrimSpace(req.EndTime),
	}
	if err := s.check(shift, true); err != nil {
		return nil, err
	}

	if err := s.repo.Shift.Create(ctx, shift); err != nil {
		s.logger.Error("创建班次失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("班次已创建", zap.String("shift_id", shift.ID), zap.String("date", shift.Date))
	return toShiftResponse(shift), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *shiftService) GetByID(ctx context.Context, id string) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.Error(err))
		return nil, err
	}
	return toShiftResponse(shift), nil
}

// ────────────────────── List ──────────────────────

func (s *shiftService) List(ctx context.Context) ([]dto.ShiftResponse, error) {
	list, err := s.repo.Shift.List(ctx)
	if err != nil {
		s.logger.Error("查询班次列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.ShiftResponse, 0, len(list))
	for i := range list {
		result = append(result, *toShiftResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *shiftService) Update(ctx context.Context, id string, req *dto.UpdateShiftRequest) (*dto.ShiftResponse, error) {
	shift, err := s.repo.Shift.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("查询班次失败", zap.Error(err))
		return nil, err
	}

	mergeString(&shift.Type, req.Type)
	mergeString(&shift.Date, req.Date)
	mergeString(&shift.StartTime, req.StartTime)
	mergeString(&shift.EndTime, req.EndTime)

	// 仅当本次修改了日期时才检查“不早于今天”
	if err := s.check(shift, req.Date != nil); err != nil {
		return nil, err
	}

	if err := s.repo.Shift.Update(ctx, shift); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrShiftNotFound
		}
		s.logger.Error("更新班次失败", zap.Error(err))
		return nil, err
	}

	return toShiftResponse(shift), nil
}

// ────────────────────── Delete ──────────────────────

func (s *shiftService) Delete(ctx context.Context, id string) error {
	err := s.repo.Shift.Delete(ctx, id)
	switch {
	case err == nil:
		s.logger.Info("班次已删除", zap.String("shift_id", id))
		return nil
	case errors.Is(err, repository.ErrRecordNotFound):
		return ErrShiftNotFound
	case errors.Is(err, repository.ErrStillReferenced):
		return ErrShiftHasAssignments
	default:
		s.logger.Error("删除班次失败", zap.Error(err))
		return err
	}
}

// ── 辅助函数 ──

// check 校验格式、类型与时间先后；类型统一为配置中的写法
func (s *shiftService) check(shift *model.Shift, checkDate bool) error {
	fields := dto.CreateShiftRequest{
		Type:      shift.Type,
		Date:      shift.Date,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
	}
	if err := s.validator.Struct(&fields); err != nil {
		return err
	}

	canonical, ok := s.matchType(shift.Type)
	if !ok {
		return ErrShiftTypeInvalid
	}
	shift.Type = canonical

	if checkDate && shift.Date < s.clock.Today() {
		return ErrShiftDateInPast
	}

	start, _ := clock.ParseTimeOfDay(shift.StartTime)
	end, _ := clock.ParseTimeOfDay(shift.EndTime)
	if end <= start {
		return ErrShiftEndBeforeStart
	}
	return nil
}

func (s *shiftService) matchType(t string) (string, bool) {
	for _, allowed := range s.shiftTypes {
		if strings.EqualFold(allowed, t) {
			return allowed, true
		}
	}
	return "", false
}

func toShiftResponse(shift *model.Shift) *dto.ShiftResponse {
	return &dto.ShiftResponse{
		ID:        shift.ID,
		Type:      shift.Type,
		Date:      shift.Date,
		StartTime: shift.StartTime,
		EndTime:   shift.EndTime,
	}
}
