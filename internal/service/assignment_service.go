package service

import (
	"context"
	"errors"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/repository"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/clock"
	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/validate"
)

// ── 排班模块业务错误 ──

var (
	ErrAssignmentNotFound     = apperrors.NotFound("排班不存在")
	ErrAssignmentStaffMissing = apperrors.NotFound("排班引用的员工不存在")
	ErrAssignmentShiftMissing = apperrors.NotFound("排班引用的班次不存在")
	ErrAssignmentDateInPast   = apperrors.Validation("排班日期不能早于今天")
	ErrDuplicateAssignment    = apperrors.Conflict("该员工在此日期已被分配到该班次")
)

// AssignmentService 排班业务接口
type AssignmentService interface {
	Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error)
	List(ctx context.Context) ([]dto.AssignmentResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
	// Schedule 按日期分组的排班总览，order 为 asc 或 desc（默认）
	Schedule(ctx context.Context, order string) ([]dto.ScheduleDayResponse, error)
}

type assignmentService struct {
	repo      *repository.Repository
	validator *validate.Validator
	clock     clock.Clock
	logger    *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, v *validate.Validator, c clock.Clock, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, validator: v, clock: c, logger: logger}
}

// ────────────────────── Create ──────────────────────

func (s *assignmentService) Create(ctx context.Context, req *dto.CreateAssignmentRequest) (*dto.AssignmentResponse, error) {
	a := &model.Assignment{
		StaffID: strings.TrimSpace(req.StaffID),
		ShiftID: strings.TrimSpace(req.ShiftID),
		Date:    strings.TrimSpace(req.Date),
	}
	if err := s.check(a, true); err != nil {
		return nil, err
	}

	if err := s.repo.Assignment.Create(ctx, a); err != nil {
		return nil, s.mapWriteError("创建排班失败", err)
	}

	s.logger.Info("排班已创建",
		zap.String("assignment_id", a.ID),
		zap.String("staff_id", a.StaffID),
		zap.String("shift_id", a.ShiftID),
		zap.String("date", a.Date),
	)
	return toAssignmentResponse(a), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *assignmentService) GetByID(ctx context.Context, id string) (*dto.AssignmentResponse, error) {
	a, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询排班失败", zap.Error(err))
		return nil, err
	}
	return toAssignmentResponse(a), nil
}

// ────────────────────── List ──────────────────────

func (s *assignmentService) List(ctx context.Context) ([]dto.AssignmentResponse, error) {
	list, err := s.repo.Assignment.List(ctx)
	if err != nil {
		s.logger.Error("查询排班列表失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssignmentResponse, 0, len(list))
	for i := range list {
		result = append(result, *toAssignmentResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── Update ──────────────────────

func (s *assignmentService) Update(ctx context.Context, id string, req *dto.UpdateAssignmentRequest) (*dto.AssignmentResponse, error) {
	a, err := s.repo.Assignment.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrAssignmentNotFound
		}
		s.logger.Error("查询排班失败", zap.Error(err))
		return nil, err
	}

	mergeString(&a.StaffID, req.StaffID)
	mergeString(&a.ShiftID, req.ShiftID)
	mergeString(&a.Date, req.Date)

	if err := s.check(a, req.Date != nil); err != nil {
		return nil, err
	}

	// 三元组唯一性由 Store 在同一把锁内检查（排除自身）
	if err := s.repo.Assignment.Update(ctx, a); err != nil {
		return nil, s.mapWriteError("更新排班失败", err)
	}

	return toAssignmentResponse(a), nil
}

// ────────────────────── Delete ──────────────────────

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Assignment.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		s.logger.Error("删除排班失败", zap.Error(err))
		return err
	}
	s.logger.Info("排班已删除", zap.String("assignment_id", id))
	return nil
}

// ────────────────────── Schedule ──────────────────────

func (s *assignmentService) Schedule(ctx context.Context, order string) ([]dto.ScheduleDayResponse, error) {
	assignments, err := s.repo.Assignment.List(ctx)
	if err != nil {
		s.logger.Error("查询排班列表失败", zap.Error(err))
		return nil, err
	}
	staffByID, shiftByID, err := loadReferents(ctx, s.repo)
	if err != nil {
		s.logger.Error("查询员工或班次失败", zap.Error(err))
		return nil, err
	}

	byDate := make(map[string][]dto.ScheduleEntryResponse)
	for _, a := range assignments {
		staff, okStaff := staffByID[a.StaffID]
		shift, okShift := shiftByID[a.ShiftID]
		if !okStaff || !okShift {
			s.logger.Warn("排班引用缺失，已跳过", zap.String("assignment_id", a.ID))
			continue
		}
		byDate[a.Date] = append(byDate[a.Date], dto.ScheduleEntryResponse{
			AssignmentID: a.ID,
			Staff: dto.StaffBrief{
				ID:         staff.ID,
				Name:       staff.Name,
				Department: staff.Department,
				Position:   staff.Position,
			},
			Shift: dto.ShiftBrief{
				ID:        shift.ID,
				Type:      shift.Type,
				StartTime: shift.StartTime,
				EndTime:   shift.EndTime,
			},
		})
	}

	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	if order == dto.OrderAsc {
		sort.Strings(dates)
	} else {
		sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	}

	days := make([]dto.ScheduleDayResponse, 0, len(dates))
	for _, d := range dates {
		entries := byDate[d]
		// 同一天内按开始时间、员工姓名排列
		sort.SliceStable(entries, func(i, j int) bool {
			if entries[i].Shift.StartTime != entries[j].Shift.StartTime {
				return entries[i].Shift.StartTime < entries[j].Shift.StartTime
			}
			return entries[i].Staff.Name < entries[j].Staff.Name
		})
		days = append(days, dto.ScheduleDayResponse{Date: d, Entries: entries})
	}
	return days, nil
}

// ── 辅助函数 ──

func (s *assignmentService) check(a *model.Assignment, checkDate bool) error {
	fields := dto.CreateAssignmentRequest{StaffID: a.StaffID, ShiftID: a.ShiftID, Date: a.Date}
	if err := s.validator.Struct(&fields); err != nil {
		return err
	}
	if checkDate && a.Date < s.clock.Today() {
		return ErrAssignmentDateInPast
	}
	return nil
}

// mapWriteError 将 Store 的约束错误映射为业务错误
func (s *assignmentService) mapWriteError(msg string, err error) error {
	switch {
	case errors.Is(err, repository.ErrRecordNotFound):
		return ErrAssignmentNotFound
	case errors.Is(err, repository.ErrDuplicateAssignment):
		return ErrDuplicateAssignment
	case errors.Is(err, repository.ErrStaffReferenceMissing):
		return ErrAssignmentStaffMissing
	case errors.Is(err, repository.ErrShiftReferenceMissing):
		return ErrAssignmentShiftMissing
	default:
		s.logger.Error(msg, zap.Error(err))
		return err
	}
}

// loadReferents 员工与班次的 ID 索引
func loadReferents(ctx context.Context, repo *repository.Repository) (map[string]model.Staff, map[string]model.Shift, error) {
	staffList, err := repo.Staff.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	shiftList, err := repo.Shift.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	staffByID := make(map[string]model.Staff, len(staffList))
	for _, st := range staffList {
		staffByID[st.ID] = st
	}
	shiftByID := make(map[string]model.Shift, len(shiftList))
	for _, sh := range shiftList {
		shiftByID[sh.ID] = sh
	}
	return staffByID, shiftByID, nil
}

func toAssignmentResponse(a *model.Assignment) *dto.AssignmentResponse {
	return &dto.AssignmentResponse{
		ID:      a.ID,
		StaffID: a.StaffID,
		ShiftID: a.ShiftID,
		Date:    a.Date,
	}
}
