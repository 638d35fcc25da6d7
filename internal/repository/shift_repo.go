package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
)

// ShiftRepository 班次数据访问接口
type ShiftRepository interface {
	Create(ctx context.Context, shift *model.Shift) error
	GetByID(ctx context.Context, id string) (*model.Shift, error)
	List(ctx context.Context) ([]model.Shift, error)
	Update(ctx context.Context, shift *model.Shift) error
	// Delete 仍被排班引用时返回 ErrStillReferenced
	Delete(ctx context.Context, id string) error
}

// shiftRepo ShiftRepository 的 Store 实现
type shiftRepo struct {
	store *Store
}

// NewShiftRepo 创建 ShiftRepository 实例
func NewShiftRepo(store *Store) ShiftRepository {
	return &shiftRepo{store: store}
}

func shiftID(s *model.Shift) string { return s.ID }

func (r *shiftRepo) Create(ctx context.Context, shift *model.Shift) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if shift.ID == "" {
		shift.ID = uuid.New().String()
	}
	if indexByID(s.shifts, shift.ID, shiftID) >= 0 {
		return ErrDuplicateID
	}

	next := appended(s.shifts, *shift)
	if err := s.save(ctx, SlotShifts, next); err != nil {
		return err
	}
	s.shifts = next
	return nil
}

func (r *shiftRepo) GetByID(_ context.Context, id string) (*model.Shift, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.shifts, id, shiftID)
	if i < 0 {
		return nil, ErrRecordNotFound
	}
	shift := s.shifts[i]
	return &shift, nil
}

func (r *shiftRepo) List(_ context.Context) ([]model.Shift, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.shifts), nil
}

func (r *shiftRepo) Update(ctx context.Context, shift *model.Shift) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.shifts, shift.ID, shiftID)
	if i < 0 {
		return ErrRecordNotFound
	}

	next := replaced(s.shifts, i, *shift)
	if err := s.save(ctx, SlotShifts, next); err != nil {
		return err
	}
	s.shifts = next
	return nil
}

func (r *shiftRepo) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.shifts, id, shiftID)
	if i < 0 {
		return ErrRecordNotFound
	}
	for _, a := range s.assignments {
		if a.ShiftID == id {
			return ErrStillReferenced
		}
	}

	next := removed(s.shifts, i)
	if err := s.save(ctx, SlotShifts, next); err != nil {
		return err
	}
	s.shifts = next
	return nil
}
