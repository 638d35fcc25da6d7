package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
)

// StaffRepository 员工数据访问接口
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	GetByID(ctx context.Context, id string) (*model.Staff, error)
	List(ctx context.Context) ([]model.Staff, error)
	Update(ctx context.Context, staff *model.Staff) error
	// Delete 仍被排班引用时返回 ErrStillReferenced
	Delete(ctx context.Context, id string) error
}

// staffRepo StaffRepository 的 Store 实现
type staffRepo struct {
	store *Store
}

// NewStaffRepo 创建 StaffRepository 实例
func NewStaffRepo(store *Store) StaffRepository {
	return &staffRepo{store: store}
}

func staffID(s *model.Staff) string { return s.ID }

func (r *staffRepo) Create(ctx context.Context, staff *model.Staff) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if staff.ID == "" {
		staff.ID = uuid.New().String()
	}
	if indexByID(s.staff, staff.ID, staffID) >= 0 {
		return ErrDuplicateID
	}

	next := appended(s.staff, *staff)
	if err := s.save(ctx, SlotStaff, next); err != nil {
		return err
	}
	s.staff = next
	return nil
}

func (r *staffRepo) GetByID(_ context.Context, id string) (*model.Staff, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.staff, id, staffID)
	if i < 0 {
		return nil, ErrRecordNotFound
	}
	staff := s.staff[i]
	return &staff, nil
}

func (r *staffRepo) List(_ context.Context) ([]model.Staff, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.staff), nil
}

func (r *staffRepo) Update(ctx context.Context, staff *model.Staff) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.staff, staff.ID, staffID)
	if i < 0 {
		return ErrRecordNotFound
	}

	next := replaced(s.staff, i, *staff)
	if err := s.save(ctx, SlotStaff, next); err != nil {
		return err
	}
	s.staff = next
	return nil
}

func (r *staffRepo) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.staff, id, staffID)
	if i < 0 {
		return ErrRecordNotFound
	}
	for _, a := range s.assignments {
		if a.StaffID == id {
			return ErrStillReferenced
		}
	}

	next := removed(s.staff, i)
	if err := s.save(ctx, SlotStaff, next); err != nil {
		return err
	}
	s.staff = next
	return nil
}
