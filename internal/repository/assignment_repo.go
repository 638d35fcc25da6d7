package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
)

// AssignmentRepository 排班数据访问接口
//
// Create / Update 会检查员工与班次是否存在，以及 (staffId, shiftId, date) 是否重复。
type AssignmentRepository interface {
	Create(ctx context.Context, a *model.Assignment) error
	GetByID(ctx context.Context, id string) (*model.Assignment, error)
	List(ctx context.Context) ([]model.Assignment, error)
	Update(ctx context.Context, a *model.Assignment) error
	Delete(ctx context.Context, id string) error
}

// assignmentRepo AssignmentRepository 的 Store 实现
type assignmentRepo struct {
	store *Store
}

// NewAssignmentRepo 创建 AssignmentRepository 实例
func NewAssignmentRepo(store *Store) AssignmentRepository {
	return &assignmentRepo{store: store}
}

func assignmentID(a *model.Assignment) string { return a.ID }

func (r *assignmentRepo) Create(ctx context.Context, a *model.Assignment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.ID == "" {
		a.ID = uuid.New().String()
	}
	if indexByID(s.assignments, a.ID, assignmentID) >= 0 {
		return ErrDuplicateID
	}
	if err := s.checkAssignment(a); err != nil {
		return err
	}

	next := appended(s.assignments, *a)
	if err := s.save(ctx, SlotAssignments, next); err != nil {
		return err
	}
	s.assignments = next
	return nil
}

func (r *assignmentRepo) GetByID(_ context.Context, id string) (*model.Assignment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.assignments, id, assignmentID)
	if i < 0 {
		return nil, ErrRecordNotFound
	}
	a := s.assignments[i]
	return &a, nil
}

func (r *assignmentRepo) List(_ context.Context) ([]model.Assignment, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.assignments), nil
}

func (r *assignmentRepo) Update(ctx context.Context, a *model.Assignment) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.assignments, a.ID, assignmentID)
	if i < 0 {
		return ErrRecordNotFound
	}
	if err := s.checkAssignment(a); err != nil {
		return err
	}

	next := replaced(s.assignments, i, *a)
	if err := s.save(ctx, SlotAssignments, next); err != nil {
		return err
	}
	s.assignments = next
	return nil
}

func (r *assignmentRepo) Delete(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.assignments, id, assignmentID)
	if i < 0 {
		return ErrRecordNotFound
	}

	next := removed(s.assignments, i)
	if err := s.save(ctx, SlotAssignments, next); err != nil {
		return err
	}
	s.assignments = next
	return nil
}

// checkAssignment 引用完整性 + 三元组唯一（排除自身）；调用方须持有 mu
func (s *Store) checkAssignment(a *model.Assignment) error {
	if indexByID(s.staff, a.StaffID, staffID) < 0 {
		return ErrStaffReferenceMissing
	}
	if indexByID(s.shifts, a.ShiftID, shiftID) < 0 {
		return ErrShiftReferenceMissing
	}
	for i := range s.assignments {
		other := &s.assignments[i]
		if other.ID != a.ID && other.SameSlot(a) {
			return ErrDuplicateAssignment
		}
	}
	return nil
}
