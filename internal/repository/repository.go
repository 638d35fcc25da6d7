package repository

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Staff      StaffRepository
	Shift      ShiftRepository
	Assignment AssignmentRepository
	User       UserRepository
	Session    SessionRepository
}

// NewRepository 创建 Repository 聚合，所有实现共享同一个 Store
func NewRepository(store *Store) *Repository {
	return &Repository{
		Staff:      NewStaffRepo(store),
		Shift:      NewShiftRepo(store),
		Assignment: NewAssignmentRepo(store),
		User:       NewUserRepo(store),
		Session:    NewSessionRepo(store),
	}
}
