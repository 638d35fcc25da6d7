package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
)

// UserRepository 用户数据访问接口
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	List(ctx context.Context) ([]model.User, error)
}

// userRepo UserRepository 的 Store 实现
type userRepo struct {
	store *Store
}

// NewUserRepo 创建 UserRepository 实例
func NewUserRepo(store *Store) UserRepository {
	return &userRepo{store: store}
}

func userID(u *model.User) string { return u.ID }

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	for i := range s.users {
		if s.users[i].Username == user.Username {
			return ErrDuplicateUsername
		}
	}
	if indexByID(s.users, user.ID, userID) >= 0 {
		return ErrDuplicateID
	}

	next := appended(s.users, *user)
	if err := s.save(ctx, SlotUsers, next); err != nil {
		return err
	}
	s.users = next
	return nil
}

func (r *userRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexByID(s.users, id, userID)
	if i < 0 {
		return nil, ErrRecordNotFound
	}
	user := s.users[i]
	return &user, nil
}

// GetByUsername 用户名区分大小写
func (r *userRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.users {
		if s.users[i].Username == username {
			user := s.users[i]
			return &user, nil
		}
	}
	return nil, ErrRecordNotFound
}

func (r *userRepo) List(_ context.Context) ([]model.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSlice(s.users), nil
}
