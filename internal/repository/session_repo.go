package repository

import (
	"context"
	"fmt"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
)

// SessionRepository 当前会话（currentUser 槽位）访问接口
type SessionRepository interface {
	// Get 未登录时返回 ErrRecordNotFound
	Get(ctx context.Context) (*model.Session, error)
	Set(ctx context.Context, session *model.Session) error
	// Clear 幂等
	Clear(ctx context.Context) error
}

type sessionRepo struct {
	store *Store
}

// NewSessionRepo 创建 SessionRepository 实例
func NewSessionRepo(store *Store) SessionRepository {
	return &sessionRepo{store: store}
}

func (r *sessionRepo) Get(_ context.Context) (*model.Session, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrRecordNotFound
	}
	sess := *s.session
	return &sess, nil
}

func (r *sessionRepo) Set(ctx context.Context, session *model.Session) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.save(ctx, SlotCurrentUser, session); err != nil {
		return err
	}
	sess := *session
	s.session = &sess
	return nil
}

func (r *sessionRepo) Clear(ctx context.Context) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.gw.Delete(ctx, SlotCurrentUser); err != nil {
		return fmt.Errorf("删除槽位 %s 失败: %w", SlotCurrentUser, err)
	}
	s.session = nil
	return nil
}
