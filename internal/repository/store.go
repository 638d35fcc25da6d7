package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/kvstore"
)

// 持久化槽位名，与浏览器版 localStorage 的键保持一致
const (
	SlotStaff       = "staff"
	SlotShifts      = "shifts"
	SlotAssignments = "assignments"
	SlotUsers       = "users"
	SlotCurrentUser = "currentUser"
)

// Store 内存中的权威数据集合 + 当前会话
//
// 所有读写在 mu 下串行执行；写操作先在副本上计算，经网关保存成功后才替换内存状态，
// 因此保存失败时内存保持不变。
type Store struct {
	mu sync.Mutex
	gw kvstore.Gateway

	staff       []model.Staff
	shifts      []model.Shift
	assignments []model.Assignment
	users       []model.User
	session     *model.Session
}

// Open 从网关加载全部槽位，构建 Store
func Open(ctx context.Context, gw kvstore.Gateway) (*Store, error) {
	s := &Store{gw: gw}

	if _, err := load(ctx, gw, SlotStaff, &s.staff); err != nil {
		return nil, err
	}
	if _, err := load(ctx, gw, SlotShifts, &s.shifts); err != nil {
		return nil, err
	}
	if _, err := load(ctx, gw, SlotAssignments, &s.assignments); err != nil {
		return nil, err
	}
	if _, err := load(ctx, gw, SlotUsers, &s.users); err != nil {
		return nil, err
	}

	var sess model.Session
	found, err := load(ctx, gw, SlotCurrentUser, &sess)
	if err != nil {
		return nil, err
	}
	// 槽位内容为 null 时视为未登录
	if found && sess.ID != "" {
		s.session = &sess
	}

	return s, nil
}

// Counts 各集合当前记录数（启动日志使用）
func (s *Store) Counts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return map[string]int{
		SlotStaff:       len(s.staff),
		SlotShifts:      len(s.shifts),
		SlotAssignments: len(s.assignments),
		SlotUsers:       len(s.users),
	}
}

// save 序列化并写入槽位；调用方须持有 mu
func (s *Store) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("序列化槽位 %s 失败: %w", key, err)
	}
	if err := s.gw.Put(ctx, key, data); err != nil {
		return fmt.Errorf("保存槽位 %s 失败: %w", key, err)
	}
	return nil
}

// load 读取槽位并反序列化；槽位不存在时返回 false
func load(ctx context.Context, gw kvstore.Gateway, key string, dst any) (bool, error) {
	data, err := gw.Get(ctx, key)
	if errors.Is(err, kvstore.ErrSlotNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("读取槽位 %s 失败: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("解析槽位 %s 失败: %w", key, err)
	}
	return true, nil
}

// ── 集合辅助 ──

func indexByID[T any](items []T, id string, idOf func(*T) string) int {
	for i := range items {
		if idOf(&items[i]) == id {
			return i
		}
	}
	return -1
}

// replaced 返回第 i 个元素被替换后的新切片
func replaced[T any](items []T, i int, v T) []T {
	next := make([]T, len(items))
	copy(next, items)
	next[i] = v
	return next
}

// appended 返回追加 v 后的新切片（不与原切片共享底层数组）
func appended[T any](items []T, v T) []T {
	next := make([]T, len(items), len(items)+1)
	copy(next, items)
	return append(next, v)
}

// removed 返回删除第 i 个元素后的新切片，保持原有顺序
func removed[T any](items []T, i int) []T {
	next := make([]T, 0, len(items)-1)
	next = append(next, items[:i]...)
	return append(next, items[i+1:]...)
}

func cloneSlice[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}
