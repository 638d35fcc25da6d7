package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	sentinel := Conflict("该员工存在排班，无法删除")
	wrapped := fmt.Errorf("删除员工: %w", sentinel)

	if !errors.Is(wrapped, sentinel) {
		t.Error("包装后仍应匹配原哨兵错误")
	}
	if !errors.Is(wrapped, ErrConflict) {
		t.Error("包装后应匹配 ErrConflict")
	}
	if KindOf(wrapped) != ErrConflict {
		t.Errorf("期望种类 ErrConflict，实际=%v", KindOf(wrapped))
	}
	if Message(wrapped) != "该员工存在排班，无法删除" {
		t.Errorf("消息不符: %q", Message(wrapped))
	}
}

func TestKindOf_PlainError(t *testing.T) {
	err := errors.New("磁盘已满")
	if KindOf(err) != nil {
		t.Error("普通错误不应有种类")
	}
	if Message(err) != "" {
		t.Error("普通错误不应有面向用户的消息")
	}
}

func TestDistinctSentinelsSameKind(t *testing.T) {
	a := NotFound("员工不存在")
	b := NotFound("班次不存在")
	if errors.Is(a, b) {
		t.Error("同种类的不同哨兵不应互相匹配")
	}
	if !errors.Is(b, ErrNotFound) {
		t.Error("应匹配 ErrNotFound")
	}
}
