package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
)

// ── Create 测试 ──

func TestAssignmentService_Create_DuplicateTriple(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	staff := env.mustCreateStaff(t)
	shift := env.mustCreateShift(t)

	req := &dto.CreateAssignmentRequest{StaffID: staff.ID, ShiftID: shift.ID, Date: "2030-01-10"}
	if _, err := env.assignment.Create(ctx, req); err != nil {
		t.Fatalf("第一次 Create 应成功: %v", err)
	}

	_, err := env.assignment.Create(ctx, req)
	if !errors.Is(err, ErrDuplicateAssignment) {
		t.Errorf("期望 ErrDuplicateAssignment，实际: %v", err)
	}
	if !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("期望 ConflictError 种类，实际: %v", err)
	}

	list, _ := env.assignment.List(ctx)
	if len(list) != 1 {
		t.Errorf("期望仅 1 条排班，实际 %d", len(list))
	}
}

func TestAssignmentService_Create_MissingReferents(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	staff := env.mustCreateStaff(t)
	shift := env.mustCreateShift(t)

	_, err := env.assignment.Create(ctx, &dto.CreateAssignmentRequest{StaffID: "ghost", ShiftID: shift.ID, Date: "2030-01-10"})
	if !errors.Is(err, ErrAssignmentStaffMissing) {
		t.Errorf("期望 ErrAssignmentStaffMissing，实际: %v", err)
	}
	_, err = env.assignment.Create(ctx, &dto.CreateAssignmentRequest{StaffID: staff.ID, ShiftID: "ghost", Date: "2030-01-10"})
	if !errors.Is(err, ErrAssignmentShiftMissing) {
		t.Errorf("期望 ErrAssignmentShiftMissing，实际: %v", err)
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Errorf("期望 NotFoundError 种类，实际: %v", err)
	}
}

func TestAssignmentService_Create_Validation(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	staff := env.mustCreateStaff(t)
	shift := env.mustCreateShift(t)

	_, err := env.assignment.Create(ctx, &dto.CreateAssignmentRequest{StaffID: staff.ID, ShiftID: shift.ID, Date: "2025-06-01"})
	if !errors.Is(err, ErrAssignmentDateInPast) {
		t.Errorf("期望 ErrAssignmentDateInPast，实际: %v", err)
	}
	_, err = env.assignment.Create(ctx, &dto.CreateAssignmentRequest{StaffID: staff.ID, ShiftID: "", Date: "2030-01-10"})
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("缺少 shiftId 期望 ValidationError，实际: %v", err)
	}
}

// ── Update 测试 ──

func TestAssignmentService_Update_DuplicateExcludesSelf(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	staff := env.mustCreateStaff(t)
	shift := env.mustCreateShift(t)
	first := env.mustAssign(t, staff.ID, shift.ID, "2030-01-10")
	second := env.mustAssign(t, staff.ID, shift.ID, "2030-01-11")

	// 更新为自身当前三元组：允许
	if _, err := env.assignment.Update(ctx, first.ID, &dto.UpdateAssignmentRequest{Date: ptr("2030-01-10")}); err != nil {
		t.Errorf("更新为自身三元组应成功: %v", err)
	}

	// 更新为另一条排班的三元组：冲突
	_, err := env.assignment.Update(ctx, second.ID, &dto.UpdateAssignmentRequest{Date: ptr("2030-01-10")})
	if !errors.Is(err, ErrDuplicateAssignment) {
		t.Errorf("期望 ErrDuplicateAssignment，实际: %v", err)
	}

	got, _ := env.assignment.GetByID(ctx, second.ID)
	if got.Date != "2030-01-11" {
		t.Errorf("冲突后记录不应改变，实际 Date=%s", got.Date)
	}
}

func TestAssignmentService_Update_PartialMerge(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	staff := env.mustCreateStaff(t)
	shift := env.mustCreateShift(t)
	other, err := env.shift.Create(ctx, &dto.CreateShiftRequest{Type: "Night", Date: "2030-01-10", StartTime: "22:00", EndTime: "23:59"})
	if err != nil {
		t.Fatal(err)
	}
	a := env.mustAssign(t, staff.ID, shift.ID, "2030-01-10")

	updated, err := env.assignment.Update(ctx, a.ID, &dto.UpdateAssignmentRequest{ShiftID: ptr(other.ID)})
	if err != nil {
		t.Fatalf("Update 应成功: %v", err)
	}
	if updated.ShiftID != other.ID || updated.StaffID != staff.ID || updated.Date != "2030-01-10" {
		t.Errorf("仅 shiftId 应变化，实际 %+v", updated)
	}
}

func TestAssignmentService_Update_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.assignment.Update(context.Background(), "nonexistent", &dto.UpdateAssignmentRequest{})
	if !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("期望 ErrAssignmentNotFound，实际: %v", err)
	}
}

func TestAssignmentService_Delete_NotFound(t *testing.T) {
	env := setupTestEnv(t)

	if err := env.assignment.Delete(context.Background(), "nonexistent"); !errors.Is(err, ErrAssignmentNotFound) {
		t.Errorf("期望 ErrAssignmentNotFound，实际: %v", err)
	}
}

// ── Schedule 测试 ──

func TestAssignmentService_Schedule_GroupsByDate(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	staff := env.mustCreateStaff(t)
	morning := env.mustCreateShift(t)
	night, err := env.shift.Create(ctx, &dto.CreateShiftRequest{Type: "Night", Date: "2030-01-10", StartTime: "22:00", EndTime: "23:30"})
	if err != nil {
		t.Fatal(err)
	}

	env.mustAssign(t, staff.ID, night.ID, "2030-01-10")
	env.mustAssign(t, staff.ID, morning.ID, "2030-01-10")
	env.mustAssign(t, staff.ID, morning.ID, "2030-01-12")

	days, err := env.assignment.Schedule(ctx, "")
	if err != nil {
		t.Fatalf("Schedule 应成功: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("期望 2 天，实际 %d", len(days))
	}
	if days[0].Date != "2030-01-12" || days[1].Date != "2030-01-10" {
		t.Errorf("默认应按日期倒序，实际 %s, %s", days[0].Date, days[1].Date)
	}
	entries := days[1].Entries
	if len(entries) != 2 || entries[0].Shift.Type != "Morning" || entries[1].Shift.Type != "Night" {
		t.Errorf("同一天应按开始时间排列，实际 %+v", entries)
	}
	if entries[0].Staff.Name != "Ana Pérez" {
		t.Errorf("应解析员工详情，实际 %+v", entries[0].Staff)
	}

	asc, _ := env.assignment.Schedule(ctx, dto.OrderAsc)
	if asc[0].Date != "2030-01-10" {
		t.Errorf("order=asc 应按日期正序，实际首日 %s", asc[0].Date)
	}
}

func TestAssignmentService_Schedule_SkipsOrphans(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	// 直接写入引用缺失的旧数据
	if err := env.gw.Put(ctx, "assignments", []byte(`[{"id":"a1","staffId":"gone","shiftId":"gone","date":"2030-01-10"}]`)); err != nil {
		t.Fatal(err)
	}
	env = reopen(t, env)

	days, err := env.assignment.Schedule(ctx, "")
	if err != nil {
		t.Fatalf("Schedule 应成功: %v", err)
	}
	if len(days) != 0 {
		t.Errorf("引用缺失的排班应被跳过，实际 %+v", days)
	}
}

// reopen 基于同一网关重新加载 Store
func reopen(t *testing.T, env *testEnv) *testEnv {
	t.Helper()
	return setupTestEnvWith(t, env.gw)
}

// ── 往返测试 ──

func TestRoundTrip_ReloadReproducesRecords(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	staff := env.mustCreateStaff(t)
	shift := env.mustCreateShift(t)
	a := env.mustAssign(t, staff.ID, shift.ID, "2030-01-10")
	if _, err := env.auth.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}

	reloaded := reopen(t, env)

	gotStaff, _ := reloaded.staff.GetByID(ctx, staff.ID)
	if *gotStaff != *staff {
		t.Errorf("员工不一致: %+v != %+v", gotStaff, staff)
	}
	gotShift, _ := reloaded.shift.GetByID(ctx, shift.ID)
	if *gotShift != *shift {
		t.Errorf("班次不一致: %+v != %+v", gotShift, shift)
	}
	gotA, _ := reloaded.assignment.GetByID(ctx, a.ID)
	if *gotA != *a {
		t.Errorf("排班不一致: %+v != %+v", gotA, a)
	}
	if _, err := reloaded.auth.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "secret1"}); err != nil {
		t.Errorf("重新加载后应能登录: %v", err)
	}
}
