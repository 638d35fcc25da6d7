package service

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/config"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/repository"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/clock"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/jwt"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/kvstore"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/validate"
)

// ── 测试辅助 ──

const testToday = "2026-01-01"

type testEnv struct {
	gw         *kvstore.Memory
	repo       *repository.Repository
	staff      StaffService
	shift      ShiftService
	assignment AssignmentService
	auth       AuthService
	export     ExportService
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	return setupTestEnvWith(t, kvstore.NewMemory())
}

func setupTestEnvWith(t *testing.T, gw *kvstore.Memory) *testEnv {
	t.Helper()

	store, err := repository.Open(context.Background(), gw)
	if err != nil {
		t.Fatalf("Open 应成功: %v", err)
	}
	repo := repository.NewRepository(store)

	v, err := validate.New()
	if err != nil {
		t.Fatalf("validate.New 应成功: %v", err)
	}
	c := clock.Fixed(testToday)
	logger := zap.NewNop()

	authCfg := &config.AuthConfig{
		JWTSecret:        "test-secret-key-for-unit-testing-2026",
		SessionTokenTTL:  time.Hour,
		PasswordEncoding: config.PasswordEncodingBase64,
	}
	encoder, err := NewPasswordEncoder(authCfg)
	if err != nil {
		t.Fatalf("NewPasswordEncoder 应成功: %v", err)
	}

	return &testEnv{
		gw:         gw,
		repo:       repo,
		staff:      NewStaffService(repo, v, c, logger),
		shift:      NewShiftService(repo, v, c, []string{"Morning", "Afternoon", "Night"}, logger),
		assignment: NewAssignmentService(repo, v, c, logger),
		auth:       NewAuthService(repo, jwt.NewManager(authCfg), encoder, v, logger),
		export:     NewExportService(repo, time.UTC, logger),
	}
}

func validStaffRequest() *dto.CreateStaffRequest {
	return &dto.CreateStaffRequest{
		IDNumber:     "12345678",
		Name:         "Ana Pérez",
		Department:   "Urgencias",
		Position:     "Enfermera",
		Phone:        "+34600123123",
		Email:        "ana@clinica.es",
		HireDate:     "2024-03-01",
		ContractType: "Indefinido",
	}
}

func validShiftRequest() *dto.CreateShiftRequest {
	return &dto.CreateShiftRequest{
		Type:      "Morning",
		Date:      "2030-01-10",
		StartTime: "08:00",
		EndTime:   "16:00",
	}
}

func (e *testEnv) mustCreateStaff(t *testing.T) *dto.StaffResponse {
	t.Helper()
	staff, err := e.staff.Create(context.Background(), validStaffRequest())
	if err != nil {
		t.Fatalf("创建员工应成功: %v", err)
	}
	return staff
}

func (e *testEnv) mustCreateShift(t *testing.T) *dto.ShiftResponse {
	t.Helper()
	shift, err := e.shift.Create(context.Background(), validShiftRequest())
	if err != nil {
		t.Fatalf("创建班次应成功: %v", err)
	}
	return shift
}

func (e *testEnv) mustAssign(t *testing.T, staffID, shiftID, date string) *dto.AssignmentResponse {
	t.Helper()
	a, err := e.assignment.Create(context.Background(), &dto.CreateAssignmentRequest{
		StaffID: staffID, ShiftID: shiftID, Date: date,
	})
	if err != nil {
		t.Fatalf("创建排班应成功: %v", err)
	}
	return a
}

func ptr(s string) *string { return &s }
