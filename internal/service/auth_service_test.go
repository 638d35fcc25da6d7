package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/config"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/jwt"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/kvstore"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/validate"
)

// ── Register 测试 ──

func TestAuthService_Register_Success(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	result, err := env.auth.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: "secret1", ConfirmPassword: "secret1"})
	if err != nil {
		t.Fatalf("Register 应成功: %v", err)
	}
	if result.ID == "" || result.Username != "ana" {
		t.Errorf("返回值不符: %+v", result)
	}

	// 密码以 base64 编码存储，兼容浏览器版数据
	user, err := env.repo.User.GetByUsername(ctx, "ana")
	if err != nil {
		t.Fatal(err)
	}
	if user.Password != "c2VjcmV0MQ==" {
		t.Errorf("期望 base64 编码密码，实际=%s", user.Password)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	env := setupTestEnv(t)

	cases := map[string]*dto.RegisterRequest{
		"用户名过短":  {Username: "an", Password: "secret1"},
		"密码过短":   {Username: "ana", Password: "12345"},
		"确认密码不一致": {Username: "ana", Password: "secret1", ConfirmPassword: "secret2"},
	}
	for name, req := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := env.auth.Register(context.Background(), req); !errors.Is(err, apperrors.ErrValidation) {
				t.Errorf("期望 ValidationError，实际: %v", err)
			}
		})
	}
}

func TestAuthService_Register_UsernameTaken(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	if _, err := env.auth.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}
	_, err := env.auth.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: "other12"})
	if !errors.Is(err, ErrUsernameTaken) || !errors.Is(err, apperrors.ErrConflict) {
		t.Errorf("期望 ErrUsernameTaken (ConflictError)，实际: %v", err)
	}
}

// ── Login / Logout 测试 ──

func TestAuthService_LoginFlow(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()

	if _, err := env.auth.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}

	if _, err := env.auth.Current(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("注册后不应自动登录，实际: %v", err)
	}

	resp, err := env.auth.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "secret1"})
	if err != nil {
		t.Fatalf("Login 应成功: %v", err)
	}
	if resp.Token == "" || resp.User.Username != "ana" {
		t.Errorf("返回值不符: %+v", resp)
	}

	current, err := env.auth.Current(ctx)
	if err != nil || current.Username != "ana" {
		t.Fatalf("登录后应处于已登录状态: %+v, %v", current, err)
	}

	// 错误密码：AuthError，会话不变
	_, err = env.auth.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "wrong"})
	if !errors.Is(err, ErrInvalidCredentials) || !errors.Is(err, apperrors.ErrAuth) {
		t.Errorf("期望 ErrInvalidCredentials (AuthError)，实际: %v", err)
	}
	after, err := env.auth.Current(ctx)
	if err != nil || *after != *current {
		t.Errorf("登录失败不应改变会话: %+v, %v", after, err)
	}
	if _, err := env.auth.Authenticate(ctx, resp.Token); err != nil {
		t.Errorf("登录失败后原 Token 仍应有效: %v", err)
	}
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	env := setupTestEnv(t)

	_, err := env.auth.Login(context.Background(), &dto.LoginRequest{Username: "nobody", Password: "secret1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Login_CaseSensitiveUsername(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	if _, err := env.auth.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}

	if _, err := env.auth.Login(ctx, &dto.LoginRequest{Username: "ANA", Password: "secret1"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("用户名应区分大小写，实际: %v", err)
	}
}

func TestAuthService_Logout_InvalidatesTokenAndIsIdempotent(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	if _, err := env.auth.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}
	resp, err := env.auth.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "secret1"})
	if err != nil {
		t.Fatal(err)
	}

	if err := env.auth.Logout(ctx); err != nil {
		t.Fatalf("Logout 应成功: %v", err)
	}
	if err := env.auth.Logout(ctx); err != nil {
		t.Errorf("重复 Logout 应成功: %v", err)
	}
	if _, err := env.auth.Current(ctx); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("退出后应为未登录，实际: %v", err)
	}
	if _, err := env.auth.Authenticate(ctx, resp.Token); !errors.Is(err, apperrors.ErrAuth) {
		t.Errorf("退出后 Token 应失效，实际: %v", err)
	}
}

func TestAuthService_Authenticate_NewLoginReplacesOldToken(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	if _, err := env.auth.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}
	first, _ := env.auth.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "secret1"})
	second, _ := env.auth.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "secret1"})

	if _, err := env.auth.Authenticate(ctx, first.Token); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("旧 Token 应失效，实际: %v", err)
	}
	sess, err := env.auth.Authenticate(ctx, second.Token)
	if err != nil || sess.Username != "ana" {
		t.Errorf("新 Token 应有效: %+v, %v", sess, err)
	}
	if _, err := env.auth.Authenticate(ctx, "garbage"); !errors.Is(err, ErrNotLoggedIn) {
		t.Errorf("无效 Token 期望 ErrNotLoggedIn，实际: %v", err)
	}
}

func TestAuthService_BcryptEncoding(t *testing.T) {
	gw := kvstore.NewMemory()
	env := setupTestEnvWith(t, gw)

	authCfg := &config.AuthConfig{
		JWTSecret:        "test-secret-key-for-unit-testing-2026",
		SessionTokenTTL:  time.Hour,
		PasswordEncoding: config.PasswordEncodingBcrypt,
		BcryptCost:       4,
	}
	encoder, err := NewPasswordEncoder(authCfg)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := validate.New()
	svc := NewAuthService(env.repo, jwt.NewManager(authCfg), encoder, v, zap.NewNop())
	ctx := context.Background()

	if _, err := svc.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: "secret1"}); err != nil {
		t.Fatal(err)
	}
	user, _ := env.repo.User.GetByUsername(ctx, "ana")
	if user.Password == "secret1" || user.Password == "c2VjcmV0MQ==" {
		t.Errorf("bcrypt 模式不应存储明文或 base64，实际=%s", user.Password)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "secret1"}); err != nil {
		t.Errorf("Login 应成功: %v", err)
	}
	if _, err := svc.Login(ctx, &dto.LoginRequest{Username: "ana", Password: "wrong"}); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestAuthService_Register_LongPassword(t *testing.T) {
	env := setupTestEnv(t)
	ctx := context.Background()
	long := strings.Repeat("a", 100)

	// base64 模式不限制长度
	if _, err := env.auth.Register(ctx, &dto.RegisterRequest{Username: "ana", Password: long}); err != nil {
		t.Fatalf("base64 模式下长密码应可注册: %v", err)
	}
	if _, err := env.auth.Login(ctx, &dto.LoginRequest{Username: "ana", Password: long}); err != nil {
		t.Errorf("长密码登录应成功: %v", err)
	}

	authCfg := &config.AuthConfig{
		JWTSecret:        "test-secret-key-for-unit-testing-2026",
		SessionTokenTTL:  time.Hour,
		PasswordEncoding: config.PasswordEncodingBcrypt,
		BcryptCost:       4,
	}
	encoder, err := NewPasswordEncoder(authCfg)
	if err != nil {
		t.Fatal(err)
	}
	v, _ := validate.New()
	svc := NewAuthService(env.repo, jwt.NewManager(authCfg), encoder, v, zap.NewNop())

	_, err = svc.Register(ctx, &dto.RegisterRequest{Username: "luis", Password: long})
	if !errors.Is(err, ErrPasswordTooLong) {
		t.Errorf("bcrypt 模式期望 ErrPasswordTooLong，实际: %v", err)
	}
	if !errors.Is(err, apperrors.ErrValidation) {
		t.Errorf("期望 ValidationError 种类，实际: %v", err)
	}
}

func TestNewPasswordEncoder_Unknown(t *testing.T) {
	if _, err := NewPasswordEncoder(&config.AuthConfig{PasswordEncoding: "md5"}); err == nil {
		t.Error("未知编码方式应返回错误")
	}
}
