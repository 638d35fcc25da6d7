package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/model"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/repository"
	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/jwt"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/validate"
)

var (
	ErrUsernameTaken      = apperrors.Conflict("用户名已存在")
	ErrInvalidCredentials = apperrors.Auth("用户名或密码错误")
	ErrNotLoggedIn        = apperrors.Auth("当前未登录")
	ErrSessionExpired     = apperrors.Auth("登录已失效，请重新登录")
)

// AuthService 认证业务接口
//
// 会话状态：未登录 ⇄ 已登录。登录成功写入 currentUser 槽位；登录失败不改变会话；
// 退出登录无条件清除会话。同一时刻只存在一个会话。
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Logout 幂等
	Logout(ctx context.Context) error
	// Current 未登录时返回 ErrNotLoggedIn
	Current(ctx context.Context) (*dto.SessionResponse, error)
	// Authenticate 校验 Token 且与当前会话一致
	Authenticate(ctx context.Context, token string) (*dto.SessionResponse, error)
}

type authService struct {
	repo      *repository.Repository
	jwtMgr    *jwt.Manager
	encoder   PasswordEncoder
	validator *validate.Validator
	logger    *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	encoder PasswordEncoder,
	v *validate.Validator,
	logger *zap.Logger,
) AuthService {
	return &authService{
		repo:      repo,
		jwtMgr:    jwtMgr,
		encoder:   encoder,
		validator: v,
		logger:    logger,
	}
}

// ────────────────────── Register ──────────────────────

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.RegisterResponse, error) {
	fields := *req
	fields.Username = strings.TrimSpace(fields.Username)
	if err := s.validator.Struct(&fields); err != nil {
		return nil, err
	}

	encoded, err := s.encoder.Encode(fields.Password)
	if errors.Is(err, ErrPasswordTooLong) {
		return nil, err
	}
	if err != nil {
		s.logger.Error("密码编码失败", zap.Error(err))
		return nil, err
	}

	user := &model.User{Username: fields.Username, Password: encoded}
	if err := s.repo.User.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameTaken
		}
		s.logger.Error("创建用户失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户已注册", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return &dto.RegisterResponse{ID: user.ID, Username: user.Username}, nil
}

// ────────────────────── Login ──────────────────────

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	// 1. 查询用户（区分大小写）
	user, err := s.repo.User.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("查询用户失败", zap.Error(err))
		return nil, err
	}

	// 2. 验证密码
	if !s.encoder.Matches(user.Password, req.Password) {
		return nil, ErrInvalidCredentials
	}

	// 3. 签发 Token
	token, tokenID, err := s.jwtMgr.GenerateSessionToken(user.ID, user.Username)
	if err != nil {
		s.logger.Error("生成会话 Token 失败", zap.Error(err))
		return nil, err
	}

	// 4. 写入当前会话，覆盖之前的登录
	sess := &model.Session{ID: user.ID, Username: user.Username, TokenID: tokenID}
	if err := s.repo.Session.Set(ctx, sess); err != nil {
		s.logger.Error("保存会话失败", zap.Error(err))
		return nil, err
	}

	s.logger.Info("用户已登录", zap.String("user_id", user.ID))
	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int(s.jwtMgr.TTL().Seconds()),
		User:      dto.SessionResponse{ID: user.ID, Username: user.Username},
	}, nil
}

// ────────────────────── Logout ──────────────────────

func (s *authService) Logout(ctx context.Context) error {
	if err := s.repo.Session.Clear(ctx); err != nil {
		s.logger.Error("清除会话失败", zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── Current ──────────────────────

func (s *authService) Current(ctx context.Context) (*dto.SessionResponse, error) {
	sess, err := s.repo.Session.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrNotLoggedIn
		}
		s.logger.Error("查询会话失败", zap.Error(err))
		return nil, err
	}
	return &dto.SessionResponse{ID: sess.ID, Username: sess.Username}, nil
}

// ────────────────────── Authenticate ──────────────────────

func (s *authService) Authenticate(ctx context.Context, token string) (*dto.SessionResponse, error) {
	claims, err := s.jwtMgr.ParseToken(token)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrSessionExpired
		}
		return nil, ErrNotLoggedIn
	}

	sess, err := s.repo.Session.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrSessionExpired
		}
		s.logger.Error("查询会话失败", zap.Error(err))
		return nil, err
	}

	// 退出登录或重新登录后，旧 Token 失效
	if sess.ID != claims.UserID || sess.TokenID != claims.ID {
		return nil, ErrSessionExpired
	}
	return &dto.SessionResponse{ID: sess.ID, Username: sess.Username}, nil
}
