package dto

// ── 认证模块 DTO ──

// RegisterRequest 注册请求
type RegisterRequest struct {
	Username        string `json:"username"        validate:"required,min=3,max=50"`
	Password        string `json:"password"        validate:"required,min=6"`
	ConfirmPassword string `json:"confirmPassword" validate:"omitempty,eqfield=Password"` // 提供时必须与 password 一致
}

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse 注册成功响应
type RegisterResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// LoginResponse 登录成功响应
type LoginResponse struct {
	Token     string          `json:"token"`
	ExpiresIn int             `json:"expires_in"` // 秒
	User      SessionResponse `json:"user"`
}

// SessionResponse 当前会话
type SessionResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
