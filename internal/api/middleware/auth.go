package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/internal/dto"
	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/response"
)

// 上下文键
const (
	CtxUserID   = "user_id"
	CtxUsername = "username"
)

// Authenticator 校验会话 Token（由 AuthService 实现）
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*dto.SessionResponse, error)
}

// SessionAuth 会话认证中间件
// 从 Authorization: Bearer <token> 中提取 Token，且必须与当前会话一致
func SessionAuth(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, response.CodeUnauthorized, "缺少认证头")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, response.CodeUnauthorized, "认证头格式无效")
			c.Abort()
			return
		}

		sess, err := auth.Authenticate(c.Request.Context(), parts[1])
		if err != nil {
			if msg := apperrors.Message(err); msg != "" {
				response.Unauthorized(c, response.CodeUnauthorized, msg)
			} else {
				response.InternalError(c)
			}
			c.Abort()
			return
		}

		c.Set(CtxUserID, sess.ID)
		c.Set(CtxUsername, sess.Username)

		c.Next()
	}
}
