package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/response"
)

// handleServiceError 按错误种类映射 HTTP 状态码，消息直接取自业务错误
// 非业务错误统一返回 500，并记录到 gin 上下文供日志中间件输出
func handleServiceError(c *gin.Context, err error) {
	msg := apperrors.Message(err)

	switch apperrors.KindOf(err) {
	case apperrors.ErrValidation:
		response.BadRequest(c, response.CodeInvalidParams, msg)
	case apperrors.ErrAuth:
		response.Unauthorized(c, response.CodeUnauthorized, msg)
	case apperrors.ErrNotFound:
		response.NotFound(c, response.CodeNotFound, msg)
	case apperrors.ErrConflict:
		response.Conflict(c, response.CodeConflict, msg)
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// bindJSON 解析请求体；失败时写入 400/413 并返回 false
func bindJSON(c *gin.Context, v any) bool {
	if err := c.ShouldBindJSON(v); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			response.Error(c, http.StatusRequestEntityTooLarge, response.CodeBodyTooLarge, "请求体过大")
			return false
		}
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeInvalidParams, "请求体格式错误", err.Error())
		return false
	}
	return true
}
