package errors

import "errors"

// 错误种类：所有业务错误都归属以下四类之一，调用方通过 errors.Is 判断
var (
	ErrValidation = errors.New("参数校验失败")
	ErrConflict   = errors.New("数据冲突")
	ErrNotFound   = errors.New("记录不存在")
	ErrAuth       = errors.New("认证失败")
)

// Error 带种类的业务错误，Message 直接面向用户展示
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

// Unwrap 使 errors.Is(err, ErrConflict) 等判断成立
func (e *Error) Unwrap() error { return e.Kind }

// Validation 构造校验错误
func Validation(msg string) *Error { return &Error{Kind: ErrValidation, Message: msg} }

// Conflict 构造冲突错误
func Conflict(msg string) *Error { return &Error{Kind: ErrConflict, Message: msg} }

// NotFound 构造不存在错误
func NotFound(msg string) *Error { return &Error{Kind: ErrNotFound, Message: msg} }

// Auth 构造认证错误
func Auth(msg string) *Error { return &Error{Kind: ErrAuth, Message: msg} }

// KindOf 返回错误种类；非业务错误返回 nil
func KindOf(err error) error {
	for _, kind := range []error{ErrValidation, ErrConflict, ErrNotFound, ErrAuth} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}

// Message 返回面向用户的消息；非业务错误返回空串
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
