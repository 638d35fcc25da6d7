package service

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/config"
	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
)

// PasswordEncoder 密码存储编码
type PasswordEncoder interface {
	Encode(plain string) (string, error)
	Matches(encoded, plain string) bool
}

// NewPasswordEncoder 按 auth.password_encoding 选择实现
func NewPasswordEncoder(cfg *config.AuthConfig) (PasswordEncoder, error) {
	switch cfg.PasswordEncoding {
	case "", config.PasswordEncodingBase64:
		return base64Encoder{}, nil
	case config.PasswordEncodingBcrypt:
		cost := cfg.BcryptCost
		if cost == 0 {
			cost = bcrypt.DefaultCost
		}
		return bcryptEncoder{cost: cost}, nil
	default:
		return nil, fmt.Errorf("未知的密码编码方式: %s", cfg.PasswordEncoding)
	}
}

// base64Encoder 可逆编码，兼容浏览器版已存储的数据
// 仅用于演示，不具备安全性
type base64Encoder struct{}

func (base64Encoder) Encode(plain string) (string, error) {
	return base64.StdEncoding.EncodeToString([]byte(plain)), nil
}

func (e base64Encoder) Matches(encoded, plain string) bool {
	want, _ := e.Encode(plain)
	return subtle.ConstantTimeCompare([]byte(encoded), []byte(want)) == 1
}

// bcryptMaxPasswordBytes bcrypt 只处理前 72 字节
const bcryptMaxPasswordBytes = 72

// ErrPasswordTooLong bcrypt 模式下密码超长
var ErrPasswordTooLong = apperrors.Validation("密码长度不能超过 72 字节")

type bcryptEncoder struct {
	cost int
}

func (e bcryptEncoder) Encode(plain string) (string, error) {
	if len(plain) > bcryptMaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), e.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (bcryptEncoder) Matches(encoded, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(encoded), []byte(plain)) == nil
}
