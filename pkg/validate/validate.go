package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/zh"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	zh_translations "github.com/go-playground/validator/v10/translations/zh"

	"github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/clock"
	apperrors "github.com/MiguelMauricioRiveralopez18686/shiftassignment/pkg/errors"
)

var (
	digitsRegex = regexp.MustCompile(`^\d+$`)
	phoneRegex  = regexp.MustCompile(`^\+?\d+$`)
)

// Validator 结构体校验 + 中文错误信息
type Validator struct {
	validate   *validator.Validate
	translator ut.Translator
}

// New 创建 Validator，注册自定义标签 digits / phone / isodate / clock
func New() (*Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// 错误信息中使用 JSON 字段名
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	zhLocale := zh.New()
	uni := ut.New(zhLocale, zhLocale)
	trans, _ := uni.GetTranslator("zh")
	if err := zh_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("注册默认翻译失败: %w", err)
	}

	custom := []struct {
		tag  string
		fn   validator.Func
		text string
	}{
		{"digits", matchString(digitsRegex), "{0}只能包含数字"},
		{"phone", matchString(phoneRegex), "{0}只能包含数字，可选前导+"},
		{"isodate", func(fl validator.FieldLevel) bool { return clock.IsDate(fl.Field().String()) }, "{0}必须是YYYY-MM-DD格式的日期"},
		{"clock", func(fl validator.FieldLevel) bool {
			_, err := clock.ParseTimeOfDay(fl.Field().String())
			return err == nil
		}, "{0}必须是HH:MM格式的时间"},
	}
	for _, c := range custom {
		if err := validate.RegisterValidation(c.tag, c.fn); err != nil {
			return nil, fmt.Errorf("注册校验标签 %s 失败: %w", c.tag, err)
		}
		if err := registerTranslation(validate, trans, c.tag, c.text); err != nil {
			return nil, fmt.Errorf("注册翻译 %s 失败: %w", c.tag, err)
		}
	}

	return &Validator{validate: validate, translator: trans}, nil
}

// Struct 校验结构体；失败时返回 ValidationError，消息取第一条翻译
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.Validation(verrs[0].Translate(v.translator))
	}
	return err
}

func matchString(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

func registerTranslation(validate *validator.Validate, trans ut.Translator, tag, text string) error {
	return validate.RegisterTranslation(tag, trans,
		func(ut ut.Translator) error {
			return ut.Add(tag, text, true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T(tag, fe.Field())
			return t
		},
	)
}
