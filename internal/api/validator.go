package api

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator for Echo
// swagger:ignore
type Validator struct {
	validator *validator.Validate
}

// NewValidator 建立 Validator，錯誤欄位名稱使用 json tag
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return &Validator{validator: v}
}

// Validate calls the underlying validator
func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
