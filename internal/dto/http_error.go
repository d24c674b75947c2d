// File: internal/dto/http_error.go
package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// HTTPError 全域錯誤響應模型
// swagger:model dto.HTTPError
type HTTPError struct {
	// message 錯誤描述
	Message string `json:"message" example:"validation failed"`
	// errors 欄位層級的驗證錯誤
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError 單一欄位驗證失敗資訊
// swagger:model dto.FieldError
type FieldError struct {
	Field string `json:"field" example:"email"`
	Rule  string `json:"rule" example:"email"`
}

// NewValidationError 將 validator 錯誤轉為 HTTPError
func NewValidationError(err error) HTTPError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return HTTPError{Message: err.Error()}
	}
	out := HTTPError{Message: "validation failed", Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Errors = append(out.Errors, FieldError{Field: fe.Field(), Rule: fe.Tag()})
	}
	return out
}
