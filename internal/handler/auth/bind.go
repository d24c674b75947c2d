package auth

import (
	"fmt"
	"net/http"

	"ravyn-demo/internal/dto"

	"github.com/labstack/echo/v4"
)

// bindAndValidate 先 Bind 再以 go-playground/validator 驗證
// ok 為 false 時已寫出 400 回應，呼叫端應直接回傳 err
func bindAndValidate(c echo.Context, req any) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的請求內容: %v", err)})
	}
	if err := c.Validate(req); err != nil {
		return false, c.JSON(http.StatusBadRequest, dto.NewValidationError(err))
	}
	return true, nil
}
