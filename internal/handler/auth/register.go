// File: internal/handler/auth/register.go
package auth

import (
	"net/http"

	"ravyn-demo/internal/api"
	"ravyn-demo/internal/dto"

	"github.com/labstack/echo/v4"
)

// RegisterHandler 驗證註冊資料格式
// @Summary     註冊使用者
// @Description 驗證 Email、Password 與姓名欄位後回傳固定訊息
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.RegisterRequest true "註冊資料"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Router      /auth/register [post]
func RegisterHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.RegisterRequest
		if ok, err := bindAndValidate(c, &req); !ok {
			return err
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Register endpoint"})
	}
}
