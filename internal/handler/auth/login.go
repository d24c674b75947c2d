// File: internal/handler/auth/login.go
package auth

import (
	"net/http"

	"ravyn-demo/internal/api"
	"ravyn-demo/internal/dto"

	"github.com/labstack/echo/v4"
)

// LoginHandler 驗證登入表單格式
// @Summary     登入使用者
// @Description 驗證 Email 與 Password 欄位後回傳固定訊息
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body api.LoginRequest true "登入資料"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Router      /auth/login [post]
func LoginHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if ok, err := bindAndValidate(c, &req); !ok {
			return err
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Login endpoint"})
	}
}
