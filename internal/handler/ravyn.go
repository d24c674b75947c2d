// File: internal/handler/ravyn.go
package handler

import (
	"fmt"
	"net/http"

	"ravyn-demo/internal/api"
	"ravyn-demo/internal/dto"

	"github.com/labstack/echo/v4"
)

const welcomeMessage = "Welcome to Ravyn"

func greet(user string) dto.MessageResponse {
	return dto.MessageResponse{Message: fmt.Sprintf("%s, %s", welcomeMessage, user)}
}

// WelcomeHandler 歡迎訊息
// @Summary     Welcome
// @Description 回傳固定的歡迎訊息
// @Tags        ravyn
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Router      /ravyn [get]
func WelcomeHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: welcomeMessage})
	}
}

// UserHandler 以路徑參數綁定使用者名稱後回傳歡迎訊息
// @Summary     Welcome user
// @Description 路徑參數經由 binder 綁定至結構後組成訊息
// @Tags        ravyn
// @Produce     json
// @Param       user path string true "使用者名稱"
// @Success     200 {object} dto.MessageResponse
// @Failure     400 {object} dto.HTTPError
// @Router      /ravyn/{user} [get]
func UserHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		var p api.UserPath
		if err := (&echo.DefaultBinder{}).BindPathParams(c, &p); err != nil {
			return c.JSON(http.StatusBadRequest, dto.HTTPError{Message: fmt.Sprintf("無效的路徑參數: %v", err)})
		}
		return c.JSON(http.StatusOK, greet(p.User))
	}
}

// UserInRequestHandler 直接從請求讀取路徑參數
// @Summary     Welcome user (raw request)
// @Description 由 request context 直接取出路徑參數組成訊息
// @Tags        ravyn
// @Produce     json
// @Param       user path string true "使用者名稱"
// @Success     200 {object} dto.MessageResponse
// @Router      /ravyn/in-request/{user} [get]
func UserInRequestHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, greet(c.Param("user")))
	}
}
