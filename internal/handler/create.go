// File: internal/handler/create.go
package handler

import (
	"fmt"
	"net/http"

	"ravyn-demo/internal/config"
	"ravyn-demo/internal/dto"
	"ravyn-demo/internal/middleware"

	"github.com/labstack/echo/v4"
)

// CSRFCookie 依設定產生回應用的 csrf cookie
func CSRFCookie(cfg *config.Config) *http.Cookie {
	return &http.Cookie{
		Name:     cfg.CSRFCookieName,
		Value:    cfg.CSRFCookieValue,
		Path:     "/",
		MaxAge:   cfg.CSRFCookieMaxAge,
		HttpOnly: true,
	}
}

// CreateHandler 需帶安全 cookie，回傳 201 並設定 csrf cookie
// @Summary     Create user
// @Description Run validations with the cookie api key
// @Tags        users
// @Produce     json
// @Success     201 {object} dto.UserCreateResponse "User created successfully."
// @Failure     403 {object} dto.HTTPError
// @Header      201 {string} Set-Cookie "csrf=...; Max-Age=3000; HttpOnly"
// @Security    CookieAuth
// @Router      /create [post]
func CreateHandler(cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		value, ok := middleware.APIKey(c)
		if !ok {
			return middleware.ErrNotAuthenticated
		}
		c.SetCookie(CSRFCookie(cfg))
		return c.JSON(http.StatusCreated, dto.UserCreateResponse{
			Message: fmt.Sprintf("User created successfully. Cookie value: %s", value),
		})
	}
}
