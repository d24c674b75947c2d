package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ContextAPIKey 為安全 cookie 值存放於 echo.Context 的鍵
const ContextAPIKey = "api_key"

// ErrNotAuthenticated 缺少安全 cookie 時回傳
var ErrNotAuthenticated = echo.NewHTTPError(http.StatusForbidden, "Not authenticated")

func extractCookie(c echo.Context, name string) (string, error) {
	cookie, err := c.Cookie(name)
	if err != nil || cookie.Value == "" {
		return "", ErrNotAuthenticated
	}
	return cookie.Value, nil
}

// APIKeyCookie 要求請求帶有名為 name 的 cookie，並將其值存入 context
func APIKeyCookie(name string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			value, err := extractCookie(c, name)
			if err != nil {
				return err
			}
			c.Set(ContextAPIKey, value)
			return next(c)
		}
	}
}

// APIKey 取得 APIKeyCookie 存入的值
func APIKey(c echo.Context) (string, bool) {
	v, ok := c.Get(ContextAPIKey).(string)
	return v, ok
}
