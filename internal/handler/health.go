// File: internal/handler/health.go
package handler

import (
	"net/http"

	"ravyn-demo/internal/cache"
	"ravyn-demo/internal/dto"

	"github.com/labstack/echo/v4"
)

// HealthHandler 健康檢查；有設定 Redis 時一併檢查連線
// @Summary     Health Check
// @Description 回傳 ok，若啟用 Redis 則確認其可連線
// @Tags        health
// @Produce     json
// @Success     200 {object} dto.MessageResponse
// @Failure     503 {object} dto.HTTPError
// @Router      /healthz [get]
func HealthHandler(rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		if rdb != nil {
			if err := rdb.Ping(c.Request().Context()).Err(); err != nil {
				return c.JSON(http.StatusServiceUnavailable, dto.HTTPError{Message: "cache unhealthy"})
			}
		}
		return c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
	}
}
