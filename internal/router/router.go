// File: internal/router/router.go
package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"ravyn-demo/internal/cache"
	"ravyn-demo/internal/config"
	"ravyn-demo/internal/handler"
	"ravyn-demo/internal/handler/auth"
	"ravyn-demo/internal/middleware"
)

// Gateway 將一個 method + path 綁定到 handler
type Gateway struct {
	Method     string
	Path       string
	Name       string
	Handler    echo.HandlerFunc
	Middleware []echo.MiddlewareFunc
}

// Routes 回傳應用程式的所有路由綁定
func Routes(cfg *config.Config) []Gateway {
	return []Gateway{
		{Method: http.MethodGet, Path: "/ravyn", Name: "welcome", Handler: handler.WelcomeHandler()},
		{Method: http.MethodGet, Path: "/ravyn/:user", Name: "user", Handler: handler.UserHandler()},
		{Method: http.MethodGet, Path: "/ravyn/in-request/:user", Name: "user_in_request", Handler: handler.UserInRequestHandler()},
		{Method: http.MethodPost, Path: "/auth/register", Name: "register", Handler: auth.RegisterHandler()},
		{Method: http.MethodPost, Path: "/auth/login", Name: "login", Handler: auth.LoginHandler()},
		{
			Method:     http.MethodPost,
			Path:       "/create",
			Name:       "logout",
			Handler:    handler.CreateHandler(cfg),
			Middleware: []echo.MiddlewareFunc{middleware.APIKeyCookie(cfg.APIKeyCookie)},
		},
	}
}

// Setup 註冊所有路由；rdb 可為 nil
func Setup(e *echo.Echo, cfg *config.Config, rdb cache.Cache) {
	for _, g := range Routes(cfg) {
		r := e.Add(g.Method, g.Path, g.Handler, g.Middleware...)
		r.Name = g.Name
	}

	// 健康檢查
	e.GET("/healthz", handler.HealthHandler(rdb))

	if cfg.SwaggerEnabled {
		e.GET("/swagger/*", echoSwagger.WrapHandler)
	}
}
