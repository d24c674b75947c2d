// File: cmd/service/main.go
// @title        Ravyn Demo API
// @version      1.0
// @description  路由註冊、請求/回應處理與 cookie 安全機制的範例服務
// @host         localhost:8000
// @BasePath     /
// @securityDefinitions.apikey CookieAuth
// @in header
// @name Cookie
// @description 需帶 X_COOKIE_API cookie，例如 "X_COOKIE_API=<value>"
package main

import (
	"log"
	"os"

	_ "ravyn-demo/docs" // 引入 swag 產出的 docs
)

var exitFunc = os.Exit

func main() {
	if err := run(); err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
