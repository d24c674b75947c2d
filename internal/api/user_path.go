package api

// UserPath 綁定 /ravyn/:user 的路徑參數
type UserPath struct {
	User string `param:"user"`
}
