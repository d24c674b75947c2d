package api

// swagger:model api.LoginRequest
// Password 為指標：欄位必須出現且不可為 null，但允許空字串
type LoginRequest struct {
	Email    string  `json:"email" validate:"required,email" example:"alice@example.com"`
	Password *string `json:"password" validate:"required" example:"Secret123!"`
}
