package api

// swagger:model api.RegisterRequest
// 非 email 欄位為指標：必須出現且不可為 null，但允許空字串
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email" example:"alice@example.com"`
	Password  *string `json:"password" validate:"required" example:"Secret123!"`
	FirstName *string `json:"first_name" validate:"required" example:"Alice"`
	LastName  *string `json:"last_name" validate:"required" example:"Liddell"`
}
