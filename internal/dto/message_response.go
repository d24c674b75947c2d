// File: internal/dto/message_response.go
package dto

// MessageResponse 通用訊息回應
// swagger:model dto.MessageResponse
type MessageResponse struct {
	Message string `json:"message" example:"Welcome to Ravyn"`
}

// UserCreateResponse /create 成功回應
// swagger:model dto.UserCreateResponse
type UserCreateResponse struct {
	Message string `json:"message" example:"User created successfully. Cookie value: abc"`
}
