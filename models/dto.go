package models

type RegisterRequest struct {
	Email    string  `json:"email" binding:"required,email"`
	Password string  `json:"password" binding:"required,min=8"`
	Name     *string `json:"name" binding:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateAccountRequest struct {
	Name *string `json:"name" binding:"omitempty,max=100"`
}

type AddCartItemRequest struct {
	ProductID int64 `json:"product_id" binding:"required,gt=0"`
	Count     int   `json:"count" binding:"omitempty,gte=0,lte=2147483647"`
}

type UpdateCartItemRequest struct {
	Count   int `json:"count" binding:"required,gte=1,lte=2147483647"`
	Version int `json:"version" binding:"omitempty,gte=0"`
}

type CreateProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Account UserAccountView `json:"account"`
}

type ClearCartResponse struct {
	CartID  string `json:"cart_id"`
	Removed int64  `json:"removed"`
}

type CartCountResponse struct {
	CartID string `json:"cart_id"`
	Count  int    `json:"count"`
}
