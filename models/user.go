package models

import "time"

// Identity is the principal owned by the identity subsystem.
type Identity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UserAccount is the storefront profile of an identity. It refers to the
// identity by id instead of embedding it.
type UserAccount struct {
	UserID    string    `json:"user_id"`
	Name      *string   `json:"name"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserAccountView struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Name      *string   `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)
