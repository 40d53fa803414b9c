package models

import "errors"

var (
	ErrInvalidCartItem   = errors.New("invalid cart item")
	ErrCartItemNotFound  = errors.New("cart item not found")
	ErrProductNotFound   = errors.New("product not found")
	ErrDuplicateLineItem = errors.New("product already in cart")
	ErrVersionConflict   = errors.New("cart item was modified concurrently")
	ErrInvalidProduct    = errors.New("invalid product")

	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidUser        = errors.New("invalid user")
)
