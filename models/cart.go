package models

import (
	"math"
	"time"
)

// CartItem is one line of a cart: Count units of ProductID in CartID.
// Only Count and Version change after creation.
type CartItem struct {
	CartItemID  int64     `json:"cart_item_id"`
	CartID      string    `json:"cart_id" validate:"required,notblank,max=128,cartid"`
	ProductID   int64     `json:"product_id" validate:"required,gt=0"`
	Count       int       `json:"count" validate:"gte=1,lte=2147483647"`
	DateCreated time.Time `json:"date_created"`
	Version     int       `json:"version"`
	Product     *Product  `json:"product,omitempty"`
}

// Cart is the set of line items sharing a cart id.
type Cart struct {
	CartID     string     `json:"cart_id"`
	Items      []CartItem `json:"items"`
	TotalCount int        `json:"total_count"`
}

const (
	MinItemCount  = 1
	MaxItemCount  = math.MaxInt32 // INTEGER count column
	MaxCartIDSize = 128
)
