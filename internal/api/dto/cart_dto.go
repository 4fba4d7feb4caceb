package dto

import "booster/internal/api/models"

// AddToCartRequest adds a product to the current user's cart
type AddToCartRequest struct {
	ProductID int64 `json:"product_id" binding:"required"`
	Quantity  int   `json:"quantity" binding:"required,gt=0"`
}

// UpdateCartItemRequest changes an item's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,gt=0"`
}

// CartResponse returns the cart with computed totals
type CartResponse struct {
	Cart       *models.Cart `json:"cart"`
	TotalItems int          `json:"total_items"`
	TotalPrice float64      `json:"total_price"`
}

// NewCartResponse computes the cart totals
func NewCartResponse(cart *models.Cart) *CartResponse {
	totalItems := 0
	totalPrice := 0.0
	for _, item := range cart.Items {
		totalItems += item.Quantity
		totalPrice += item.UnitPrice * float64(item.Quantity)
	}
	return &CartResponse{
		Cart:       cart,
		TotalItems: totalItems,
		TotalPrice: totalPrice,
	}
}
