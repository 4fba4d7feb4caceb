package dto

// OrderItemRequest is one line of a new order
type OrderItemRequest struct {
	ProductID int64   `json:"product_id" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,gt=0"`
	UnitPrice float64 `json:"unit_price" binding:"required,gt=0"`
}

// CreateOrderRequest places an order from the submitted items
type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateOrderStatusRequest for admin status changes
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDENTE CONFIRMADO ENVIADO ENTREGUE CANCELADO"`
}
