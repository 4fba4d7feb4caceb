package models

import "time"

// Order status values are stored in Portuguese for wire compatibility with the
// storefront (PENDENTE -> CONFIRMADO -> ENVIADO -> ENTREGUE, CANCELADO terminal).
const (
	OrderStatusPending   = "PENDENTE"
	OrderStatusConfirmed = "CONFIRMADO"
	OrderStatusShipped   = "ENVIADO"
	OrderStatusDelivered = "ENTREGUE"
	OrderStatusCancelled = "CANCELADO"
)

// ValidOrderStatuses lists every status accepted by the admin update endpoint.
var ValidOrderStatuses = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

type Order struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;index" json:"user_id"`
	Total     float64   `gorm:"not null" json:"total"`
	Status    string    `gorm:"type:varchar(16);default:'PENDENTE';not null" json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Associations
	User  *User       `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE;" json:"items"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64   `gorm:"not null;index" json:"order_id"`
	ProductID int64   `gorm:"not null;index" json:"product_id"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	UnitPrice float64 `gorm:"not null" json:"unit_price"`

	// Associations
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
