package models

import "time"

type Product struct {
	ID             int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Name           string    `gorm:"not null;index" json:"name"`
	Description    string    `gorm:"type:text" json:"description"`
	UnitPrice      float64   `gorm:"not null" json:"unit_price"`
	Stock          int       `gorm:"default:0" json:"stock"`
	ImageURL       string    `json:"image_url"`
	Active         bool      `gorm:"default:true" json:"active"`
	CategoryID     *int64    `gorm:"index" json:"category_id"`
	ManufacturerID *int64    `gorm:"index" json:"manufacturer_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Associations
	Category     *Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Manufacturer *Manufacturer `gorm:"foreignKey:ManufacturerID" json:"manufacturer,omitempty"`
}

func (Product) TableName() string {
	return "products"
}
