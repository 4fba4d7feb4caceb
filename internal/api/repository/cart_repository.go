package repository

import (
	"booster/internal/api/models"

	"gorm.io/gorm"
)

type CartRepository interface {
	Create(cart *models.Cart) error
	// FindByUser loads the cart with its items and their products.
	FindByUser(userID string) (*models.Cart, error)
	CreateItem(item *models.CartItem) error
	UpdateItem(item *models.CartItem) error
	DeleteItem(itemID int64) error
	DeleteItemsByCart(cartID int64) error
}

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Create(cart *models.Cart) error {
	return r.db.Create(cart).Error
}

func (r *cartRepository) FindByUser(userID string) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.Where("user_id = ?", userID).
		Preload("Items").
		Preload("Items.Product").
		First(&cart).Error
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *cartRepository) CreateItem(item *models.CartItem) error {
	return r.db.Create(item).Error
}

func (r *cartRepository) UpdateItem(item *models.CartItem) error {
	return r.db.Save(item).Error
}

func (r *cartRepository) DeleteItem(itemID int64) error {
	return r.db.Delete(&models.CartItem{}, itemID).Error
}

func (r *cartRepository) DeleteItemsByCart(cartID int64) error {
	return r.db.Where("cart_id = ?", cartID).Delete(&models.CartItem{}).Error
}
