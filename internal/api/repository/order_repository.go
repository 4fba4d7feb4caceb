package repository

import (
	"booster/internal/api/models"

	"gorm.io/gorm"
)

type OrderRepository interface {
	// Create persists the order together with its items.
	Create(order *models.Order) error
	Update(order *models.Order) error
	FindByID(id int64) (*models.Order, error)
	FindByIDAndUser(id int64, userID string) (*models.Order, error)
	FindByUser(userID string) ([]models.Order, error)
	FindAll() ([]models.Order, error)
	FindRecent(limit int) ([]models.Order, error)
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(order *models.Order) error {
	return r.db.Create(order).Error
}

func (r *orderRepository) Update(order *models.Order) error {
	return r.db.Save(order).Error
}

func (r *orderRepository) FindByID(id int64) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("id = ?", id).
		Preload("Items").
		Preload("Items.Product").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByIDAndUser(id int64, userID string) (*models.Order, error) {
	var order models.Order
	err := r.db.Where("id = ? AND user_id = ?", id, userID).
		Preload("Items").
		Preload("Items.Product").
		First(&order).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) FindByUser(userID string) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.Where("user_id = ?", userID).
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) FindAll() ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("User").
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *orderRepository) FindRecent(limit int) ([]models.Order, error) {
	var orders []models.Order
	err := r.db.
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&orders).Error
	return orders, err
}
