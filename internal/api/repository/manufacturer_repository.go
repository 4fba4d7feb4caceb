package repository

import (
	"booster/internal/api/models"

	"gorm.io/gorm"
)

type ManufacturerRepository interface {
	Create(manufacturer *models.Manufacturer) error
	Update(manufacturer *models.Manufacturer) error
	Delete(id int64) error
	FindByID(id int64) (*models.Manufacturer, error)
	FindAll() ([]models.Manufacturer, error)
}

type manufacturerRepository struct {
	db *gorm.DB
}

func NewManufacturerRepository(db *gorm.DB) ManufacturerRepository {
	return &manufacturerRepository{db: db}
}

func (r *manufacturerRepository) Create(manufacturer *models.Manufacturer) error {
	return r.db.Create(manufacturer).Error
}

func (r *manufacturerRepository) Update(manufacturer *models.Manufacturer) error {
	return r.db.Save(manufacturer).Error
}

func (r *manufacturerRepository) Delete(id int64) error {
	result := r.db.Delete(&models.Manufacturer{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *manufacturerRepository) FindByID(id int64) (*models.Manufacturer, error) {
	var manufacturer models.Manufacturer
	if err := r.db.First(&manufacturer, id).Error; err != nil {
		return nil, err
	}
	return &manufacturer, nil
}

func (r *manufacturerRepository) FindAll() ([]models.Manufacturer, error) {
	var manufacturers []models.Manufacturer
	err := r.db.Order("name ASC").Find(&manufacturers).Error
	return manufacturers, err
}
