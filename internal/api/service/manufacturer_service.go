package service

import (
	"errors"

	"booster/internal/api/dto"
	"booster/internal/api/models"
	"booster/internal/api/repository"

	"gorm.io/gorm"
)

var ErrManufacturerNotFound = errors.New("manufacturer not found")

type ManufacturerService interface {
	CreateManufacturer(req *dto.CreateManufacturerRequest) (*models.Manufacturer, error)
	UpdateManufacturer(id int64, req *dto.CreateManufacturerRequest) (*models.Manufacturer, error)
	DeleteManufacturer(id int64) error
	GetManufacturerByID(id int64) (*models.Manufacturer, error)
	ListManufacturers() ([]models.Manufacturer, error)
}

type manufacturerService struct {
	manufacturerRepo repository.ManufacturerRepository
}

func NewManufacturerService(manufacturerRepo repository.ManufacturerRepository) ManufacturerService {
	return &manufacturerService{manufacturerRepo: manufacturerRepo}
}

func (s *manufacturerService) CreateManufacturer(req *dto.CreateManufacturerRequest) (*models.Manufacturer, error) {
	manufacturer := &models.Manufacturer{
		Name:    req.Name,
		Country: req.Country,
	}
	if err := s.manufacturerRepo.Create(manufacturer); err != nil {
		return nil, err
	}
	return manufacturer, nil
}

func (s *manufacturerService) UpdateManufacturer(id int64, req *dto.CreateManufacturerRequest) (*models.Manufacturer, error) {
	manufacturer, err := s.GetManufacturerByID(id)
	if err != nil {
		return nil, err
	}

	manufacturer.Name = req.Name
	manufacturer.Country = req.Country

	if err := s.manufacturerRepo.Update(manufacturer); err != nil {
		return nil, err
	}
	return manufacturer, nil
}

func (s *manufacturerService) DeleteManufacturer(id int64) error {
	err := s.manufacturerRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrManufacturerNotFound
	}
	return err
}

func (s *manufacturerService) GetManufacturerByID(id int64) (*models.Manufacturer, error) {
	manufacturer, err := s.manufacturerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrManufacturerNotFound
		}
		return nil, err
	}
	return manufacturer, nil
}

func (s *manufacturerService) ListManufacturers() ([]models.Manufacturer, error) {
	return s.manufacturerRepo.FindAll()
}
