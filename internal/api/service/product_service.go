package service

import (
	"errors"

	"booster/internal/api/dto"
	"booster/internal/api/models"
	"booster/internal/api/repository"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService interface {
	CreateProduct(req *dto.CreateProductRequest) (*models.Product, error)
	UpdateProduct(id int64, req *dto.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(id int64) error
	GetProductByID(id int64) (*models.Product, error)
	ListProducts() ([]models.Product, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) CreateProduct(req *dto.CreateProductRequest) (*models.Product, error) {
	product := &models.Product{
		Name:           req.Name,
		Description:    req.Description,
		UnitPrice:      req.UnitPrice,
		Stock:          req.Stock,
		ImageURL:       req.ImageURL,
		Active:         true,
		CategoryID:     req.CategoryID,
		ManufacturerID: req.ManufacturerID,
	}

	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	// Reload with associations
	return s.GetProductByID(product.ID)
}

func (s *productService) UpdateProduct(id int64, req *dto.UpdateProductRequest) (*models.Product, error) {
	product, err := s.GetProductByID(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.Stock != nil {
		product.Stock = *req.Stock
	}
	if req.ImageURL != nil {
		product.ImageURL = *req.ImageURL
	}
	if req.Active != nil {
		product.Active = *req.Active
	}
	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}
	if req.ManufacturerID != nil {
		product.ManufacturerID = req.ManufacturerID
	}

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	return s.GetProductByID(id)
}

func (s *productService) DeleteProduct(id int64) error {
	err := s.productRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProductNotFound
	}
	return err
}

func (s *productService) GetProductByID(id int64) (*models.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) ListProducts() ([]models.Product, error) {
	return s.productRepo.FindAll()
}
