package service

import (
	"errors"

	"booster/internal/api/dto"
	"booster/internal/api/models"
	"booster/internal/api/repository"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryService interface {
	CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error)
	UpdateCategory(id int64, req *dto.CreateCategoryRequest) (*models.Category, error)
	DeleteCategory(id int64) error
	GetCategoryByID(id int64) (*models.Category, error)
	ListCategories() ([]models.Category, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{categoryRepo: categoryRepo}
}

func (s *categoryService) CreateCategory(req *dto.CreateCategoryRequest) (*models.Category, error) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) UpdateCategory(id int64, req *dto.CreateCategoryRequest) (*models.Category, error) {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *categoryService) DeleteCategory(id int64) error {
	err := s.categoryRepo.Delete(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrCategoryNotFound
	}
	return err
}

func (s *categoryService) GetCategoryByID(id int64) (*models.Category, error) {
	category, err := s.categoryRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	return category, nil
}

func (s *categoryService) ListCategories() ([]models.Category, error) {
	return s.categoryRepo.FindAll()
}
