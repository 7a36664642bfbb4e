package services

import (
	"poshstore/internal/models"
	"poshstore/internal/repositories"

	"github.com/gosimple/slug"
)

// CategoryService handles business logic related to categories.
type CategoryService struct {
	repo repositories.CategoryRepository
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

// GetAllCategories retrieves all categories.
func (s *CategoryService) GetAllCategories() ([]models.Category, error) {
	return s.repo.GetAll()
}

// GetCategoryByID retrieves a single category by its ID.
func (s *CategoryService) GetCategoryByID(id string) (*models.Category, error) {
	return s.repo.GetByID(id)
}

// CreateCategory creates a new category with a derived slug.
func (s *CategoryService) CreateCategory(category *models.Category) error {
	category.Slug = slug.Make(category.Name)
	return s.repo.Create(category)
}

// UpdateCategory updates an existing category, re-deriving the slug.
func (s *CategoryService) UpdateCategory(category *models.Category) error {
	category.Slug = slug.Make(category.Name)
	return s.repo.Update(category)
}

// DeleteCategory deletes a category by its ID.
func (s *CategoryService) DeleteCategory(id string) error {
	return s.repo.Delete(id)
}
