package services

import (
	"poshstore/internal/models"
	"poshstore/internal/repositories"

	"github.com/gosimple/slug"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo repositories.ProductRepository
}

// NewProductService creates a new ProductService.
func NewProductService(repo repositories.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// GetAllProducts retrieves all products.
func (s *ProductService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAll()
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id string) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct creates a new product, deriving slug, sale price and
// thumbnail.
func (s *ProductService) CreateProduct(product *models.Product) error {
	applyDerivedFields(product)
	return s.repo.Create(product)
}

// UpdateProduct updates an existing product, re-deriving dependent fields.
func (s *ProductService) UpdateProduct(product *models.Product) error {
	applyDerivedFields(product)
	return s.repo.Update(product)
}

// DeleteProduct deletes a product by its ID.
func (s *ProductService) DeleteProduct(id string) error {
	return s.repo.Delete(id)
}

func applyDerivedFields(product *models.Product) {
	if product.Name != "" {
		product.Slug = slug.Make(product.Name)
	}
	if product.DiscountPercentage > 0 {
		product.SalePrice = product.Price * (1 - product.DiscountPercentage/100)
		product.OnSale = true
	} else {
		product.SalePrice = product.Price
		product.OnSale = false
	}
	if product.Thumbnail == "" && len(product.Images) > 0 {
		product.Thumbnail = product.Images[0].URL
	}
	if product.Status == "" {
		product.Status = models.ProductStatusDraft
	}
}
