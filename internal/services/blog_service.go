package services

import (
	"poshstore/internal/models"
	"poshstore/internal/repositories"
)

// BlogService handles business logic related to blog posts.
type BlogService struct {
	repo repositories.BlogRepository
}

// NewBlogService creates a new BlogService.
func NewBlogService(repo repositories.BlogRepository) *BlogService {
	return &BlogService{
		repo: repo,
	}
}

// GetAllPosts retrieves all blog posts.
func (s *BlogService) GetAllPosts() ([]models.BlogPost, error) {
	return s.repo.GetAll()
}

// GetPostByID retrieves a single blog post by its ID.
func (s *BlogService) GetPostByID(id string) (*models.BlogPost, error) {
	return s.repo.GetByID(id)
}

// CreatePost creates a new blog post.
func (s *BlogService) CreatePost(post *models.BlogPost) error {
	return s.repo.Create(post)
}

// UpdatePost updates an existing blog post.
func (s *BlogService) UpdatePost(post *models.BlogPost) error {
	return s.repo.Update(post)
}

// DeletePost deletes a blog post by its ID.
func (s *BlogService) DeletePost(id string) error {
	return s.repo.Delete(id)
}
