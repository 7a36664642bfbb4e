package handlers

import (
	"poshstore/internal/middleware"
	"poshstore/internal/models"
	"poshstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// BlogHandler handles HTTP requests for blog posts.
type BlogHandler struct {
	service  *services.BlogService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService, log *logrus.Logger) *BlogHandler {
	return &BlogHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the blog routes. Reads are public; mutations
// are operator-only.
func (h *BlogHandler) RegisterRoutes(router fiber.Router, authRequired, operatorOnly fiber.Handler) {
	router.Get("/blog", h.HandleGetPosts)
	router.Get("/blog/:id", h.HandleGetPostByID)

	router.Post("/blog", authRequired, operatorOnly, h.HandleCreatePost)
	router.Put("/blog/:id", authRequired, operatorOnly, h.HandleUpdatePost)
	router.Delete("/blog/:id", authRequired, operatorOnly, h.HandleDeletePost)
}

// HandleGetPosts retrieves all blog posts.
func (h *BlogHandler) HandleGetPosts(c *fiber.Ctx) error {
	posts, err := h.service.GetAllPosts()
	if err != nil {
		h.log.WithError(err).Error("failed to fetch blog posts")
		return respondError(c, "Could not retrieve blog posts", err)
	}
	return c.JSON(posts)
}

// HandleGetPostByID retrieves a single blog post.
func (h *BlogHandler) HandleGetPostByID(c *fiber.Ctx) error {
	post, err := h.service.GetPostByID(c.Params("id"))
	if err != nil {
		return respondError(c, "Blog post not found", err)
	}
	return c.JSON(post)
}

// HandleCreatePost creates a new blog post authored by the caller.
func (h *BlogHandler) HandleCreatePost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	post.AuthorID = middleware.UserID(c)

	if err := h.validate.Struct(post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.CreatePost(&post); err != nil {
		return respondError(c, "Could not create blog post", err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleUpdatePost updates an existing blog post.
func (h *BlogHandler) HandleUpdatePost(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := c.BodyParser(&post); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	post.ID = c.Params("id")

	if err := h.service.UpdatePost(&post); err != nil {
		return respondError(c, "Could not update blog post", err)
	}
	return c.JSON(post)
}

// HandleDeletePost deletes a blog post by its ID.
func (h *BlogHandler) HandleDeletePost(c *fiber.Ctx) error {
	if err := h.service.DeletePost(c.Params("id")); err != nil {
		return respondError(c, "Could not delete blog post", err)
	}
	return c.JSON(fiber.Map{"message": "Blog post removed"})
}
