package handlers

import (
	"poshstore/internal/middleware"
	"poshstore/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// WishlistHandler handles HTTP requests for the wishlist.
type WishlistHandler struct {
	service *services.WishlistService
	log     *logrus.Logger
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(service *services.WishlistService, log *logrus.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		log:     log,
	}
}

// RegisterRoutes registers the wishlist routes; all require authentication.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	wishlistRoutes := router.Group("/wishlist", authRequired)
	wishlistRoutes.Get("/", h.HandleGetWishlist)
	wishlistRoutes.Post("/:productId", h.HandleAddProduct)
	wishlistRoutes.Delete("/:productId", h.HandleRemoveProduct)
}

// HandleGetWishlist returns the caller's wishlist.
func (h *WishlistHandler) HandleGetWishlist(c *fiber.Ctx) error {
	items, err := h.service.GetWishlist(middleware.UserID(c))
	if err != nil {
		h.log.WithError(err).Error("failed to fetch wishlist")
		return respondError(c, "Could not retrieve wishlist", err)
	}
	return c.JSON(items)
}

// HandleAddProduct saves a product to the caller's wishlist.
func (h *WishlistHandler) HandleAddProduct(c *fiber.Ctx) error {
	if err := h.service.AddProduct(middleware.UserID(c), c.Params("productId")); err != nil {
		return respondError(c, "Could not add product to wishlist", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Product added to wishlist"})
}

// HandleRemoveProduct removes a product from the caller's wishlist.
func (h *WishlistHandler) HandleRemoveProduct(c *fiber.Ctx) error {
	if err := h.service.RemoveProduct(middleware.UserID(c), c.Params("productId")); err != nil {
		return respondError(c, "Could not remove product from wishlist", err)
	}
	return c.JSON(fiber.Map{"message": "Product removed from wishlist"})
}
