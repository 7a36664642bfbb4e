package handlers

import (
	"poshstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// NewsletterHandler handles HTTP requests for newsletter subscriptions.
type NewsletterHandler struct {
	service  *services.NewsletterService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(service *services.NewsletterService, log *logrus.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the newsletter routes. Subscribing is public;
// the subscriber list is operator-only.
func (h *NewsletterHandler) RegisterRoutes(router fiber.Router, authRequired, operatorOnly fiber.Handler) {
	router.Post("/newsletter/subscribe", h.HandleSubscribe)
	router.Post("/newsletter/unsubscribe", h.HandleUnsubscribe)
	router.Get("/newsletter/subscribers", authRequired, operatorOnly, h.HandleGetSubscribers)
}

type subscribeRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleSubscribe registers a new newsletter subscriber.
func (h *NewsletterHandler) HandleSubscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "A valid email address is required",
		})
	}

	subscriber, err := h.service.Subscribe(req.Email)
	if err != nil {
		return respondError(c, "Could not subscribe", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Subscribed to newsletter",
		"subscriber": subscriber,
	})
}

// HandleUnsubscribe removes a subscriber.
func (h *NewsletterHandler) HandleUnsubscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.Unsubscribe(req.Email); err != nil {
		return respondError(c, "Could not unsubscribe", err)
	}
	return c.JSON(fiber.Map{"message": "Unsubscribed from newsletter"})
}

// HandleGetSubscribers lists all subscribers. Operator-only.
func (h *NewsletterHandler) HandleGetSubscribers(c *fiber.Ctx) error {
	subscribers, err := h.service.GetSubscribers()
	if err != nil {
		h.log.WithError(err).Error("failed to fetch subscribers")
		return respondError(c, "Could not retrieve subscribers", err)
	}
	return c.JSON(subscribers)
}
