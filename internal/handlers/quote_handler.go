package handlers

import (
	"poshstore/internal/models"
	"poshstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// QuoteHandler handles HTTP requests for quote requests.
type QuoteHandler struct {
	service  *services.QuoteService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewQuoteHandler creates a new QuoteHandler.
func NewQuoteHandler(service *services.QuoteService, log *logrus.Logger) *QuoteHandler {
	return &QuoteHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the quote routes. Submitting is public; listing
// and deleting are operator-only.
func (h *QuoteHandler) RegisterRoutes(router fiber.Router, authRequired, operatorOnly fiber.Handler) {
	router.Post("/quotes", h.HandleSubmitQuote)
	router.Get("/quotes", authRequired, operatorOnly, h.HandleGetQuotes)
	router.Delete("/quotes/:id", authRequired, operatorOnly, h.HandleDeleteQuote)
}

// HandleSubmitQuote stores a new quote request.
func (h *QuoteHandler) HandleSubmitQuote(c *fiber.Ctx) error {
	var quote models.QuoteRequest
	if err := c.BodyParser(&quote); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(quote); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	if err := h.service.SubmitQuote(&quote); err != nil {
		h.log.WithError(err).Error("failed to store quote request")
		return respondError(c, "Could not submit quote request", err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Quote request submitted",
		"quote":   quote,
	})
}

// HandleGetQuotes lists all quote requests. Operator-only.
func (h *QuoteHandler) HandleGetQuotes(c *fiber.Ctx) error {
	quotes, err := h.service.GetAllQuotes()
	if err != nil {
		return respondError(c, "Could not retrieve quote requests", err)
	}
	return c.JSON(quotes)
}

// HandleDeleteQuote removes a quote request. Operator-only.
func (h *QuoteHandler) HandleDeleteQuote(c *fiber.Ctx) error {
	if err := h.service.DeleteQuote(c.Params("id")); err != nil {
		return respondError(c, "Could not delete quote request", err)
	}
	return c.JSON(fiber.Map{"message": "Quote request removed"})
}
