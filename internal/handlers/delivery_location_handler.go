package handlers

import (
	"fmt"

	"poshstore/internal/models"
	"poshstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// DeliveryLocationHandler handles HTTP requests for delivery locations.
type DeliveryLocationHandler struct {
	service  *services.DeliveryLocationService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewDeliveryLocationHandler creates a new DeliveryLocationHandler.
func NewDeliveryLocationHandler(service *services.DeliveryLocationService, log *logrus.Logger) *DeliveryLocationHandler {
	return &DeliveryLocationHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// DeliveryLocationRequest is the request body for creating or updating a
// delivery location. Pointer fields distinguish "absent" from zero so an
// update can leave untouched fields alone and a create can default IsActive
// to true.
type DeliveryLocationRequest struct {
	Name           string   `json:"name" validate:"required,min=2,max=100"`
	Description    *string  `json:"description" validate:"omitempty,max=500"`
	ShippingAmount *float64 `json:"shippingAmount" validate:"required,gte=0"`
	IsActive       *bool    `json:"isActive"`
	SortOrder      *int     `json:"sortOrder"`
}

// RegisterRoutes registers the delivery location routes. Reads are public;
// mutations are operator-only.
func (h *DeliveryLocationHandler) RegisterRoutes(router fiber.Router, authRequired, operatorOnly fiber.Handler) {
	router.Get("/delivery-locations", h.HandleGetLocations)
	router.Get("/delivery-locations/:id", h.HandleGetLocationByID)

	router.Post("/delivery-locations", authRequired, operatorOnly, h.HandleCreateLocation)
	router.Put("/delivery-locations/:id", authRequired, operatorOnly, h.HandleUpdateLocation)
	router.Delete("/delivery-locations/:id", authRequired, operatorOnly, h.HandleDeleteLocation)
}

// HandleGetLocations retrieves delivery locations. Inactive locations are
// hidden unless ?includeInactive=true is passed.
func (h *DeliveryLocationHandler) HandleGetLocations(c *fiber.Ctx) error {
	includeInactive := c.Query("includeInactive") == "true"
	locations, err := h.service.ListLocations(includeInactive)
	if err != nil {
		h.log.WithError(err).Error("failed to fetch delivery locations")
		return respondError(c, "Could not retrieve delivery locations", err)
	}
	return c.JSON(locations)
}

// HandleGetLocationByID retrieves a single delivery location by its ID.
func (h *DeliveryLocationHandler) HandleGetLocationByID(c *fiber.Ctx) error {
	location, err := h.service.GetLocationByID(c.Params("id"))
	if err != nil {
		return respondError(c, "Delivery location not found", err)
	}
	return c.JSON(location)
}

// HandleCreateLocation creates a new delivery location.
func (h *DeliveryLocationHandler) HandleCreateLocation(c *fiber.Ctx) error {
	var req DeliveryLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	location := models.DeliveryLocation{
		Name:           req.Name,
		ShippingAmount: *req.ShippingAmount,
		IsActive:       true,
	}
	if req.Description != nil {
		location.Description = *req.Description
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		location.SortOrder = *req.SortOrder
	}

	if err := h.service.CreateLocation(&location); err != nil {
		return respondError(c, "Could not create delivery location", err)
	}
	return c.Status(fiber.StatusCreated).JSON(location)
}

// HandleUpdateLocation updates an existing delivery location. Only the
// fields present in the body are changed.
func (h *DeliveryLocationHandler) HandleUpdateLocation(c *fiber.Ctx) error {
	location, err := h.service.GetLocationByID(c.Params("id"))
	if err != nil {
		return respondError(c, "Delivery location not found", err)
	}

	var req struct {
		Name           *string  `json:"name" validate:"omitempty,min=2,max=100"`
		Description    *string  `json:"description" validate:"omitempty,max=500"`
		ShippingAmount *float64 `json:"shippingAmount" validate:"omitempty,gte=0"`
		IsActive       *bool    `json:"isActive"`
		SortOrder      *int     `json:"sortOrder"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make(map[string]string)
		for _, e := range validationErrors {
			errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  errorMessages,
		})
	}

	if req.Name != nil {
		location.Name = *req.Name
	}
	if req.Description != nil {
		location.Description = *req.Description
	}
	if req.ShippingAmount != nil {
		location.ShippingAmount = *req.ShippingAmount
	}
	if req.IsActive != nil {
		location.IsActive = *req.IsActive
	}
	if req.SortOrder != nil {
		location.SortOrder = *req.SortOrder
	}

	if err := h.service.UpdateLocation(location); err != nil {
		return respondError(c, "Could not update delivery location", err)
	}
	return c.JSON(location)
}

// HandleDeleteLocation deletes a delivery location by its ID.
func (h *DeliveryLocationHandler) HandleDeleteLocation(c *fiber.Ctx) error {
	if err := h.service.DeleteLocation(c.Params("id")); err != nil {
		return respondError(c, "Could not delete delivery location", err)
	}
	return c.JSON(fiber.Map{"message": "Delivery location removed"})
}
