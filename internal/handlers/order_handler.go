package handlers

import (
	"poshstore/internal/middleware"
	"poshstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// OrderHandler handles HTTP requests for orders.
type OrderHandler struct {
	service  *services.OrderService
	validate *validator.Validate
	log      *logrus.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(service *services.OrderService, log *logrus.Logger) *OrderHandler {
	return &OrderHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the order routes. Guards are attached per route
// because the public tracking route shares the /orders prefix. That route is
// also registered before /:id so its path segment is not captured as an id.
func (h *OrderHandler) RegisterRoutes(router fiber.Router, authRequired, operatorOnly fiber.Handler) {
	orderRoutes := router.Group("/orders")
	orderRoutes.Get("/public-status/:orderNumber", h.HandlePublicStatus)
	orderRoutes.Post("/", authRequired, h.HandleCreateOrder)
	orderRoutes.Get("/myorders", authRequired, h.HandleGetMyOrders)
	orderRoutes.Get("/", authRequired, operatorOnly, h.HandleGetAllOrders)
	orderRoutes.Get("/:id", authRequired, h.HandleGetOrderByID)
	orderRoutes.Put("/:id/deliver", authRequired, operatorOnly, h.HandleMarkDelivered)
	orderRoutes.Put("/:id/status", authRequired, operatorOnly, h.HandleUpdateStatus)
	orderRoutes.Put("/:id/payment-status", authRequired, operatorOnly, h.HandleUpdatePaymentStatus)
	orderRoutes.Put("/:id/payment-proof", authRequired, h.HandleAttachPaymentProof)
	orderRoutes.Delete("/:id", authRequired, operatorOnly, h.HandleDeleteOrder)
}

// HandleCreateOrder ingests a new order.
func (h *OrderHandler) HandleCreateOrder(c *fiber.Ctx) error {
	var req services.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		validationErrors := err.(validator.ValidationErrors)
		errorMessages := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			errorMessages = append(errorMessages, "Field '"+e.Field()+"' failed on the '"+e.Tag()+"' tag")
		}
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Order validation failed",
			"errors":  errorMessages,
		})
	}

	order, err := h.service.CreateOrder(middleware.UserID(c), &req)
	if err != nil {
		h.log.WithError(err).Warn("order creation failed")
		return respondError(c, "Could not create order", err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Order placed successfully",
		"order":   order,
	})
}

// HandleGetMyOrders returns the caller's own orders.
func (h *OrderHandler) HandleGetMyOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetMyOrders(middleware.UserID(c))
	if err != nil {
		h.log.WithError(err).Error("failed to fetch user orders")
		return respondError(c, "Failed to fetch user orders", err)
	}
	return c.JSON(orders)
}

// HandleGetAllOrders returns every order, newest first. Operator-only.
func (h *OrderHandler) HandleGetAllOrders(c *fiber.Ctx) error {
	orders, err := h.service.GetAllOrders()
	if err != nil {
		h.log.WithError(err).Error("failed to fetch all orders")
		return respondError(c, "Failed to fetch all orders", err)
	}
	return c.JSON(orders)
}

// HandleGetOrderByID returns a single order to its owner or an operator.
func (h *OrderHandler) HandleGetOrderByID(c *fiber.Ctx) error {
	order, err := h.service.GetOrderByID(c.Params("id"), middleware.UserID(c), middleware.IsOperator(c))
	if err != nil {
		return respondError(c, "Order not found", err)
	}
	return c.JSON(order)
}

// HandleMarkDelivered marks an order delivered. Operator-only.
func (h *OrderHandler) HandleMarkDelivered(c *fiber.Ctx) error {
	order, err := h.service.MarkDelivered(c.Params("id"))
	if err != nil {
		return respondError(c, "Failed to update order status", err)
	}
	return c.JSON(fiber.Map{
		"message": "Order delivered successfully!",
		"order":   order,
	})
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus sets the order status. Operator-only.
func (h *OrderHandler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for status update",
			"error":   err.Error(),
		})
	}

	order, err := h.service.UpdateStatus(c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, "Failed to update order status", err)
	}
	return c.JSON(fiber.Map{
		"message": "Order status updated to " + order.Status + "!",
		"order":   order,
	})
}

// HandleUpdatePaymentStatus sets the payment status. Operator-only.
func (h *OrderHandler) HandleUpdatePaymentStatus(c *fiber.Ctx) error {
	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for payment status update",
			"error":   err.Error(),
		})
	}

	order, err := h.service.UpdatePaymentStatus(c.Params("id"), req.Status)
	if err != nil {
		return respondError(c, "Failed to update payment status", err)
	}
	return c.JSON(fiber.Map{
		"message": "Payment status updated to " + order.PaymentStatus + "!",
		"order":   order,
	})
}

type paymentProofRequest struct {
	BankReference string `json:"bankReference"`
	ProofURL      string `json:"proofUrl"`
}

// HandleAttachPaymentProof records bank transfer proof on the order.
func (h *OrderHandler) HandleAttachPaymentProof(c *fiber.Ctx) error {
	var req paymentProofRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body for payment proof",
			"error":   err.Error(),
		})
	}

	order, err := h.service.AttachPaymentProof(
		c.Params("id"), middleware.UserID(c), middleware.IsOperator(c),
		req.BankReference, req.ProofURL)
	if err != nil {
		return respondError(c, "Failed to attach payment proof", err)
	}
	return c.JSON(fiber.Map{
		"message": "Payment proof uploaded",
		"order":   order,
	})
}

// HandleDeleteOrder hard-deletes an order. Operator-only.
func (h *OrderHandler) HandleDeleteOrder(c *fiber.Ctx) error {
	if err := h.service.DeleteOrder(c.Params("id")); err != nil {
		return respondError(c, "Failed to delete order", err)
	}
	return c.JSON(fiber.Map{"message": "Order removed"})
}

// HandlePublicStatus serves the redacted public order tracking view.
func (h *OrderHandler) HandlePublicStatus(c *fiber.Ctx) error {
	status, err := h.service.GetPublicStatus(c.Params("orderNumber"))
	if err != nil {
		return respondError(c, "Order not found with this number.", err)
	}
	return c.JSON(status)
}
