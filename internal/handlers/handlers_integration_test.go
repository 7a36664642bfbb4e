package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"poshstore/internal/handlers"
	"poshstore/internal/middleware"
	"poshstore/internal/models"
	"poshstore/internal/repositories"
	"poshstore/internal/services"
	"poshstore/pkg/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var integrationDBSeq int

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
}

// setupEnv wires the full stack over an in-memory SQLite database, mirroring
// the route registration in main. Notifications are disabled.
func setupEnv(t *testing.T) *testEnv {
	t.Helper()

	integrationDBSeq++
	dsn := fmt.Sprintf("file:handlers_test_%d?mode=memory&cache=shared", integrationDBSeq)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Counter{}, &models.Category{},
		&models.Product{}, &models.ProductImage{},
		&models.Order{}, &models.OrderItem{},
		&models.CartItem{}, &models.WishlistItem{},
		&models.BlogPost{}, &models.NewsletterSubscriber{}, &models.QuoteRequest{},
		&models.DeliveryLocation{},
	))

	log := logrus.New()
	log.SetLevel(logrus.PanicLevel)
	storeMetrics := metrics.NewStoreMetricsWithRegisterer(prometheus.NewRegistry())

	userRepo := repositories.NewGORMUserRepository(db)
	counterRepo := repositories.NewGORMCounterRepository(db)
	categoryRepo := repositories.NewGORMCategoryRepository(db)
	productRepo := repositories.NewGORMProductRepository(db)
	orderRepo := repositories.NewGORMOrderRepository(db)
	cartRepo := repositories.NewGORMCartRepository(db)
	wishlistRepo := repositories.NewGORMWishlistRepository(db)
	blogRepo := repositories.NewGORMBlogRepository(db)
	newsletterRepo := repositories.NewGORMNewsletterRepository(db)
	quoteRepo := repositories.NewGORMQuoteRepository(db)
	deliveryLocationRepo := repositories.NewGORMDeliveryLocationRepository(db)

	authService := services.NewAuthService(userRepo, "integration-test-secret", log)
	productService := services.NewProductService(productRepo)
	orderService := services.NewOrderService(orderRepo, productRepo, counterRepo, nil, storeMetrics)
	categoryService := services.NewCategoryService(categoryRepo)
	cartService := services.NewCartService(cartRepo, productRepo)
	wishlistService := services.NewWishlistService(wishlistRepo, productRepo)
	blogService := services.NewBlogService(blogRepo)
	newsletterService := services.NewNewsletterService(newsletterRepo)
	quoteService := services.NewQuoteService(quoteRepo)
	deliveryLocationService := services.NewDeliveryLocationService(deliveryLocationRepo)

	app := fiber.New()
	authRequired := middleware.AuthRequired(authService)
	operatorOnly := middleware.OperatorRequired()

	apiV1 := app.Group("/api/v1")
	handlers.NewAuthHandler(authService, log).RegisterRoutes(apiV1)
	handlers.NewProductHandler(productService, log).RegisterRoutes(apiV1, authRequired, operatorOnly)
	handlers.NewOrderHandler(orderService, log).RegisterRoutes(apiV1, authRequired, operatorOnly)
	handlers.NewCategoryHandler(categoryService, log).RegisterRoutes(apiV1, authRequired, operatorOnly)
	handlers.NewCartHandler(cartService, log).RegisterRoutes(apiV1, authRequired)
	handlers.NewWishlistHandler(wishlistService, log).RegisterRoutes(apiV1, authRequired)
	handlers.NewBlogHandler(blogService, log).RegisterRoutes(apiV1, authRequired, operatorOnly)
	handlers.NewNewsletterHandler(newsletterService, log).RegisterRoutes(apiV1, authRequired, operatorOnly)
	handlers.NewQuoteHandler(quoteService, log).RegisterRoutes(apiV1, authRequired, operatorOnly)
	handlers.NewDeliveryLocationHandler(deliveryLocationService, log).RegisterRoutes(apiV1, authRequired, operatorOnly)

	return &testEnv{app: app, db: db}
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req, -1)
	assert.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var decoded map[string]any
	if len(raw) > 0 && raw[0] == '{' {
		assert.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func (e *testEnv) requestList(t *testing.T, method, path, token string) (*http.Response, []any) {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	assert.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var decoded []any
	if len(raw) > 0 && raw[0] == '[' {
		assert.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

// registerAndLogin creates an account and returns a bearer token. Operator
// roles are promoted directly in the database because the API never accepts
// a role from the request.
func (e *testEnv) registerAndLogin(t *testing.T, name, email, role string) string {
	t.Helper()

	resp, _ := e.request(t, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     name,
		"email":    email,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	if role != models.RoleUser {
		assert.NoError(t, e.db.Model(&models.User{}).
			Where("email = ?", email).Update("role", role).Error)
	}

	resp, body := e.request(t, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    email,
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)
	return token
}

func (e *testEnv) createProduct(t *testing.T, token string, name string, price float64, stock int) string {
	t.Helper()

	resp, body := e.request(t, http.MethodPost, "/api/v1/products", token, fiber.Map{
		"name":          name,
		"price":         price,
		"stockQuantity": stock,
		"status":        models.ProductStatusActive,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	id, _ := body["id"].(string)
	assert.NotEmpty(t, id)
	return id
}

func orderPayload(productID string, quantity int) fiber.Map {
	return fiber.Map{
		"orderItems": []fiber.Map{
			{"productId": productID, "name": "Velvet Armchair", "quantity": quantity, "price": 250},
		},
		"shippingAddress": fiber.Map{
			"fullName": "Ada Lovelace",
			"address1": "12 Analytical Way",
			"city":     "London",
			"state":    "LDN",
			"country":  "UK",
		},
		"paymentMethod": models.PaymentMethodCard,
		"itemsPrice":    250 * quantity,
		"taxPrice":      0,
		"shippingPrice": 0,
		"totalPrice":    250 * quantity,
	}
}

func TestRegisterAndLogin(t *testing.T) {
	env := setupEnv(t)

	// The password travels in the request body even though the stored model
	// never serializes it back out.
	resp, body := env.request(t, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     "Ada",
		"email":    "ada@poshstore.test",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	user, _ := body["user"].(map[string]any)
	assert.Equal(t, models.RoleUser, user["role"])
	assert.NotContains(t, user, "password")

	// Duplicate email conflicts.
	resp, _ = env.request(t, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     "Ada Again",
		"email":    "ada@poshstore.test",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, body = env.request(t, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    "ada@poshstore.test",
		"password": "secret123",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	token, _ := body["token"].(string)
	assert.NotEmpty(t, token)

	resp, _ = env.request(t, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    "ada@poshstore.test",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestOrderPlacementFlow(t *testing.T) {
	env := setupEnv(t)
	adminToken := env.registerAndLogin(t, "Admin", "admin@poshstore.test", models.RoleAdmin)
	buyerToken := env.registerAndLogin(t, "Ada", "ada@poshstore.test", models.RoleUser)

	productID := env.createProduct(t, adminToken, "Velvet Armchair", 250, 10)

	resp, body := env.request(t, http.MethodPost, "/api/v1/orders", buyerToken, orderPayload(productID, 2))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	order, _ := body["order"].(map[string]any)
	assert.Equal(t, "POSH000000001", order["orderNumber"])
	assert.Equal(t, models.OrderStatusProcessing, order["status"])
	assert.Equal(t, true, order["isPaid"])

	// Stock was decremented by exactly the ordered quantity.
	resp, body = env.request(t, http.MethodGet, "/api/v1/products/"+productID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(8), body["stockQuantity"])

	// The buyer sees their order; a second order draws the next number.
	resp, list := env.requestList(t, http.MethodGet, "/api/v1/orders/myorders", buyerToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1)

	resp, body = env.request(t, http.MethodPost, "/api/v1/orders", buyerToken, orderPayload(productID, 1))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	order, _ = body["order"].(map[string]any)
	assert.Equal(t, "POSH000000002", order["orderNumber"])
}

func TestOrderValidationAggregation(t *testing.T) {
	env := setupEnv(t)
	adminToken := env.registerAndLogin(t, "Admin", "admin@poshstore.test", models.RoleAdmin)
	buyerToken := env.registerAndLogin(t, "Ada", "ada@poshstore.test", models.RoleUser)

	productID := env.createProduct(t, adminToken, "Oak Table", 400, 2)

	payload := orderPayload(productID, 5)
	payload["orderItems"] = []fiber.Map{
		{"productId": productID, "name": "Oak Table", "quantity": 5, "price": 400},
		{"productId": "not-a-uuid", "name": "Ghost Chair", "quantity": 1, "price": 10},
	}

	resp, body := env.request(t, http.MethodPost, "/api/v1/orders", buyerToken, payload)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	errorsField, _ := body["errors"].([]any)
	assert.Len(t, errorsField, 2)

	// The rejected request changed nothing.
	resp, body = env.request(t, http.MethodGet, "/api/v1/products/"+productID, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["stockQuantity"])
}

func TestOrderLifecycleEndpoints(t *testing.T) {
	env := setupEnv(t)
	adminToken := env.registerAndLogin(t, "Admin", "admin@poshstore.test", models.RoleAdmin)
	buyerToken := env.registerAndLogin(t, "Ada", "ada@poshstore.test", models.RoleUser)
	strangerToken := env.registerAndLogin(t, "Eve", "eve@poshstore.test", models.RoleUser)

	productID := env.createProduct(t, adminToken, "Desk", 200, 5)

	resp, body := env.request(t, http.MethodPost, "/api/v1/orders", buyerToken, orderPayload(productID, 1))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	order, _ := body["order"].(map[string]any)
	orderID, _ := order["id"].(string)

	// Only the owner or an operator may read the order.
	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, strangerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Lifecycle mutations are operator-only.
	resp, _ = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/deliver", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, body = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/deliver", adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	order, _ = body["order"].(map[string]any)
	assert.Equal(t, models.OrderStatusDelivered, order["status"])
	assert.Equal(t, true, order["isDelivered"])
	assert.NotNil(t, order["deliveredAt"])

	// Demotion away from Delivered clears the delivery flags.
	resp, body = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/status", adminToken,
		fiber.Map{"status": models.OrderStatusProcessing})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	order, _ = body["order"].(map[string]any)
	assert.Equal(t, false, order["isDelivered"])
	assert.Nil(t, order["deliveredAt"])

	// Unknown status values are rejected.
	resp, _ = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/status", adminToken,
		fiber.Map{"status": "Teleported"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, body = env.request(t, http.MethodPut, "/api/v1/orders/"+orderID+"/payment-status", adminToken,
		fiber.Map{"status": models.PaymentStatusNotPaid})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	order, _ = body["order"].(map[string]any)
	assert.Equal(t, false, order["isPaid"])

	// Deleting the order is operator-only and final.
	resp, _ = env.request(t, http.MethodDelete, "/api/v1/orders/"+orderID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders/"+orderID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPublicOrderStatus(t *testing.T) {
	env := setupEnv(t)
	adminToken := env.registerAndLogin(t, "Admin", "admin@poshstore.test", models.RoleAdmin)
	buyerToken := env.registerAndLogin(t, "Ada", "ada@poshstore.test", models.RoleUser)

	productID := env.createProduct(t, adminToken, "Sofa", 800, 5)
	resp, body := env.request(t, http.MethodPost, "/api/v1/orders", buyerToken, orderPayload(productID, 1))
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	order, _ := body["order"].(map[string]any)
	orderNumber, _ := order["orderNumber"].(string)

	// No token required; lookup is case-insensitive.
	resp, body = env.request(t, http.MethodGet, "/api/v1/orders/public-status/"+orderNumber, "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, orderNumber, body["orderNumber"])

	resp, lower := env.request(t, http.MethodGet, "/api/v1/orders/public-status/posh000000001", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, orderNumber, lower["orderNumber"])

	// The public view exposes exactly the tracking fields.
	keys := make([]string, 0, len(body))
	for k := range body {
		keys = append(keys, k)
	}
	assert.ElementsMatch(t, []string{"orderNumber", "status", "isPaid", "totalPrice", "createdAt"}, keys)

	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders/public-status/POSH999999999", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAuthGuards(t *testing.T) {
	env := setupEnv(t)
	buyerToken := env.registerAndLogin(t, "Ada", "ada@poshstore.test", models.RoleUser)

	// Missing and malformed tokens are rejected before any handler runs.
	resp, _ := env.request(t, http.MethodPost, "/api/v1/orders", "", orderPayload("irrelevant", 1))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orders/myorders", nil)
	req.Header.Set("Authorization", "NotBearer xyz")
	raw, err := env.app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, raw.StatusCode)

	// Operator routes refuse plain users.
	resp, _ = env.request(t, http.MethodPost, "/api/v1/products", buyerToken, fiber.Map{
		"name": "Illicit Product", "price": 10, "stockQuantity": 1,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, _ = env.request(t, http.MethodGet, "/api/v1/orders", buyerToken, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestNewsletterAndQuotes(t *testing.T) {
	env := setupEnv(t)
	adminToken := env.registerAndLogin(t, "Admin", "admin@poshstore.test", models.RoleAdmin)

	resp, _ := env.request(t, http.MethodPost, "/api/v1/newsletter/subscribe", "",
		fiber.Map{"email": "reader@example.com"})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Duplicate subscriptions conflict.
	resp, _ = env.request(t, http.MethodPost, "/api/v1/newsletter/subscribe", "",
		fiber.Map{"email": "reader@example.com"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, list := env.requestList(t, http.MethodGet, "/api/v1/newsletter/subscribers", adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1)

	resp, _ = env.request(t, http.MethodPost, "/api/v1/quotes", "", fiber.Map{
		"name":    "Ada Lovelace",
		"email":   "ada@example.com",
		"message": "Do you deliver to Manchester?",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, list = env.requestList(t, http.MethodGet, "/api/v1/quotes", adminToken)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1)
}

func TestDeliveryLocations(t *testing.T) {
	env := setupEnv(t)
	adminToken := env.registerAndLogin(t, "Admin", "admin@poshstore.test", models.RoleAdmin)
	buyerToken := env.registerAndLogin(t, "Ada", "ada@poshstore.test", models.RoleUser)

	resp, lekki := env.request(t, http.MethodPost, "/api/v1/delivery-locations", adminToken, fiber.Map{
		"name":           "Lekki Phase 1",
		"shippingAmount": 2500.0,
		"sortOrder":      2,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, lekki["isActive"])

	resp, _ = env.request(t, http.MethodPost, "/api/v1/delivery-locations", adminToken, fiber.Map{
		"name":           "Ikeja",
		"shippingAmount": 1500.0,
		"sortOrder":      1,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, _ = env.request(t, http.MethodPost, "/api/v1/delivery-locations", adminToken, fiber.Map{
		"name":           "Epe",
		"shippingAmount": 4000.0,
		"isActive":       false,
		"sortOrder":      3,
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	// Location names are unique.
	resp, _ = env.request(t, http.MethodPost, "/api/v1/delivery-locations", adminToken, fiber.Map{
		"name":           "Ikeja",
		"shippingAmount": 1800.0,
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// Customers only manage their carts, not the delivery catalog.
	resp, _ = env.request(t, http.MethodPost, "/api/v1/delivery-locations", buyerToken, fiber.Map{
		"name":           "Yaba",
		"shippingAmount": 1000.0,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// Public listing hides inactive locations and orders by sortOrder.
	resp, list := env.requestList(t, http.MethodGet, "/api/v1/delivery-locations", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 2)
	first := list[0].(map[string]any)
	second := list[1].(map[string]any)
	assert.Equal(t, "Ikeja", first["name"])
	assert.Equal(t, "Lekki Phase 1", second["name"])

	resp, list = env.requestList(t, http.MethodGet, "/api/v1/delivery-locations?includeInactive=true", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 3)

	// Partial update: deactivating removes the location from the public list.
	lekkiID := lekki["id"].(string)
	resp, body := env.request(t, http.MethodPut, "/api/v1/delivery-locations/"+lekkiID, adminToken,
		fiber.Map{"isActive": false})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, false, body["isActive"])
	assert.Equal(t, "Lekki Phase 1", body["name"])

	resp, list = env.requestList(t, http.MethodGet, "/api/v1/delivery-locations", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, list, 1)

	resp, _ = env.request(t, http.MethodDelete, "/api/v1/delivery-locations/"+lekkiID, adminToken, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = env.request(t, http.MethodGet, "/api/v1/delivery-locations/"+lekkiID, "", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
