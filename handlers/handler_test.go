package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"fleachain_backend/config"
	"fleachain_backend/handlers"
	"fleachain_backend/store"
	"fleachain_backend/utils"
)

// newTestApp wires the handlers onto a bare fiber app over a freshly seeded
// in-memory store, mirroring the route layout of the real server.
func newTestApp(t *testing.T) (*fiber.App, *store.Store) {
	t.Helper()

	db, err := config.OpenDatabase()
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	require.NoError(t, config.Seed(db))

	st := store.New(db, nil, 0)

	authHandler := handlers.NewAuthHandler(st, time.Hour)
	productHandler := handlers.NewProductHandler(st)
	orderHandler := handlers.NewOrderHandler(st)
	reviewHandler := handlers.NewReviewHandler(st)
	messageHandler := handlers.NewMessageHandler(st)
	userHandler := handlers.NewUserHandler(st)

	app := fiber.New()
	api := app.Group("/api")

	api.Post("/auth/login", authHandler.Login)
	api.Post("/auth/logout", utils.AuthMiddleware, authHandler.Logout)
	api.Get("/auth/profile", utils.AuthMiddleware, authHandler.Profile)

	api.Get("/products", productHandler.GetAllProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", utils.AuthMiddleware, productHandler.CreateProduct)
	api.Post("/products/:id/purchase", utils.AuthMiddleware, orderHandler.PurchaseProduct)
	api.Get("/my-products", utils.AuthMiddleware, productHandler.GetMyProducts)
	api.Get("/categories", productHandler.GetCategories)

	orders := api.Group("/orders", utils.AuthMiddleware)
	orders.Get("/", orderHandler.GetMyOrders)
	orders.Post("/:id/complete", orderHandler.CompleteOrder)
	orders.Post("/:id/cancel", orderHandler.CancelOrder)

	api.Post("/reviews", utils.AuthMiddleware, reviewHandler.CreateReview)
	api.Get("/users/:id/reviews", reviewHandler.GetUserReviews)
	api.Get("/users/:id", userHandler.GetUser)

	messages := api.Group("/messages", utils.AuthMiddleware)
	messages.Get("/", messageHandler.GetMyMessages)
	messages.Post("/", messageHandler.SendMessage)

	return app, st
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer resp.Body.Close()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func loginToken(t *testing.T, app *fiber.App, username string) string {
	t.Helper()

	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": username,
		"password": "anything",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}
