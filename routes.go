package main

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"fleachain_backend/config"
	"fleachain_backend/handlers"
	"fleachain_backend/internal/ws"
	"fleachain_backend/store"
	"fleachain_backend/utils"
)

func setupRoutes(app *fiber.App, st *store.Store, hub *ws.Hub, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(st, cfg.JWTExpiration)
	productHandler := handlers.NewProductHandler(st)
	orderHandler := handlers.NewOrderHandler(st)
	reviewHandler := handlers.NewReviewHandler(st)
	messageHandler := handlers.NewMessageHandler(st)
	userHandler := handlers.NewUserHandler(st)

	api := app.Group("/api")

	// Authentication & Session
	auth := api.Group("/auth")
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", utils.AuthMiddleware, authHandler.Logout)
	auth.Get("/profile", utils.AuthMiddleware, authHandler.Profile)

	// Marketplace & Listings
	api.Get("/products", productHandler.GetAllProducts)
	api.Get("/products/:id", productHandler.GetProduct)
	api.Post("/products", utils.AuthMiddleware, productHandler.CreateProduct)
	api.Post("/products/:id/purchase", utils.AuthMiddleware, orderHandler.PurchaseProduct)
	api.Get("/my-products", utils.AuthMiddleware, productHandler.GetMyProducts)
	api.Get("/categories", productHandler.GetCategories)

	// Orders (escrow workflow)
	orders := api.Group("/orders", utils.AuthMiddleware)
	orders.Get("/", orderHandler.GetMyOrders)
	orders.Post("/:id/complete", orderHandler.CompleteOrder)
	orders.Post("/:id/cancel", orderHandler.CancelOrder)

	// Reviews
	api.Post("/reviews", utils.AuthMiddleware, reviewHandler.CreateReview)
	api.Get("/users/:id/reviews", reviewHandler.GetUserReviews)

	// Users
	api.Get("/users/:id", userHandler.GetUser)

	// Messages
	messages := api.Group("/messages", utils.AuthMiddleware)
	messages.Get("/", messageHandler.GetMyMessages)
	messages.Post("/", messageHandler.SendMessage)

	// Live updates
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		userID, err := utils.ParseToken(conn.Query("token"))
		if err != nil {
			log.Printf("ws: rejected connection: %v", err)
			conn.Close()
			return
		}

		client := &ws.Client{
			Hub:    hub,
			Conn:   conn,
			Send:   make(chan []byte, 256),
			UserID: userID,
		}
		hub.Register <- client

		go client.WritePump()
		client.ReadPump()
	}))
}
