package handler

import (
	"time"

	"ordering-app/internal/middleware"
	"ordering-app/internal/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRouter wires every route group. Kept out of main so tests can run
// requests against the same engine.
func SetupRouter() *gin.Engine {
	r := gin.Default()

	// CORS Configuration
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	authHandler := &AuthHandler{}
	authRoutes := r.Group("/api/v1/auth")
	{
		authRoutes.POST("/login", authHandler.Login)
		authRoutes.POST("/signup", authHandler.Signup)
	}

	catalogHandler := &CatalogHandler{}
	cartHandler := &CartHandler{}
	orderHandler := &OrderHandler{}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware())
	{
		api.POST("/auth/logout", authHandler.Logout)

		api.GET("/restaurants", catalogHandler.ListRestaurants)
		api.GET("/restaurants/:id", catalogHandler.GetRestaurant)
		api.GET("/restaurants/:id/menu", catalogHandler.ListMenu)
		api.GET("/agents", catalogHandler.ListAgents)

		api.GET("/cart", cartHandler.GetCart)
		api.POST("/cart/items", cartHandler.AddItem)
		api.DELETE("/cart/items/:index", cartHandler.RemoveItem)
		api.DELETE("/cart", cartHandler.ClearCart)

		api.POST("/orders", orderHandler.PlaceOrder)
		api.GET("/orders", orderHandler.ListMyOrders)
	}

	agentHandler := &AgentHandler{}
	agentRoutes := r.Group("/api/v1/agent")
	agentRoutes.Use(middleware.AuthMiddleware(models.RoleAdmin))
	{
		agentRoutes.GET("/orders", agentHandler.ListAssignedOrders)
		agentRoutes.PUT("/orders/:id/status", agentHandler.UpdateOrderStatus)
		agentRoutes.GET("/stats", agentHandler.GetStats)
	}

	ownerHandler := &OwnerHandler{}
	ownerRoutes := r.Group("/api/v1/owner")
	ownerRoutes.Use(middleware.AuthMiddleware(models.RoleOwner))
	{
		ownerRoutes.GET("/users", ownerHandler.ListUsers)
		ownerRoutes.POST("/users", ownerHandler.CreateUser)
		ownerRoutes.DELETE("/users/:id", ownerHandler.DeleteUser)

		ownerRoutes.POST("/restaurants", ownerHandler.CreateRestaurant)
		ownerRoutes.PUT("/restaurants/:id", ownerHandler.UpdateRestaurant)
		ownerRoutes.DELETE("/restaurants/:id", ownerHandler.DeleteRestaurant)

		ownerRoutes.GET("/menu-items", ownerHandler.ListMenuItems)
		ownerRoutes.POST("/menu-items", ownerHandler.CreateMenuItem)
		ownerRoutes.DELETE("/menu-items/:id", ownerHandler.DeleteMenuItem)

		ownerRoutes.GET("/promos", ownerHandler.ListPromos)
		ownerRoutes.POST("/promos", ownerHandler.CreatePromo)
		ownerRoutes.DELETE("/promos/:id", ownerHandler.DeletePromo)

		ownerRoutes.GET("/orders", ownerHandler.ListOrders)
		ownerRoutes.PUT("/orders/:id/assign", ownerHandler.AssignOrder)
		ownerRoutes.PUT("/orders/:id/status", ownerHandler.UpdateOrderStatus)

		ownerRoutes.GET("/stats", ownerHandler.GetStats)
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	return r
}
