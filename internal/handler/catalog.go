package handler

import (
	"net/http"

	"ordering-app/internal/models"
	"ordering-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct{}

func (h *CatalogHandler) ListRestaurants(c *gin.Context) {
	var restaurants []models.Restaurant
	if err := database.DB.Find(&restaurants).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch restaurants"})
		return
	}
	c.JSON(http.StatusOK, restaurants)
}

func (h *CatalogHandler) GetRestaurant(c *gin.Context) {
	id := c.Param("id")
	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, restaurant)
}

// ListMenu returns the customer-facing menu: available items only.
func (h *CatalogHandler) ListMenu(c *gin.Context) {
	id := c.Param("id")

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	var items []models.MenuItem
	if err := database.DB.Where("restaurant_id = ? AND available = ?", restaurant.ID, true).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu"})
		return
	}
	c.JSON(http.StatusOK, items)
}

// ListAgents exposes the delivery agents a customer can assign at checkout.
func (h *CatalogHandler) ListAgents(c *gin.Context) {
	var agents []models.User
	if err := database.DB.Where("role = ?", models.RoleAdmin).Find(&agents).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch agents"})
		return
	}
	c.JSON(http.StatusOK, agents)
}
