package handler

import (
	"net/http"
	"strings"

	"ordering-app/internal/models"
	"ordering-app/internal/utils"
	"ordering-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type OwnerHandler struct{}

// --- Users ---

func (h *OwnerHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Find(&users).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

type CreateUserRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required"`
	Phone                string `json:"phone"`
	Role                 string `json:"role" binding:"required"`
	AssignedRestaurantID *uint  `json:"assigned_restaurant_id"`
}

func (h *OwnerHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidRole(req.Role) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Role must be OWNER, ADMIN or USER"})
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		PasswordHash:         hashedPassword,
		Role:                 req.Role,
		AssignedRestaurantID: req.AssignedRestaurantID,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *OwnerHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	// The owner account is never removable.
	if user.Role == models.RoleOwner {
		c.JSON(http.StatusForbidden, gin.H{"error": "Owner account cannot be removed"})
		return
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}

// --- Restaurants ---

type CreateRestaurantRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	DeliveryFee float64 `json:"delivery_fee" binding:"gte=0"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
}

func (h *OwnerHandler) CreateRestaurant(c *gin.Context) {
	var req CreateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Image == "" {
		req.Image = "https://picsum.photos/800/600"
	}
	if req.Rating == 0 {
		req.Rating = 5.0
	}

	restaurant := models.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		DeliveryFee: req.DeliveryFee,
		Rating:      req.Rating,
	}

	if err := database.DB.Create(&restaurant).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create restaurant"})
		return
	}
	c.JSON(http.StatusCreated, restaurant)
}

type UpdateRestaurantRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	DeliveryFee *float64 `json:"delivery_fee"`
	Rating      *float64 `json:"rating"`
}

func (h *OwnerHandler) UpdateRestaurant(c *gin.Context) {
	id := c.Param("id")
	var req UpdateRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.DeliveryFee != nil {
		if *req.DeliveryFee < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery fee cannot be negative"})
			return
		}
		updates["delivery_fee"] = *req.DeliveryFee
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&restaurant).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update restaurant"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant updated"})
}

// DeleteRestaurant removes the restaurant and cascades over its menu items.
func (h *OwnerHandler) DeleteRestaurant(c *gin.Context) {
	id := c.Param("id")

	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}

	tx := database.DB.Begin()

	if err := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.MenuItem{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu items"})
		return
	}
	if err := tx.Delete(&restaurant).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete restaurant"})
		return
	}

	tx.Commit()
	c.JSON(http.StatusOK, gin.H{"message": "Restaurant deleted"})
}

// --- Menu items ---

// ListMenuItems is the management view: unavailable items included.
func (h *OwnerHandler) ListMenuItems(c *gin.Context) {
	var items []models.MenuItem
	query := database.DB
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if err := query.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch menu items"})
		return
	}
	c.JSON(http.StatusOK, items)
}

type CreateMenuItemRequest struct {
	RestaurantID uint    `json:"restaurant_id" binding:"required"`
	Name         string  `json:"name" binding:"required"`
	Description  string  `json:"description"`
	Price        float64 `json:"price" binding:"required,gt=0"`
	Category     string  `json:"category"`
	Available    *bool   `json:"available"`
}

func (h *OwnerHandler) CreateMenuItem(c *gin.Context) {
	var req CreateMenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Dangling menu items are rejected outright.
	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, "id = ?", req.RestaurantID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restaurant does not exist"})
		return
	}

	if req.Category == "" {
		req.Category = "General"
	}
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	item := models.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		Available:    available,
	}

	if err := database.DB.Create(&item).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create menu item"})
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *OwnerHandler) DeleteMenuItem(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Delete(&models.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete menu item"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item deleted"})
}

// --- Promo codes ---

func (h *OwnerHandler) ListPromos(c *gin.Context) {
	var promos []models.DiscountCode
	if err := database.DB.Find(&promos).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch promo codes"})
		return
	}
	c.JSON(http.StatusOK, promos)
}

type CreatePromoRequest struct {
	Code       string  `json:"code" binding:"required"`
	Percentage float64 `json:"percentage" binding:"gte=0,lte=100"`
	Active     *bool   `json:"active"`
}

func (h *OwnerHandler) CreatePromo(c *gin.Context) {
	var req CreatePromoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	promo := models.DiscountCode{
		Code:       strings.ToUpper(req.Code),
		Percentage: req.Percentage,
		Active:     active,
	}

	var existing models.DiscountCode
	if err := database.DB.Where("code = ?", promo.Code).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Promo code already exists"})
		return
	}

	if err := database.DB.Create(&promo).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create promo code"})
		return
	}
	c.JSON(http.StatusCreated, promo)
}

func (h *OwnerHandler) DeletePromo(c *gin.Context) {
	id := c.Param("id")

	result := database.DB.Delete(&models.DiscountCode{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete promo code"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Promo code not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Promo code deleted"})
}

// --- Orders ---

func (h *OwnerHandler) ListOrders(c *gin.Context) {
	status := c.Query("status")

	query := database.DB.Preload("Items").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// AssignOrder reassigns the delivery agent. Reassignment is allowed at any
// lifecycle stage, delivered and cancelled orders included.
func (h *OwnerHandler) AssignOrder(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		AdminID uint `json:"admin_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var agent models.User
	if err := database.DB.First(&agent, "id = ?", req.AdminID).Error; err != nil || agent.Role != models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery agent"})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if err := database.DB.Model(&order).Update("assigned_admin_id", agent.ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order assigned"})
}

func (h *OwnerHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var order models.Order
	if err := database.DB.First(&order, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if !applyStatusTransition(c, &order, req.Status) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

// --- Stats ---

// GetStats aggregates across all orders. Revenue deliberately includes
// CANCELLED orders, matching the storefront's original accounting.
func (h *OwnerHandler) GetStats(c *gin.Context) {
	var orders []models.Order
	if err := database.DB.Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	var totalRevenue float64
	var activeOrders int
	for _, order := range orders {
		totalRevenue += order.FinalAmount
		if order.Status == models.StatusPending || order.Status == models.StatusPreparing {
			activeOrders++
		}
	}

	var totalUsers int64
	database.DB.Model(&models.User{}).Count(&totalUsers)

	c.JSON(http.StatusOK, gin.H{
		"total_revenue": totalRevenue,
		"total_orders":  len(orders),
		"total_users":   totalUsers,
		"active_orders": activeOrders,
	})
}
