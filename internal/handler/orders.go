package handler

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"ordering-app/config"
	"ordering-app/internal/models"
	"ordering-app/internal/pricing"
	"ordering-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct{}

// Helper to generate order number: ORD-YYYYMMDD-SEQ
func generateOrderNo() string {
	prefix := config.AppConfig.Defaults.OrderPrefix
	dateStr := time.Now().Format("20060102")

	var lastOrder models.Order
	database.DB.Order("id desc").First(&lastOrder)

	newID := lastOrder.ID + 1 // Simple increment strategy for now
	return fmt.Sprintf("%s-%s-%04d", prefix, dateStr, newID)
}

// lookupPromoPercentage matches an uppercase code against active discount
// codes. Callers uppercase before calling.
func lookupPromoPercentage(code string) (float64, bool) {
	var promo models.DiscountCode
	if err := database.DB.Where("code = ? AND active = ?", code, true).First(&promo).Error; err != nil {
		return 0, false
	}
	return promo.Percentage, true
}

type PlaceOrderRequest struct {
	AgentID   uint   `json:"agent_id" binding:"required"`
	PromoCode string `json:"promo_code"`
}

// PlaceOrder snapshots the caller's cart into a PENDING order and clears the
// cart, all in one transaction. An invalid promo code prices as zero discount
// rather than blocking checkout.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Delivery agent must be selected"})
		return
	}

	userID := c.GetUint("userID")

	cart, err := loadCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}
	if len(cart) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
		return
	}

	var agent models.User
	if err := database.DB.First(&agent, "id = ?", req.AgentID).Error; err != nil || agent.Role != models.RoleAdmin {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid delivery agent"})
		return
	}

	// Unresolvable restaurants price with a zero fee, like the original.
	restaurantName := "Unknown"
	var deliveryFee float64
	var restaurant models.Restaurant
	if err := database.DB.First(&restaurant, "id = ?", cart[0].RestaurantID).Error; err == nil {
		restaurantName = restaurant.Name
		deliveryFee = restaurant.DeliveryFee
	}

	var promoPercentage float64
	if req.PromoCode != "" {
		if pct, ok := lookupPromoPercentage(strings.ToUpper(req.PromoCode)); ok {
			promoPercentage = pct
		}
	}

	totals := pricing.ComputeTotals(cart, deliveryFee, promoPercentage)

	tx := database.DB.Begin()

	order := models.Order{
		OrderNo:         generateOrderNo(),
		UserID:          userID,
		RestaurantID:    cart[0].RestaurantID,
		RestaurantName:  restaurantName,
		TotalAmount:     totals.TotalAmount,
		DiscountAmount:  totals.DiscountAmount,
		FinalAmount:     totals.FinalAmount,
		Status:          models.StatusPending,
		AssignedAdminID: agent.ID,
		CreatedAt:       time.Now(),
	}

	if err := tx.Create(&order).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
		return
	}

	for _, line := range cart {
		orderItem := models.OrderItem{
			OrderID:    order.ID,
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Price:      line.Price,
			Quantity:   line.Quantity,
			Size:       line.Size,
			Note:       line.Note,
		}
		if err := tx.Create(&orderItem).Error; err != nil {
			tx.Rollback()
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add order item"})
			return
		}
	}

	if err := tx.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}

	tx.Commit()

	database.DB.Preload("Items").First(&order, order.ID)
	c.JSON(http.StatusCreated, order)
}

// ListMyOrders is the customer view: own orders only.
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	userID := c.GetUint("userID")

	var orders []models.Order
	if err := database.DB.Preload("Items").Where("user_id = ?", userID).Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// applyStatusTransition validates the requested move against the lifecycle
// table and persists it. Returns false if it already answered the request.
func applyStatusTransition(c *gin.Context, order *models.Order, newStatus string) bool {
	if !models.ValidStatus(newStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return false
	}
	if !models.CanTransition(order.Status, newStatus) {
		c.JSON(http.StatusConflict, gin.H{"error": fmt.Sprintf("Cannot move order from %s to %s", order.Status, newStatus)})
		return false
	}

	if err := database.DB.Model(order).Update("status", newStatus).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
		return false
	}
	return true
}
