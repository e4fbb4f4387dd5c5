package handler

import (
	"net/http"

	"ordering-app/internal/models"
	"ordering-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type AgentHandler struct{}

// ListAssignedOrders is the agent view: orders assigned to the caller.
func (h *AgentHandler) ListAssignedOrders(c *gin.Context) {
	adminID := c.GetUint("userID")

	var orders []models.Order
	if err := database.DB.Preload("Items").Where("assigned_admin_id = ?", adminID).Order("created_at desc").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateOrderStatus moves one of the caller's assigned orders along the
// lifecycle. Orders assigned to other agents are invisible here.
func (h *AgentHandler) UpdateOrderStatus(c *gin.Context) {
	id := c.Param("id")
	var req struct {
		Status string `json:"status" binding:"required"` // PENDING, PREPARING, DELIVERED, CANCELLED
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	adminID := c.GetUint("userID")

	var order models.Order
	if err := database.DB.Where("id = ? AND assigned_admin_id = ?", id, adminID).First(&order).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	if !applyStatusTransition(c, &order, req.Status) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated"})
}

// GetStats sums revenue over the caller's assigned orders. Cancelled orders
// count toward revenue; see owner stats for the same policy.
func (h *AgentHandler) GetStats(c *gin.Context) {
	adminID := c.GetUint("userID")

	var orders []models.Order
	if err := database.DB.Where("assigned_admin_id = ?", adminID).Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	var revenue float64
	for _, order := range orders {
		revenue += order.FinalAmount
	}

	c.JSON(http.StatusOK, gin.H{
		"revenue": revenue,
		"count":   len(orders),
	})
}
