package handler

import (
	"net/http"
	"strconv"
	"strings"

	"ordering-app/internal/models"
	"ordering-app/internal/pricing"
	"ordering-app/pkg/database"

	"github.com/gin-gonic/gin"
)

type CartHandler struct{}

func loadCart(userID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := database.DB.Where("user_id = ?", userID).Order("id asc").Find(&items).Error
	return items, err
}

// GetCart returns the cart lines plus a priced preview. An optional ?promo=
// code is validated; an unknown or inactive code prices as zero discount and
// is reported via promo_valid instead of failing the request.
func (h *CartHandler) GetCart(c *gin.Context) {
	userID := c.GetUint("userID")

	items, err := loadCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	var deliveryFee float64
	if len(items) > 0 {
		var restaurant models.Restaurant
		if err := database.DB.First(&restaurant, "id = ?", items[0].RestaurantID).Error; err == nil {
			deliveryFee = restaurant.DeliveryFee
		}
	}

	resp := gin.H{"items": items}

	promoCode := strings.ToUpper(c.Query("promo"))
	percentage := 0.0
	if promoCode != "" {
		pct, ok := lookupPromoPercentage(promoCode)
		resp["promo_valid"] = ok
		if ok {
			percentage = pct
		}
	}

	resp["totals"] = pricing.ComputeTotals(items, deliveryFee, percentage)
	c.JSON(http.StatusOK, resp)
}

type AddCartItemRequest struct {
	MenuItemID  uint   `json:"menu_item_id" binding:"required"`
	Size        string `json:"size" binding:"required"`
	Note        string `json:"note"`
	ReplaceCart bool   `json:"replace_cart"`
}

// AddItem appends one line to the cart. Adding from a different restaurant
// than the current cart's needs an explicit replace_cart confirmation; the
// first attempt answers 409 and leaves the cart untouched.
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !models.ValidSize(req.Size) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Size must be S, M or L"})
		return
	}

	var item models.MenuItem
	if err := database.DB.First(&item, "id = ?", req.MenuItemID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
		return
	}
	if !item.Available {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item is not available"})
		return
	}

	userID := c.GetUint("userID")
	cart, err := loadCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	if len(cart) > 0 && cart[0].RestaurantID != item.RestaurantID {
		if !req.ReplaceCart {
			c.JSON(http.StatusConflict, gin.H{
				"error":                 "Cart holds items from another restaurant",
				"requires_confirmation": true,
			})
			return
		}
		if err := database.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
	}

	line := models.CartItem{
		UserID:       userID,
		MenuItemID:   item.ID,
		RestaurantID: item.RestaurantID,
		Name:         item.Name,
		Price:        pricing.UnitPrice(item.Price, req.Size),
		Quantity:     1,
		Size:         req.Size,
		Note:         req.Note,
	}

	if err := database.DB.Create(&line).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
		return
	}

	c.JSON(http.StatusCreated, line)
}

// RemoveItem removes one line by its position in the cart. An out-of-range
// index is reported, not swallowed.
func (h *CartHandler) RemoveItem(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart index"})
		return
	}

	userID := c.GetUint("userID")
	cart, err := loadCart(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	if index < 0 || index >= len(cart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cart index out of range"})
		return
	}

	if err := database.DB.Delete(&models.CartItem{}, cart[index].ID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	userID := c.GetUint("userID")
	if err := database.DB.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
