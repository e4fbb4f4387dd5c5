package models

import (
	"time"
)

const (
	SizeSmall  = "S"
	SizeMedium = "M"
	SizeLarge  = "L"
)

func ValidSize(size string) bool {
	switch size {
	case SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

// CartItem is one line of a user's in-progress cart. Price is already
// size-adjusted and quantity is always 1; repeated adds of the same menu item
// create separate lines. All lines of one cart share a RestaurantID.
type CartItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	MenuItemID   uint      `json:"menu_item_id"`
	RestaurantID uint      `json:"restaurant_id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity     int       `gorm:"default:1" json:"quantity"`
	Size         string    `gorm:"size:1;default:'S'" json:"size"` // 'S', 'M', 'L'
	Note         string    `gorm:"type:text" json:"note"`
	CreatedAt    time.Time `json:"created_at"`
}
