package models

import (
	"time"
)

const (
	StatusPending   = "PENDING"
	StatusPreparing = "PREPARING"
	StatusDelivered = "DELIVERED"
	StatusCancelled = "CANCELLED"
)

// statusTransitions is the allowed move set. DELIVERED and CANCELLED are
// terminal.
var statusTransitions = map[string][]string{
	StatusPending:   {StatusPreparing, StatusCancelled},
	StatusPreparing: {StatusDelivered, StatusCancelled},
	StatusDelivered: {},
	StatusCancelled: {},
}

func ValidStatus(status string) bool {
	_, ok := statusTransitions[status]
	return ok
}

func CanTransition(from, to string) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Order is an immutable snapshot of a cart at checkout. Only Status and
// AssignedAdminID mutate after creation.
type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderNo         string      `gorm:"size:50;unique;not null" json:"order_no"`
	UserID          uint        `gorm:"index;not null" json:"user_id"`
	RestaurantID    uint        `json:"restaurant_id"`
	RestaurantName  string      `gorm:"size:150" json:"restaurant_name"` // Denormalized at creation
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	TotalAmount     float64     `gorm:"type:decimal(10,2);not null" json:"total_amount"` // Pre-discount, delivery fee included
	DiscountAmount  float64     `gorm:"type:decimal(10,2);default:0.00" json:"discount_amount"`
	FinalAmount     float64     `gorm:"type:decimal(10,2);not null" json:"final_amount"`
	Status          string      `gorm:"size:10;default:'PENDING'" json:"status"` // 'PENDING', 'PREPARING', 'DELIVERED', 'CANCELLED'
	AssignedAdminID uint        `gorm:"index" json:"assigned_admin_id"`
	CreatedAt       time.Time   `json:"created_at"`
}

type OrderItem struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	OrderID    uint    `gorm:"index;not null" json:"order_id"`
	MenuItemID uint    `json:"menu_item_id"`
	Name       string  `gorm:"size:150;not null" json:"name"`
	Price      float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity   int     `gorm:"default:1" json:"quantity"`
	Size       string  `gorm:"size:1" json:"size"`
	Note       string  `gorm:"type:text" json:"note"`
}
