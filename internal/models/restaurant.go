package models

import (
	"time"
)

type Restaurant struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:150;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Image       string     `gorm:"size:255" json:"image"`
	DeliveryFee float64    `gorm:"type:decimal(10,2);default:0.00" json:"delivery_fee"`
	Rating      float64    `gorm:"type:decimal(3,1);default:5.0" json:"rating"`
	CreatedAt   time.Time  `json:"created_at"`
	MenuItems   []MenuItem `gorm:"foreignKey:RestaurantID" json:"-"`
}

type MenuItem struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RestaurantID uint      `gorm:"index;not null" json:"restaurant_id"`
	Name         string    `gorm:"size:150;not null" json:"name"`
	Description  string    `gorm:"type:text" json:"description"`
	Price        float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Category     string    `gorm:"size:100" json:"category"`
	Available    bool      `gorm:"default:true" json:"available"`
	CreatedAt    time.Time `json:"created_at"`
}
