package models

import (
	"time"
)

const (
	RoleOwner = "OWNER"
	RoleAdmin = "ADMIN"
	RoleUser  = "USER"
)

type User struct {
	ID                   uint      `gorm:"primaryKey" json:"id"`
	Name                 string    `gorm:"size:100;not null" json:"name"`
	Email                string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone                string    `gorm:"size:20" json:"phone"`
	PasswordHash         string    `gorm:"size:255;not null" json:"-"`
	Role                 string    `gorm:"size:10;not null;default:'USER'" json:"role"` // 'OWNER', 'ADMIN', 'USER'
	AssignedRestaurantID *uint     `json:"assigned_restaurant_id"`                      // For delivery agents
	CreatedAt            time.Time `json:"created_at"`
}

func ValidRole(role string) bool {
	switch role {
	case RoleOwner, RoleAdmin, RoleUser:
		return true
	}
	return false
}
