package models

import (
	"time"
)

// DiscountCode is a named percentage-off rule. Codes are stored uppercase;
// lookups must uppercase before matching.
type DiscountCode struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Code       string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Percentage float64   `gorm:"type:decimal(5,2);not null" json:"percentage"` // 0-100
	Active     bool      `gorm:"default:true" json:"active"`
	CreatedAt  time.Time `json:"created_at"`
}
