// Package pricing turns cart lines into checkout totals.
package pricing

import (
	"ordering-app/internal/models"
)

// Size multipliers applied to a menu item's base price when it enters the cart.
const (
	multiplierSmall  = 1.0
	multiplierMedium = 1.2
	multiplierLarge  = 1.5
)

type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	DeliveryFee    float64 `json:"delivery_fee"`
	TotalAmount    float64 `json:"total_amount"` // Subtotal + DeliveryFee, pre-discount
	DiscountAmount float64 `json:"discount_amount"`
	FinalAmount    float64 `json:"final_amount"`
}

// UnitPrice returns the size-adjusted price for one cart line.
func UnitPrice(basePrice float64, size string) float64 {
	switch size {
	case models.SizeMedium:
		return basePrice * multiplierMedium
	case models.SizeLarge:
		return basePrice * multiplierLarge
	default:
		return basePrice * multiplierSmall
	}
}

// ComputeTotals prices a cart. Line prices already carry the size multiplier,
// and quantity is folded in per line (always 1), so the subtotal is a plain
// sum. The discount percentage applies to subtotal plus delivery fee; a zero
// percentage yields a zero discount.
func ComputeTotals(items []models.CartItem, deliveryFee, promoPercentage float64) Totals {
	var subtotal float64
	for _, item := range items {
		subtotal += item.Price
	}

	total := subtotal + deliveryFee

	var discount float64
	if promoPercentage > 0 {
		discount = total * promoPercentage / 100.0
	}

	return Totals{
		Subtotal:       subtotal,
		DeliveryFee:    deliveryFee,
		TotalAmount:    total,
		DiscountAmount: discount,
		FinalAmount:    total - discount,
	}
}
