package services

import (
	"math"

	"golang-storefront-backend/internal/models"
)

// TaxRate is the flat tax applied to the cart subtotal.
const TaxRate = 0.10

// CalculateTotals derives subtotal, tax and total from the given cart
// lines. Each stage is rounded to cents independently: tax is computed
// from the already-rounded subtotal, and total from the two rounded
// values. Changing this ordering changes cent values, so it stays fixed.
func CalculateTotals(lines []models.CartLine) models.Totals {
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Product.Price * float64(line.Quantity)
	}
	subtotal = round2(subtotal)
	tax := round2(subtotal * TaxRate)
	total := round2(subtotal + tax)

	return models.Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
