// Package pricing is the single source of the checkout arithmetic. Cart and
// checkout surfaces must both read from here so their numbers cannot drift.
package pricing

import "bloomshop/internal/domain"

const (
	// FreeShippingThreshold is the subtotal above which shipping is free.
	FreeShippingThreshold = 300.0
	// FlatShippingRate applies below the free-shipping threshold.
	FlatShippingRate = 4.99
	// TaxRate is applied to the subtotal only, not to shipping.
	TaxRate = 0.10
)

// Quote is a fully priced cart.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// QuoteItems prices a cart snapshot. Shipping is the flat rate unless the
// subtotal clears the free-shipping threshold.
func QuoteItems(items []domain.CartItem) Quote {
	var q Quote
	for _, it := range items {
		q.Subtotal += it.Price * float64(it.Quantity)
	}
	if q.Subtotal <= FreeShippingThreshold {
		q.Shipping = FlatShippingRate
	}
	q.Tax = q.Subtotal * TaxRate
	q.Total = q.Subtotal + q.Tax + q.Shipping
	return q
}

// Subtotal is the sum of price times quantity over all lines.
func Subtotal(items []domain.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

// ItemCount is the sum of quantities, not the number of lines.
func ItemCount(items []domain.CartItem) int {
	var n int
	for _, it := range items {
		n += it.Quantity
	}
	return n
}
