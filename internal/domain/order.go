package domain

import "time"

// Order statuses as reported by the server. The client only observes them.
const (
	OrderStatusPlaced     = "placed"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// Order is an immutable snapshot of a checkout: the cart lines as they were
// at purchase time plus shipping details and the priced total. Later cart
// changes never alter a placed order.
type Order struct {
	ID         string     `json:"id"`
	Email      string     `json:"email"`
	Cart       []CartItem `json:"cart"`
	Name       string     `json:"name,omitempty"`
	Address    string     `json:"address,omitempty"`
	City       string     `json:"city,omitempty"`
	PostalCode string     `json:"postalCode,omitempty"`
	Phone      string     `json:"phone,omitempty"`
	Subtotal   float64    `json:"subtotal"`
	Shipping   float64    `json:"shipping"`
	Tax        float64    `json:"tax"`
	Total      float64    `json:"total"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"createdAt"`
}
