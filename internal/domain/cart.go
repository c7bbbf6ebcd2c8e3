package domain

// CartItem is one cart line: a product reference plus a quantity. The server
// assigns the line ID on create; quantity is never below 1, removal deletes
// the line instead of zeroing it.
type CartItem struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	Image     string  `json:"image,omitempty"`
}
