package domain

// WishlistItem is a product saved for later. There is no quantity; adding the
// same product twice yields two entries (the server does not dedup).
type WishlistItem struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Image     string  `json:"image,omitempty"`
	InStock   bool    `json:"inStock"`
}
