package models

// CartItem is a product snapshot plus the quantity the shopper wants.
// The snapshot is deliberate: price and discount are frozen at add time so a
// receipt reflects what the shopper saw, even if the admin edits the product
// before checkout. The cart holds at most one item per product ID.
type CartItem struct {
	Product
	Quantity int `json:"quantity"`
}
