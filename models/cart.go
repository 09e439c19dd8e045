package models

// CartItem is one aggregated line of a shopping cart: repeated adds of the
// same product accumulate into the quantity.
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}
