package models

// CartLine pairs a menu item with a positive quantity. Lines live in the
// store's active cart, never in the database: the cart is view-state that
// only becomes durable (as OrderItems) at checkout. A line whose quantity
// drops to 0 or below is removed, not kept at zero.
type CartLine struct {
	MenuItem     MenuItem `json:"menu_item"`
	Quantity     int      `json:"quantity"`
	RestaurantID string   `json:"restaurant_id"`
}
