package models

import "time"

// OrderStatus represents all possible states of a food delivery order
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReady          OrderStatus = "ready"
	StatusPickedUp       OrderStatus = "picked_up"
	StatusOutForDelivery OrderStatus = "out_for_delivery"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

type Order struct {
	ID                    string      `json:"id" gorm:"primaryKey"`
	UserID                string      `json:"user_id" gorm:"not null"`
	RestaurantID          string      `json:"restaurant_id" gorm:"not null;index"`
	Items                 []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	Subtotal              int         `json:"subtotal"`
	DeliveryFee           int         `json:"delivery_fee"`
	Discount              int         `json:"discount"`
	Total                 int         `json:"total"`
	Status                OrderStatus `json:"status" gorm:"not null;index"`
	DeliveryAddress       string      `json:"delivery_address" gorm:"not null"`
	PaymentMethod         string      `json:"payment_method"`
	CouponCode            string      `json:"coupon_code,omitempty"`
	PlacedAt              string      `json:"placed_at"` // human-readable, shown as-is
	EstimatedDeliveryTime string      `json:"estimated_delivery_time"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

// OrderItem snapshots a cart line at checkout. Name and price are copied
// from the menu item so later catalog edits cannot reprice a placed order.
type OrderItem struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	OrderID    string `json:"order_id" gorm:"not null;index"`
	MenuItemID string `json:"menu_item_id" gorm:"not null"`
	Name       string `json:"name"`
	Price      int    `json:"price" gorm:"not null"`
	Quantity   int    `json:"quantity" gorm:"not null"`
	IsVeg      bool   `json:"is_veg"`
}
