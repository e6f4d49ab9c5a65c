package models

import "time"

// TaskStatus is the delivery-side progression, a strict subsequence of the
// order lifecycle.
type TaskStatus string

const (
	TaskAssigned  TaskStatus = "assigned"
	TaskPickedUp  TaskStatus = "picked_up"
	TaskDelivered TaskStatus = "delivered"
)

// DeliveryTask is the fulfillment counterpart of an Order, correlated by
// OrderID (a weak reference — the order may legitimately not exist for
// pre-seeded tasks). Restaurant and customer details are denormalized at
// creation time; there is no live lookup afterward.
type DeliveryTask struct {
	ID                string     `json:"id" gorm:"primaryKey"`
	OrderID           string     `json:"order_id" gorm:"not null;index"`
	RestaurantName    string     `json:"restaurant_name"`
	RestaurantAddress string     `json:"restaurant_address"`
	CustomerName      string     `json:"customer_name"`
	CustomerAddress   string     `json:"customer_address"`
	Status            TaskStatus `json:"status" gorm:"not null;index"`
	EstimatedTime     string     `json:"estimated_time"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}
