package models

import "time"

// UserRole defines the three marketplace roles. There is no authentication
// in this demo; callers simply declare a role per request.
type UserRole string

const (
	RoleCustomer   UserRole = "customer"
	RoleRestaurant UserRole = "restaurant"
	RoleDelivery   UserRole = "delivery"
)

// User is the single seeded demo customer whose name and address are
// snapshotted onto delivery tasks at checkout.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      UserRole  `json:"role" gorm:"not null;default:'customer'"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
