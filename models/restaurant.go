package models

import "time"

type Restaurant struct {
	ID           string     `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"not null"`
	Image        string     `json:"image"`
	Cuisine      string     `json:"cuisine"` // comma-joined list, e.g. "Indian,North Indian,Biryani"
	Rating       float64    `json:"rating" gorm:"default:0"`
	DeliveryTime string     `json:"delivery_time"`
	PriceForTwo  int        `json:"price_for_two"`
	Distance     string     `json:"distance"`
	Address      string     `json:"address"`
	IsOpen       bool       `json:"is_open" gorm:"default:true"`
	Promoted     bool       `json:"promoted" gorm:"default:false"`
	Offers       string     `json:"offers,omitempty"` // comma-joined promo blurbs
	MenuItems    []MenuItem `json:"menu_items,omitempty" gorm:"foreignKey:RestaurantID"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// MenuItem is a purchasable catalog entry. Prices are whole rupees.
// The catalog is seeded once and never mutated at runtime.
type MenuItem struct {
	ID           string    `json:"id" gorm:"primaryKey"`
	RestaurantID string    `json:"restaurant_id" gorm:"not null;index"`
	Name         string    `json:"name" gorm:"not null"`
	Description  string    `json:"description"`
	Price        int       `json:"price" gorm:"not null"`
	Category     string    `json:"category"`
	IsVeg        bool      `json:"is_veg" gorm:"default:false"`
	IsBestseller bool      `json:"is_bestseller" gorm:"default:false"`
	Rating       float64   `json:"rating,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
