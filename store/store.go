// Package store is the application-state engine behind every view. All
// cart, coupon, order and delivery-task operations go through a Store;
// handlers read its outputs and dispatch actions but never touch state
// directly. A mutex sequences events so rapid successive actions on the
// same entity apply in arrival order.
package store

import (
	"log/slog"
	"sync"

	"quickbite-api/models"

	"gorm.io/gorm"
)

// DemoUserID identifies the single implicit customer of the demo; there
// is no sign-in, every cart and order belongs to this user.
const DemoUserID = "user1"

type Store struct {
	db  *gorm.DB
	log *slog.Logger

	mu     sync.Mutex
	cart   []models.CartLine
	coupon *models.Coupon
}

func New(db *gorm.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log}
}

// ── Catalog reads ─────────────────────────────────────────────────

// RestaurantFilter narrows the public restaurant listing.
type RestaurantFilter struct {
	Cuisine  string
	Search   string
	OpenOnly bool
}

func (s *Store) Restaurants(f RestaurantFilter) []models.Restaurant {
	var restaurants []models.Restaurant
	query := s.db.Order("promoted desc, rating desc")
	if f.Cuisine != "" {
		query = query.Where("cuisine LIKE ?", "%"+f.Cuisine+"%")
	}
	if f.Search != "" {
		query = query.Where("name LIKE ?", "%"+f.Search+"%")
	}
	if f.OpenOnly {
		query = query.Where("is_open = ?", true)
	}
	query.Find(&restaurants)
	return restaurants
}

func (s *Store) RestaurantByID(id string) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := s.db.Preload("MenuItems").First(&restaurant, "id = ?", id).Error; err != nil {
		return models.Restaurant{}, ErrItemNotFound
	}
	return restaurant, nil
}

// MenuFilter narrows a restaurant's menu listing.
type MenuFilter struct {
	Category string
	VegOnly  bool
}

func (s *Store) Menu(restaurantID string, f MenuFilter) ([]models.MenuItem, error) {
	var restaurant models.Restaurant
	if err := s.db.First(&restaurant, "id = ?", restaurantID).Error; err != nil {
		return nil, ErrItemNotFound
	}
	var items []models.MenuItem
	query := s.db.Where("restaurant_id = ?", restaurantID)
	if f.Category != "" {
		query = query.Where("category = ?", f.Category)
	}
	if f.VegOnly {
		query = query.Where("is_veg = ?", true)
	}
	query.Find(&items)
	return items, nil
}

func (s *Store) Coupons() []models.Coupon {
	var coupons []models.Coupon
	s.db.Order("code asc").Find(&coupons)
	return coupons
}

// ── Order and task reads ──────────────────────────────────────────

func (s *Store) Orders(status string) []models.Order {
	var orders []models.Order
	query := s.db.Preload("Items").Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Find(&orders)
	return orders
}

func (s *Store) OrderByID(id string) (models.Order, error) {
	var order models.Order
	if err := s.db.Preload("Items").First(&order, "id = ?", id).Error; err != nil {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (s *Store) RestaurantOrders(restaurantID, status string) []models.Order {
	var orders []models.Order
	query := s.db.Preload("Items").
		Where("restaurant_id = ?", restaurantID).
		Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Find(&orders)
	return orders
}

func (s *Store) Tasks(status string) []models.DeliveryTask {
	var tasks []models.DeliveryTask
	query := s.db.Order("created_at asc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	query.Find(&tasks)
	return tasks
}

func (s *Store) TaskByID(id string) (models.DeliveryTask, error) {
	var task models.DeliveryTask
	if err := s.db.First(&task, "id = ?", id).Error; err != nil {
		return models.DeliveryTask{}, ErrTaskNotFound
	}
	return task, nil
}
