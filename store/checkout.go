package store

import (
	"strings"
	"time"

	"quickbite-api/models"
	"quickbite-api/pricing"

	"gorm.io/gorm"
)

const (
	defaultRestaurantAddr = "123 Restaurant St, City"
	orderETA              = "30-35 min"
	taskETA               = "30 min"
)

// Checkout turns the active cart into an Order plus exactly one
// correlated DeliveryTask, as a single transaction. The order starts at
// "confirmed": the demo skips the merchant-acceptance step for live
// checkouts. On success the cart and the applied coupon are cleared
// unconditionally; pricing is frozen into the order and never recomputed.
//
// The engine refuses a blank address itself even though the checkout form
// validates it too — callers are not trusted to pre-validate.
func (s *Store) Checkout(address, paymentMethod string) (models.Order, error) {
	if strings.TrimSpace(address) == "" {
		return models.Order{}, ErrMissingAddress
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.cart) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	quote := pricing.Quote(s.cart, s.coupon)
	restaurantID := s.cart[0].RestaurantID

	items := make([]models.OrderItem, 0, len(s.cart))
	for _, l := range s.cart {
		items = append(items, models.OrderItem{
			MenuItemID: l.MenuItem.ID,
			Name:       l.MenuItem.Name,
			Price:      l.MenuItem.Price,
			Quantity:   l.Quantity,
			IsVeg:      l.MenuItem.IsVeg,
		})
	}

	order := models.Order{
		UserID:                DemoUserID,
		RestaurantID:          restaurantID,
		Items:                 items,
		Subtotal:              quote.Subtotal,
		DeliveryFee:           quote.DeliveryFee,
		Discount:              quote.Discount,
		Total:                 quote.Total,
		Status:                models.StatusConfirmed,
		DeliveryAddress:       address,
		PaymentMethod:         paymentMethod,
		PlacedAt:              time.Now().Format("02/01/2006, 15:04:05"),
		EstimatedDeliveryTime: orderETA,
	}
	if s.coupon != nil {
		order.CouponCode = s.coupon.Code
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		order.ID = nextOrderID(tx)
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		// Snapshot restaurant and customer details onto the task;
		// tasks never look these up again.
		restaurantName := "Unknown Restaurant"
		restaurantAddr := defaultRestaurantAddr
		var restaurant models.Restaurant
		if err := tx.First(&restaurant, "id = ?", restaurantID).Error; err == nil {
			restaurantName = restaurant.Name
			if restaurant.Address != "" {
				restaurantAddr = restaurant.Address
			}
		}
		customerName := "Customer"
		var customer models.User
		if err := tx.First(&customer, "id = ?", DemoUserID).Error; err == nil && customer.Name != "" {
			customerName = customer.Name
		}

		task := models.DeliveryTask{
			ID:                nextTaskID(tx),
			OrderID:           order.ID,
			RestaurantName:    restaurantName,
			RestaurantAddress: restaurantAddr,
			CustomerName:      customerName,
			CustomerAddress:   address,
			Status:            models.TaskAssigned,
			EstimatedTime:     taskETA,
		}
		return tx.Create(&task).Error
	})
	if err != nil {
		return models.Order{}, err
	}

	s.cart = nil
	s.coupon = nil
	s.log.Info("order placed",
		"order_id", order.ID,
		"restaurant_id", restaurantID,
		"total", order.Total,
	)
	return order, nil
}
