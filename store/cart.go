package store

import (
	"strings"

	"quickbite-api/models"
	"quickbite-api/pricing"
)

// CartView is what the cart screen renders: the lines, the applied coupon
// if any, and the derived pricing breakdown. The breakdown is recomputed
// on every read; it is never cached.
type CartView struct {
	Items   []models.CartLine `json:"items"`
	Coupon  *models.Coupon    `json:"coupon,omitempty"`
	Pricing pricing.Breakdown `json:"pricing"`
}

func (s *Store) Cart() CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cartViewLocked()
}

func (s *Store) cartViewLocked() CartView {
	items := make([]models.CartLine, len(s.cart))
	copy(items, s.cart)
	var coupon *models.Coupon
	if s.coupon != nil {
		c := *s.coupon
		coupon = &c
	}
	return CartView{
		Items:   items,
		Coupon:  coupon,
		Pricing: pricing.Quote(s.cart, s.coupon),
	}
}

// AddItem puts one unit of a menu item into the cart, incrementing the
// existing line when the item is already there.
func (s *Store) AddItem(menuItemID string) (CartView, error) {
	var item models.MenuItem
	if err := s.db.First(&item, "id = ?", menuItemID).Error; err != nil {
		return CartView{}, ErrItemNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].MenuItem.ID == menuItemID {
			s.cart[i].Quantity++
			return s.cartViewLocked(), nil
		}
	}
	s.cart = append(s.cart, models.CartLine{
		MenuItem:     item,
		Quantity:     1,
		RestaurantID: item.RestaurantID,
	})
	return s.cartViewLocked(), nil
}

// SetQuantity updates a line's quantity; anything at or below zero
// removes the line entirely.
func (s *Store) SetQuantity(menuItemID string, quantity int) (CartView, error) {
	if quantity <= 0 {
		return s.RemoveItem(menuItemID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].MenuItem.ID == menuItemID {
			s.cart[i].Quantity = quantity
			return s.cartViewLocked(), nil
		}
	}
	return CartView{}, ErrItemNotFound
}

func (s *Store) RemoveItem(menuItemID string) (CartView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].MenuItem.ID == menuItemID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			return s.cartViewLocked(), nil
		}
	}
	return CartView{}, ErrItemNotFound
}

// ApplyCoupon resolves a user-entered code against the coupon catalog,
// matching case-insensitively. A valid apply replaces any previously
// applied coupon; at most one coupon is ever active. On any failure the
// applied-coupon state is left untouched.
func (s *Store) ApplyCoupon(code string) (models.Coupon, error) {
	code = strings.TrimSpace(code)
	var coupon models.Coupon
	if err := s.db.First(&coupon, "code = ? COLLATE NOCASE", code).Error; err != nil {
		return models.Coupon{}, ErrInvalidCoupon
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if pricing.Subtotal(s.cart) < coupon.MinOrderValue {
		return models.Coupon{}, &MinimumNotMetError{Min: coupon.MinOrderValue}
	}
	c := coupon
	s.coupon = &c
	return coupon, nil
}

// RemoveCoupon clears the applied coupon unconditionally.
func (s *Store) RemoveCoupon() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = nil
}
