// Package pricing computes cart totals. Everything here is a pure function
// over integer rupees: callers re-run Quote after every cart or coupon
// mutation instead of caching a breakdown anywhere.
package pricing

import "quickbite-api/models"

// DeliveryFee is the flat per-order charge, waived for an empty cart.
const DeliveryFee = 40

// Breakdown is the derived money view of a cart.
// Total always equals Subtotal + DeliveryFee - Discount.
type Breakdown struct {
	Subtotal    int `json:"subtotal"`
	DeliveryFee int `json:"delivery_fee"`
	Discount    int `json:"discount"`
	Total       int `json:"total"`
}

// Subtotal sums price×quantity over the lines. Order of lines does not
// matter and an empty cart yields 0.
func Subtotal(lines []models.CartLine) int {
	sum := 0
	for _, l := range lines {
		sum += l.MenuItem.Price * l.Quantity
	}
	return sum
}

// CouponDiscount returns the discount a coupon grants against a subtotal.
// A nil coupon, or one whose minimum order value is not met, grants 0 —
// an inapplicable coupon is silently ignored, never an error here.
// Percentage discounts truncate to whole rupees and respect MaxDiscount
// when a cap is set. Fixed discounts are clamped to the subtotal so the
// total can never drop below the delivery fee.
func CouponDiscount(subtotal int, coupon *models.Coupon) int {
	if coupon == nil || subtotal < coupon.MinOrderValue {
		return 0
	}
	switch coupon.DiscountType {
	case models.DiscountPercentage:
		d := subtotal * coupon.Discount / 100
		if coupon.MaxDiscount > 0 && d > coupon.MaxDiscount {
			d = coupon.MaxDiscount
		}
		return d
	case models.DiscountFixed:
		if coupon.Discount > subtotal {
			return subtotal
		}
		return coupon.Discount
	default:
		return 0
	}
}

// Quote produces the full breakdown for a cart and an optionally applied
// coupon. The delivery fee applies only when the cart is non-empty.
func Quote(lines []models.CartLine, coupon *models.Coupon) Breakdown {
	subtotal := Subtotal(lines)
	fee := 0
	if subtotal > 0 {
		fee = DeliveryFee
	}
	discount := CouponDiscount(subtotal, coupon)
	return Breakdown{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Discount:    discount,
		Total:       subtotal + fee - discount,
	}
}
