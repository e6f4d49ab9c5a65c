package models

// DiscountType tags how a coupon's discount value is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Coupon is a named discount rule. Codes match case-insensitively.
// MaxDiscount caps percentage discounts; 0 means no cap and it is
// ignored for fixed coupons.
type Coupon struct {
	ID            string       `json:"id" gorm:"primaryKey"`
	Code          string       `json:"code" gorm:"uniqueIndex;not null"`
	Description   string       `json:"description"`
	Discount      int          `json:"discount" gorm:"not null"`
	DiscountType  DiscountType `json:"discount_type" gorm:"not null"`
	MinOrderValue int          `json:"min_order_value"`
	MaxDiscount   int          `json:"max_discount,omitempty"`
}
