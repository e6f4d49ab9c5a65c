package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AddItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

type ApplyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetCart returns the cart lines, the applied coupon and the live
// pricing breakdown
func GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": engine.Cart()})
}

// AddCartItem adds one unit of a menu item to the cart
func AddCartItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := engine.AddItem(req.MenuItemID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Added to cart", "cart": view})
}

// SetCartQuantity updates a line's quantity; zero or less removes it
func SetCartQuantity(c *gin.Context) {
	var req SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := engine.SetQuantity(c.Param("itemId"), *req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": view})
}

// RemoveCartItem drops a line from the cart
func RemoveCartItem(c *gin.Context) {
	view, err := engine.RemoveItem(c.Param("itemId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart", "cart": view})
}

// ApplyCoupon resolves a code and applies it to the cart, replacing any
// previously applied coupon
func ApplyCoupon(c *gin.Context) {
	var req ApplyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	coupon, err := engine.ApplyCoupon(req.Code)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Coupon applied!",
		"coupon":  coupon,
		"cart":    engine.Cart(),
	})
}

// RemoveCoupon clears the applied coupon; it always succeeds
func RemoveCoupon(c *gin.Context) {
	engine.RemoveCoupon()
	c.JSON(http.StatusOK, gin.H{"message": "Coupon removed", "cart": engine.Cart()})
}
