package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type PlaceOrderRequest struct {
	DeliveryAddress string `json:"delivery_address" binding:"required"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
}

// PlaceOrder checks the cart out into an order plus its delivery task
// (customer only)
func PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	order, err := engine.Checkout(req.DeliveryAddress, req.PaymentMethod)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message": "Order placed successfully!",
		"order":   order,
	})
}

// GetMyOrders returns all orders, newest first
func GetMyOrders(c *gin.Context) {
	orders := engine.Orders(c.Query("status"))
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}

// GetOrderDetail returns a single order
func GetOrderDetail(c *gin.Context) {
	order, err := engine.OrderByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": order})
}

// StartTracking begins the delivery simulation for an order. The
// simulation nudges the order along the tracking timeline until it is
// delivered or the view stops watching.
func StartTracking(c *gin.Context) {
	orderID := c.Param("id")
	if err := tracker.Start(orderID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Tracking started",
		"order_id": orderID,
	})
}

// StopTracking cancels the delivery simulation; called when the tracking
// view is torn down. Stopping an untracked order succeeds quietly.
func StopTracking(c *gin.Context) {
	orderID := c.Param("id")
	tracker.Stop(orderID)
	c.JSON(http.StatusOK, gin.H{
		"message":  "Tracking stopped",
		"order_id": orderID,
	})
}
