package handlers

import (
	"errors"
	"net/http"

	"quickbite-api/statemachine"
	"quickbite-api/store"

	"github.com/gin-gonic/gin"
)

// GetRestaurantOrders is the restaurant dashboard: its orders, a
// per-status summary and the average order value (whole rupees,
// truncated).
func GetRestaurantOrders(c *gin.Context) {
	restaurantID := c.DefaultQuery("restaurant_id", "1")
	orders := engine.RestaurantOrders(restaurantID, c.Query("status"))

	summary := map[string]int{}
	revenue := 0
	for _, o := range orders {
		summary[string(o.Status)]++
		revenue += o.Total
	}
	avg := 0
	if len(orders) > 0 {
		avg = revenue / len(orders)
	}

	c.JSON(http.StatusOK, gin.H{
		"restaurant_id":       restaurantID,
		"order_summary":       summary,
		"average_order_value": avg,
		"count":               len(orders),
		"orders":              orders,
	})
}

// AcceptOrder moves an order into preparation
func AcceptOrder(c *gin.Context) {
	order, err := engine.AcceptOrder(c.Param("id"))
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order accepted",
		"order_id": order.ID,
		"status":   order.Status,
	})
}

// RejectOrder cancels a pending order
func RejectOrder(c *gin.Context) {
	order, err := engine.RejectOrder(c.Param("id"))
	if err != nil {
		respondTransitionError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "Order rejected",
		"order_id": order.ID,
		"status":   order.Status,
	})
}

// respondTransitionError surfaces rejected lifecycle moves with the
// entity's current status and where it could legally go next.
func respondTransitionError(c *gin.Context, err error) {
	var trErr *store.TransitionError
	if errors.As(err, &trErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":             "Invalid state transition",
			"current_status":    trErr.Current,
			"reason":            trErr.Reason.Error(),
			"valid_next_states": statemachine.ValidTransitionsFrom(trErr.Current),
		})
		return
	}
	var taskErr *store.TaskTransitionError
	if errors.As(err, &taskErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":          "Invalid state transition",
			"current_status": taskErr.Current,
			"reason":         taskErr.Reason.Error(),
		})
		return
	}
	respondError(c, err)
}
