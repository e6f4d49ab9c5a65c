package handlers

import (
	"net/http"

	"quickbite-api/statemachine"
	"quickbite-api/store"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns the browsable restaurant catalog (public)
func ListRestaurants(c *gin.Context) {
	restaurants := engine.Restaurants(store.RestaurantFilter{
		Cuisine:  c.Query("cuisine"),
		Search:   c.Query("search"),
		OpenOnly: c.Query("open") == "true",
	})
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu
func GetRestaurant(c *gin.Context) {
	restaurant, err := engine.RestaurantByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": restaurant})
}

// GetMenu returns the menu for a specific restaurant (public)
func GetMenu(c *gin.Context) {
	items, err := engine.Menu(c.Param("id"), store.MenuFilter{
		Category: c.Query("category"),
		VegOnly:  c.Query("is_veg") == "true",
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restaurant not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(items),
		"menu":  items,
	})
}

// ListCoupons returns every available coupon (public)
func ListCoupons(c *gin.Context) {
	coupons := engine.Coupons()
	c.JSON(http.StatusOK, gin.H{
		"count":   len(coupons),
		"coupons": coupons,
	})
}

// GetStateMachineInfo returns the order and task lifecycles for informational purposes
func GetStateMachineInfo(c *gin.Context) {
	var transitions []gin.H
	for _, t := range statemachine.GetAllTransitions() {
		transitions = append(transitions, gin.H{
			"from": t.From, "to": t.To, "actor": t.Actor,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"order_state_machine": transitions,
		"task_progression":    []string{"assigned", "picked_up", "delivered"},
		"tracking_timeline":   statemachine.DisplaySequence(),
		"terminal_states":     []string{"delivered", "cancelled"},
		"description":         "Food ordering lifecycle: orders are driven by restaurant and delivery-partner actions; delivery tasks drive their correlated order forward",
	})
}
