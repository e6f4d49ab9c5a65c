package routes

import (
	"quickbite-api/handlers"
	"quickbite-api/middleware"
	"quickbite-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/restaurants/:id/menu", handlers.GetMenu)
		public.GET("/coupons", handlers.ListCoupons)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Customer routes: cart, coupon, checkout, tracking ──────────
	customer := r.Group("/api")
	customer.Use(middleware.RoleRequired(models.RoleCustomer))
	{
		customer.GET("/cart", handlers.GetCart)
		customer.POST("/cart/items", handlers.AddCartItem)
		customer.PUT("/cart/items/:itemId", handlers.SetCartQuantity)
		customer.DELETE("/cart/items/:itemId", handlers.RemoveCartItem)
		customer.POST("/cart/coupon", handlers.ApplyCoupon)
		customer.DELETE("/cart/coupon", handlers.RemoveCoupon)

		customer.POST("/customer/orders", handlers.PlaceOrder)
		customer.GET("/customer/orders", handlers.GetMyOrders)
		customer.GET("/customer/orders/:id", handlers.GetOrderDetail)
		customer.POST("/customer/orders/:id/track", handlers.StartTracking)
		customer.DELETE("/customer/orders/:id/track", handlers.StopTracking)
	}

	// ── Restaurant dashboard routes ────────────────────────────────
	restaurant := r.Group("/api/restaurant")
	restaurant.Use(middleware.RoleRequired(models.RoleRestaurant))
	{
		restaurant.GET("/orders", handlers.GetRestaurantOrders)
		restaurant.PUT("/orders/:id/accept", handlers.AcceptOrder)
		restaurant.PUT("/orders/:id/reject", handlers.RejectOrder)
	}

	// ── Delivery partner routes ────────────────────────────────────
	delivery := r.Group("/api/delivery")
	delivery.Use(middleware.RoleRequired(models.RoleDelivery))
	{
		delivery.GET("/tasks", handlers.GetTasks)
		delivery.GET("/tasks/:id", handlers.GetTask)
		delivery.PUT("/tasks/:id/pickup", handlers.PickupTask)
		delivery.PUT("/tasks/:id/complete", handlers.CompleteTask)
	}
}
