package main

import (
	"log"
	"net/http"
	"os"

	"quickbite-api/config"
	"quickbite-api/handlers"
	"quickbite-api/logger"
	"quickbite-api/middleware"
	"quickbite-api/routes"
	"quickbite-api/store"
	"quickbite-api/tracking"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	appLog := logger.New("quickbite-api")

	// In-memory database, seeded with the demo catalog
	db := config.MustOpenDB()
	engine := store.New(db, appLog)
	if err := engine.Seed(); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	tracker := tracking.NewSimulator(engine, appLog, config.TrackingInterval)
	defer tracker.Shutdown()

	handlers.Init(engine, tracker)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(appLog))
	r.Use(middleware.CORS())

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "QuickBite Food Ordering API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍔 Welcome to the QuickBite Food Ordering API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"roles":   []string{"customer", "restaurant", "delivery"},
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := config.Port()
	log.Printf("🚀 Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
