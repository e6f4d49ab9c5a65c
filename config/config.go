package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"quickbite-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TrackingInterval is how often the order-tracking simulation advances a
// tracked order by one step. Overridable via TRACKING_INTERVAL_SECONDS.
var TrackingInterval = time.Duration(getEnvInt("TRACKING_INTERVAL_SECONDS", 5)) * time.Second

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

// Port returns the HTTP listen port.
func Port() string {
	return getEnv("PORT", "8080")
}

// OpenDB opens a fresh in-memory SQLite database and migrates the schema.
// Nothing is ever written to disk: the whole catalog lives and dies with
// the process, which is the point of the demo. The connection pool is
// pinned to a single connection because every in-memory SQLite connection
// would otherwise see its own empty database.
func OpenDB() (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&models.User{},
		&models.Restaurant{},
		&models.MenuItem{},
		&models.Coupon{},
		&models.Order{},
		&models.OrderItem{},
		&models.DeliveryTask{},
	)
	if err != nil {
		return nil, err
	}
	return db, nil
}

// MustOpenDB is OpenDB for main: any failure here is fatal.
func MustOpenDB() *gorm.DB {
	db, err := OpenDB()
	if err != nil {
		log.Fatal("Failed to open in-memory database:", err)
	}
	return db
}
