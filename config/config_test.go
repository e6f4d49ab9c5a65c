package config

import (
	"testing"

	"quickbite-api/models"
)

func TestPort(t *testing.T) {
	if got := Port(); got != "8080" {
		t.Errorf("Port() = %s, want default 8080", got)
	}
	t.Setenv("PORT", "9999")
	if got := Port(); got != "9999" {
		t.Errorf("Port() = %s, want 9999", got)
	}
}

func TestOpenDB(t *testing.T) {
	db, err := OpenDB()
	if err != nil {
		t.Fatalf("OpenDB() error = %v", err)
	}

	// the schema must be migrated and writable
	r := models.Restaurant{ID: "t1", Name: "Test Kitchen", IsOpen: true}
	if err := db.Create(&r).Error; err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	var got models.Restaurant
	if err := db.First(&got, "id = ?", "t1").Error; err != nil {
		t.Fatalf("First() error = %v", err)
	}
	if got.Name != "Test Kitchen" {
		t.Errorf("round-tripped name = %s", got.Name)
	}

	// two opens are two independent databases
	db2, err := OpenDB()
	if err != nil {
		t.Fatalf("second OpenDB() error = %v", err)
	}
	var count int64
	db2.Model(&models.Restaurant{}).Count(&count)
	if count != 0 {
		t.Errorf("fresh database has %d restaurants, want 0", count)
	}
}
