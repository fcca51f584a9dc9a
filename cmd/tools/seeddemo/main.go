package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/ozgurkaracam/aytas-flyer/internal/modules/campaigns"
	"github.com/ozgurkaracam/aytas-flyer/internal/modules/products"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		log.Fatal("DB_DSN environment variable is required")
	}
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	demo, err := campaigns.SeedDemo(
		context.Background(),
		campaigns.NewRepo(db),
		products.NewRepo(db),
	)
	if err != nil {
		log.Fatalf("Failed to seed demo campaign: %v", err)
	}

	log.Printf("✓ demo campaign created: %s (%s)", demo.Title, demo.ID)
}
