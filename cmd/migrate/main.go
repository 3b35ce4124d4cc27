package main

import (
	"context"
	"log"
	"os"
	"strings"

	"billscan-backend/internal/shared/storage/db"
)

// Applies embedded migrations against DATABASE_URL and exits.
func main() {
	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		log.Fatalf("DATABASE_URL is required")
	}

	ctx := context.Background()
	opts := db.OptionsFromEnv(db.Options{MaxOpenConns: 1, MaxIdleConns: 1})
	sqlDB, err := db.Connect(ctx, databaseURL, opts)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer sqlDB.Close()

	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Printf("migrations applied")
}
