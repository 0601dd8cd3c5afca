package main

import (
	"employee_management/internal/config" // Custom import path (Config)
	"employee_management/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Structured logging
)

// Main entry point for migration and seeding
func main() {
	cfg := config.LoadConfig() // Load configuration
	config.SetupLogger(cfg)

	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatalf("failed to migrate: %v", err)
	}
	if err := db.SeedAdmin(gdb, cfg.SeedAdminEmail); err != nil {
		logrus.Fatalf("failed to seed: %v", err)
	}
}
