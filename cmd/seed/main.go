// Command main runs the database seeder for the DEV 404 catalog.
package main

import (
	"flag"
	"log"

	"dev404/internal/config"
	"dev404/internal/database"
	"dev404/internal/seed"
)

func main() {
	// Parse command line flags
	shouldClean := flag.Bool("clean", true, "Clean catalog tables before seeding")
	demo := flag.Bool("demo", false, "Also generate fake signups and contact messages")
	demoSignups := flag.Int("demo-signups", 25, "Number of demo signups to create")
	demoMessages := flag.Int("demo-messages", 10, "Number of demo contact messages to create")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		ShouldClean:  *shouldClean,
		Demo:         *demo,
		DemoSignups:  *demoSignups,
		DemoMessages: *demoMessages,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! The catalog is populated.")
}
