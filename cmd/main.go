package main

import (
	"log"

	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/api"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/api/routes"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/config"
	"github.com/werkudaraevent-eng/Eventregistrationwebsite-sub000/internal/middleware"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to database
	if err := config.ConnectDB(); err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := config.MigrateAllModels(true); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Register metrics and start the rate limiter janitor
	middleware.InitPrometheus()
	go middleware.CleanupVisitors()

	// Create and configure Fiber app
	app := api.NewServer()

	// Register routes
	routes.Register(app)

	// Start server
	if err := api.StartServer(app); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
