package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/stayvista/stayvista-server/internal/db"
	"github.com/stayvista/stayvista-server/internal/handlers"
	"github.com/stayvista/stayvista-server/internal/storage"
	"github.com/stayvista/stayvista-server/internal/store"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	// Initialize Fiber
	app := fiber.New()
	// Initialize MinIO
	storage.InitMinio()
	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173, http://localhost:5174, https://stayvista-ba29a.web.app",
		AllowCredentials: true,
	}))

	// Get MongoDB URI from environment
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017/stayvista" // Default fallback
	}

	// Connect to MongoDB
	mongoDB := db.ConnectMongoDB(mongoURI, "stayvista")

	users := store.NewMongoUserStore(mongoDB)
	rooms := store.NewMongoRoomStore(mongoDB)
	bookings := store.NewMongoBookingStore(mongoDB)

	handlers.SetupRoutes(app, users, rooms, bookings)

	// Get port from environment
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000" // Default port
	}

	// Start server
	log.Fatal(app.Listen(":" + port))
}
