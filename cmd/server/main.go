// @title Celebrity Pen Pal API
// @version 1.0
// @description Browse celebrity fan-mail profiles, send handwritten letters and chat on the forum
// @BasePath /
package main

import (
	"log"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/config"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/db"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/handlers"
	"github.com/VirtualEmployee12345/celebrity-pen-pal/internal/services"
)

func main() {

	// 1. Load .env when present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	cfg := config.Load()

	// 2. Make sure the data directory exists
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		log.Fatal("Failed to create data directory: ", err)
	}

	// 3. Open and prepare the database
	dbPath := filepath.Join(cfg.DataDir, "celebrity-pen-pal.db")
	log.Println("Database path:", dbPath)

	database, err := db.Connect(dbPath)
	if err != nil {
		log.Fatal("Database connection error: ", err)
	}
	if err := db.Migrate(database); err != nil {
		log.Fatal("Migration error: ", err)
	}
	if err := db.Seed(database); err != nil {
		log.Fatal("Seed error: ", err)
	}

	// 4. Wire optional integrations
	var fulfillment services.Fulfiller
	if cfg.Handwrytten.Configured() {
		fulfillment = services.NewHandwryttenClient(cfg.Handwrytten.APIKey, cfg.Handwrytten.APISecret)
		log.Println("Handwrytten fulfillment enabled")
	} else {
		log.Println("Handwrytten credentials missing, letters will be queued as pending")
	}

	var notifier services.OwnerNotifier
	if cfg.SMTP.Configured() {
		notifier = services.NewNotifier(cfg.SMTP)
		log.Println("Owner email notifications enabled")
	}

	letters := services.NewLetterService(database, fulfillment, notifier)
	h := handlers.NewHandler(database, letters)

	// 5. Configure the server
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
	}))

	h.SetupRoutes(r)

	// 6. Swagger
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 7. Start
	log.Println("Celebrity Penpal server running on port", cfg.Port)
	if err := r.Run("0.0.0.0:" + cfg.Port); err != nil {
		log.Fatal("Server error: ", err)
	}
}
