package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/DC-NERI/innWise-sub001/config"
	"github.com/DC-NERI/innWise-sub001/jobs"
	"github.com/DC-NERI/innWise-sub001/routes"
	"github.com/DC-NERI/innWise-sub001/services"
	"github.com/DC-NERI/innWise-sub001/validator"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file, using existing environment: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	validator.RegisterCustomValidations()

	config.InitWebSocket(router, m)

	notificationSvc := routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	jobs.SetNotificationPruner(notificationSvc)
	jobs.SetInspectionReporter(services.NewHousekeepingService(config.DB, nil, nil, nil))
	if err := jobs.InitCronJobs(c); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
