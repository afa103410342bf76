package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/sirupsen/logrus"

	"github.com/conduzpt/fleet-backend/handlers"
	"github.com/conduzpt/fleet-backend/repository"
	"github.com/conduzpt/fleet-backend/routes"
	"github.com/conduzpt/fleet-backend/services"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Warn(".env file not found, using environment variables")
	}

	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Conduz Fleet API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.WithError(err).Warn("failed to initialize New Relic")
	}

	// Initialize database
	db, err := repository.Connect()
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}
	defer db.Close()

	// Repositories and transactional store
	weeklyRepo := repository.NewWeeklyRecordRepository(db)
	financingRepo := repository.NewFinancingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	store := repository.NewStore(db, log)

	// Services
	payoutService := services.NewPayoutService()
	financingService := services.NewFinancingService(financingRepo, log)
	weeklyService := services.NewWeeklyService(weeklyRepo, financingRepo, payoutService, financingService, log)
	paymentService := services.NewPaymentService(store, paymentRepo, financingService, log)

	// Handlers
	weeklyHandler := handlers.NewWeeklyRecordHandler(weeklyService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	financingHandler := handlers.NewFinancingHandler(financingService)

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to the admin frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, weeklyHandler, paymentHandler, financingHandler)

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.WithField("port", port).Info("server starting")
	if err := router.Run(":" + port); err != nil {
		log.WithError(err).Fatal("failed to start server")
	}
}
