package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/swaggo/files"
	"github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/wanderplan/trip-planner-api/docs" // Import generated docs
	"github.com/wanderplan/trip-planner-api/internal/config"
	"github.com/wanderplan/trip-planner-api/internal/controllers"
	"github.com/wanderplan/trip-planner-api/internal/database"
	"github.com/wanderplan/trip-planner-api/internal/middleware"
	"github.com/wanderplan/trip-planner-api/internal/models"
	"github.com/wanderplan/trip-planner-api/internal/services"
)

var (
	db              *gorm.DB
	userService     services.UserService
	tripService     services.TripService
	authController  *controllers.AuthController
	userController  controllers.UserController
	tripController  controllers.TripController
	statsController *controllers.StatsController
	configuration   *config.Config
)

// @title Trip Planner API
// @version 1.0
// @description A trip-planning backend: accounts, trips and admin statistics
// @host localhost:8080
// @BasePath /
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	db = setupDatabase(configuration)
	defer func() {
		if err := database.Close(db); err != nil {
			log.WithError(err).Warn("Failed to close database cleanly")
		}
	}()

	// Initialize services and controllers
	userService = services.NewUserService(db)
	tripService = services.NewTripService(db)
	authController = controllers.NewAuthController(userService)
	userController = controllers.NewUserController(userService)
	tripController = controllers.NewTripController(tripService)
	statsController = controllers.NewStatsController(userService, tripService)

	// Initialize Gin router
	router := setupRouter(configuration)

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	if err := router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port)); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	log.Info("Loading configuration from environment variables")
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection and migrates the schema
func setupDatabase(conf *config.Config) *gorm.DB {
	handle, err := database.InitDatabase(database.FromConfig(conf))
	checkPanicErr(err)

	// Migrate the schema
	checkPanicErr(handle.AutoMigrate(&models.User{}, &models.Trip{}))

	return handle
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(conf *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(corsMiddleware(conf))

	// Define routes
	setupRoutes(router)

	return router
}

// corsMiddleware builds the CORS policy from the configured origins
func corsMiddleware(conf *config.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(conf.CORSOrigins) == 1 && conf.CORSOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = conf.CORSOrigins
	}
	return cors.New(corsConfig)
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	api := router.Group("/api")
	{
		// Accounts
		api.POST("/signup", authController.Signup)
		api.POST("/login", authController.Login)

		// Admin user management
		api.GET("/users", userController.GetAllUsers)
		api.PUT("/users/:id", userController.UpdateUser)
		api.DELETE("/users/:id", userController.DeleteUser)

		// Trips
		api.POST("/trips", tripController.CreateTrip)
		api.GET("/trips/:email", tripController.GetTripsByEmail)
		api.PUT("/trips/:id", tripController.UpdateTrip)
		api.DELETE("/trips/:id", tripController.DeleteTrip)

		// Admin statistics
		api.GET("/stats", statsController.GetStats)
	}

	// Frontend assets, when a build is present
	if _, err := os.Stat("./public"); err == nil {
		router.Static("/public", "./public")
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "trip-planner-api",
	})
}
