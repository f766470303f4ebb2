package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"gamehub-be/internal/cache"
	"gamehub-be/internal/completion"
	"gamehub-be/internal/config"
	"gamehub-be/internal/controllers"
	"gamehub-be/internal/database"
	"gamehub-be/internal/jwt"
	"gamehub-be/internal/middleware"
	"gamehub-be/internal/repository"
	"gamehub-be/internal/service"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Open the database pool. A database outage at startup is logged and
	// the server keeps running in a degraded state; requests that need
	// the database fail with 500 until it comes back.
	db, err := database.Open(cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.WaitReady(context.Background(), db); err != nil {
		log.Printf("Warning: database not reachable (%v). Continuing in degraded mode.", err)
	} else {
		log.Println("Connected to database")
		if err := database.RunMigrations(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize Redis cache (optional - continue if Redis is unavailable)
	var cacheClient cache.Cache
	if cfg.RedisURL != "" {
		cacheClient, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis (%v). Continuing without cache.", err)
			cacheClient = nil
		} else {
			log.Println("Connected to Redis cache")
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	gameRepo := repository.NewGameRepository(db)

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWTSecret,
		time.Duration(cfg.JWTTTLHours)*time.Hour,
	)

	// Initialize completion client
	completionClient := completion.NewClient(cfg.OpenAIBaseURL, cfg.OpenAIAPIKey)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService)
	chatService := service.NewChatService(gameRepo, completionClient, cacheClient, cfg.OpenAIModel)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	chatController := controllers.NewChatController(chatService)

	// Global rate limiter: per-client budget across all API routes
	rateLimiter := middleware.NewRateLimiter(
		cfg.RateLimitRequests,
		time.Duration(cfg.RateLimitWindowMinutes)*time.Minute,
	)

	// Create a Gin router
	router := gin.Default()

	// CORS: explicit origin allow-list, GET and POST only
	router.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "GameHub Backend Running")
	})

	// Health check endpoint (no rate limiting)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// API routes group with global rate limiting
	api := router.Group("/api")
	api.Use(rateLimiter.LimitMiddleware())
	{
		api.POST("/register", authController.Register)
		api.POST("/login", authController.Login)

		// Protected routes - require JWT authentication
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			protected.GET("/profile", authController.Profile)
		}

		api.POST("/recommend", chatController.Recommend)
		api.POST("/support", chatController.Support)
	}

	log.Printf("Server running on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
