package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/partymatcher/party-matchmaker-backend/config"
	"github.com/partymatcher/party-matchmaker-backend/database"
	"github.com/partymatcher/party-matchmaker-backend/internal/event"
	"github.com/partymatcher/party-matchmaker-backend/internal/guest"
	"github.com/partymatcher/party-matchmaker-backend/internal/matching"
	"github.com/partymatcher/party-matchmaker-backend/internal/question"
	"github.com/partymatcher/party-matchmaker-backend/internal/response"
	"github.com/partymatcher/party-matchmaker-backend/middleware"
	"github.com/partymatcher/party-matchmaker-backend/routes"
)

func main() {
	cfg := config.Load()
	db := database.Connect(cfg)

	// Init Redis (matching run locks + rate limiter store)
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Redis init failed: %v", err)
	}
	log.Println("✅ Redis connection established")

	// Auto-migrate models
	log.Println("🔄 Running database migrations...")
	if err := db.AutoMigrate(
		&event.Event{},
		&guest.Guest{},
		&question.Question{},
		&response.Response{},
		&matching.Match{},
	); err != nil {
		log.Fatalf("❌ DB AutoMigrate failed: %v", err)
	}
	log.Println("✅ Database migrations completed")

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.Use(middleware.RateLimiter(rdb))

	// Health probes
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "app": "Party Matchmaker API"})
	})
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "database": "postgres"})
	})

	routes.RegisterRoutes(router, cfg, db, rdb)

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server listening on :%s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("❌ Server failed: %v", err)
	}
}
