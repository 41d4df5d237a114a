package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	memory "github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// RateLimiter returns a Gin middleware that limits requests per IP.
// Backed by Redis so limits hold across restarts; falls back to the
// in-memory store when the Redis store cannot be created.
func RateLimiter(rdb *redis.Client) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: 1 * time.Minute,
		Limit:  100,
	}

	store, err := sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{
		Prefix: "ratelimit",
	})
	if err != nil {
		log.Printf("⚠️ Redis limiter store unavailable, using memory store: %v", err)
		return ginlimiter.NewMiddleware(limiter.New(memory.NewStore(), rate))
	}

	return ginlimiter.NewMiddleware(limiter.New(store, rate))
}
