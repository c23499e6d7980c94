package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RateLimit returns a per-client-IP rate limiting middleware allowing rps
// requests per second, backed by an in-memory store.
func RateLimit(rps int) gin.HandlerFunc {
	rate := limiter.Rate{
		Period: time.Second,
		Limit:  int64(rps),
	}
	store := memory.NewStore()
	return mgin.NewMiddleware(limiter.New(store, rate))
}
