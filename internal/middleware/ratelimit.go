package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/hotel-reservation-calendar/internal/config"
)

// NewRateLimiter returns a fixed-window request limiter backed by Redis.
// Each client IP gets cfg.Limit requests per cfg.Window; beyond that the
// request is rejected with 429 and a Retry-After header.  When rate
// limiting is disabled or no Redis client is available the middleware is
// a transparent pass-through, and a Redis failure at request time lets
// the request through rather than failing it.
func NewRateLimiter(cfg config.RateLimitConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			now := time.Now()
			window := now.Unix() / int64(cfg.Window.Seconds())
			key := fmt.Sprintf("%s:%s:%d", cfg.Prefix, c.RealIP(), window)

			ctx := c.Request().Context()
			n, err := rdb.Incr(ctx, key).Result()
			if err != nil {
				return next(c)
			}
			if n == 1 {
				// First hit in this window owns the key expiry.
				_ = rdb.Expire(ctx, key, cfg.Window).Err()
			}
			if n > int64(cfg.Limit) {
				retryAfter := cfg.Window - time.Duration(now.Unix()%int64(cfg.Window.Seconds()))*time.Second
				c.Response().Header().Set("Retry-After", fmt.Sprintf("%d", int(retryAfter.Seconds())))
				return c.JSON(http.StatusTooManyRequests, echo.Map{"error": "rate limit exceeded"})
			}
			return next(c)
		}
	}
}
