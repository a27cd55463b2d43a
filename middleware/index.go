package middleware

import (
	"cinema_scheduler/database"
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

const showtimeCacheTTL = 2 * time.Minute

// CacheShowtimeList serves GET showtime listings from redis when available.
// Responses are cached per full URL so every filter combination gets its
// own entry.
func CacheShowtimeList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if database.Redis == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := "showtimes:" + c.OriginalURL()
		cached, err := database.Redis.Get(c.Context(), key).Bytes()
		if err == nil {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			c.Set("X-Cache", "HIT")
			return c.Send(cached)
		}

		if err := c.Next(); err != nil {
			return err
		}

		if c.Response().StatusCode() == fiber.StatusOK {
			body := make([]byte, len(c.Response().Body()))
			copy(body, c.Response().Body())
			database.Redis.Set(context.Background(), key, body, showtimeCacheTTL)
		}
		c.Set("X-Cache", "MISS")
		return nil
	}
}

// InvalidateShowtimeCache drops every cached listing. Called after any
// write that changes the showtime table.
func InvalidateShowtimeCache(ctx context.Context) {
	if database.Redis == nil {
		return
	}
	iter := database.Redis.Scan(ctx, 0, "showtimes:*", 100).Iterator()
	for iter.Next(ctx) {
		database.Redis.Del(ctx, iter.Val())
	}
}
