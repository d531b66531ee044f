package handler

import (
	"context"
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const healthTimeout = 2 * time.Second

// HealthCheck reports 200 only when both Postgres and Redis answer a ping.
func HealthCheck(db *sql.DB, rdb redis.Cmdable) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), healthTimeout)
		defer cancel()

		if err := db.PingContext(ctx); err != nil {
			zap.L().Warn("health: postgres ping failed", zap.Error(err))
			return writeError(c, fiber.StatusServiceUnavailable, msgUnavailable)
		}
		if err := rdb.Ping(ctx).Err(); err != nil {
			zap.L().Warn("health: redis ping failed", zap.Error(err))
			return writeError(c, fiber.StatusServiceUnavailable, msgUnavailable)
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "healthy"})
	}
}

// LivenessProbe answers 200 as long as the process serves requests.
func LivenessProbe() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	}
}
