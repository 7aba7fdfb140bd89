package requestlog

import (
	"errors"
	"time"

	"secure-app-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// New returns a middleware writing one access log line per request.
func New(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}

		l := logger.WithRayID(logg, c)
		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.String("user_agent", c.Get(fiber.HeaderUserAgent)),
		}

		switch {
		case status >= fiber.StatusInternalServerError:
			l.Error("Request failed", append(fields, zap.Error(err))...)
		default:
			l.Info("Request completed", fields...)
		}

		return err
	}
}
