package echo

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature mounts the echo WebSocket.
type Feature struct {
	handler *Handler
}

// NewFeature creates the echo feature. idleTimeout bounds the silence between frames.
func NewFeature(idleTimeout time.Duration, logger *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(idleTimeout, logger)}
}

func (f *Feature) Name() string {
	return "echo"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
