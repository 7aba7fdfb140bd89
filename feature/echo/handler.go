package echo

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Path is where the echo endpoint is mounted.
const Path = "/ws"

// Handler upgrades requests and runs one Session per connection.
type Handler struct {
	idleTimeout time.Duration
	logger      *zap.Logger
}

// NewHandler creates a new WebSocket handler.
func NewHandler(idleTimeout time.Duration, logger *zap.Logger) *Handler {
	return &Handler{idleTimeout: idleTimeout, logger: logger}
}

// RegisterRoutes registers the echo route.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get(Path, h.RequireUpgrade, websocket.New(h.HandleConn))
}

// RequireUpgrade rejects plain HTTP requests with 426 Upgrade Required.
func (h *Handler) RequireUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// HandleConn echoes frames until the session ends.
func (h *Handler) HandleConn(c *websocket.Conn) {
	l := h.logger.With(zap.String("ip", c.IP()))
	l.Debug("WebSocket session started")

	if err := NewSession(c, h.idleTimeout, l).Run(); err != nil {
		l.Debug("WebSocket session ended", zap.Error(err))
		return
	}
	l.Debug("WebSocket session ended")
}
