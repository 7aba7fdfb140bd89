package items

import (
	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for items.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the item routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api/v1")
	group.Get("/items", h.HandleList)
}

// HandleList returns the item catalogue.
// @Summary List Items
// @Description Returns the fixed item catalogue, in id order.
// @Tags items
// @Produce json
// @Success 200 {array} items.Item "Items"
// @Router /api/v1/items [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
