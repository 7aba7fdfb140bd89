package items

import "github.com/gofiber/fiber/v2"

// Feature mounts the item listing API.
type Feature struct {
	handler *Handler
}

// NewFeature creates the items feature.
func NewFeature() *Feature {
	return &Feature{handler: NewHandler(NewService())}
}

func (f *Feature) Name() string {
	return "items"
}

func (f *Feature) IsEnabled() bool {
	return true
}

func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
