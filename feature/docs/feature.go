package docs

import (
	"secure-app-server/docs/swagger"

	"github.com/gofiber/fiber/v2"
	fiberSwagger "github.com/gofiber/swagger"
)

// Path is the prefix the Swagger UI is mounted under.
const Path = "/swagger"

// Feature serves the generated API documentation.
type Feature struct {
	enabled bool
}

// NewFeature creates the docs feature. host is advertised as the API host.
func NewFeature(enabled bool, host string) *Feature {
	if host != "" {
		swagger.SwaggerInfo.Host = host
	}
	return &Feature{enabled: enabled}
}

func (f *Feature) Name() string {
	return "docs"
}

func (f *Feature) IsEnabled() bool {
	return f.enabled
}

func (f *Feature) Load(app fiber.Router) error {
	app.Get(Path+"/*", fiberSwagger.HandlerDefault)
	return nil
}
