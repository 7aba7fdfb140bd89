package rayid

import (
	"secure-app-server/core/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Header is the response header carrying the request id.
const Header = "X-Ray-ID"

// New returns a middleware that tags each request with a RayID.
// An incoming X-Ray-ID that parses as a UUID is kept, anything else is replaced.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(Header)
		if _, err := uuid.Parse(rid); err != nil {
			rid = uuid.NewString()
		}

		c.Locals(logger.RayIDKey, rid)
		c.Set(Header, rid)

		return c.Next()
	}
}
