package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the request's RayID.
const HeaderName = "X-Ray-Id"

// New returns a middleware that assigns a unique RayID to every request.
// The ID is stored in c.Locals("ray_id") for log correlation and echoed in
// the response headers. An incoming X-Ray-Id header is preserved so IDs can
// be propagated across services.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals("ray_id", rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
