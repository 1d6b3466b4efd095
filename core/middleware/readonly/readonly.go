package readonly

import "github.com/gofiber/fiber/v2"

// New returns a middleware that rejects write requests (anything but GET and
// HEAD) when enabled. It carries the governance switch that lets operators
// expose the reconciliation API for analysis without allowing data changes.
func New(enabled bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !enabled {
			return c.Next()
		}

		switch c.Method() {
		case fiber.MethodGet, fiber.MethodHead:
			return c.Next()
		default:
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "server is running in read-only mode",
			})
		}
	}
}
