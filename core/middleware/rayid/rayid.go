package rayid

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the response header carrying the ray id.
const HeaderName = "X-Ray-ID"

// LocalsKey is the Fiber locals key holding the ray id.
const LocalsKey = "ray_id"

// New returns a middleware that tags every request with a ray id. An incoming
// X-Ray-ID header is kept, otherwise a new UUID is generated.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Fiber strings alias the request buffer; the ray id outlives it in logs.
		rid := strings.Clone(c.Get(HeaderName))
		if rid == "" {
			rid = uuid.NewString()
		}
		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)
		return c.Next()
	}
}
