package auth

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// HeaderName is the request header carrying the API key.
const HeaderName = "X-API-Key"

// Config holds the settings of the auth middleware.
type Config struct {
	// ApiKey is the expected key. An empty key lets every request through.
	ApiKey string
}

// New returns a middleware that rejects requests without the configured API key.
func New(cfg Config) fiber.Handler {
	expected := []byte(cfg.ApiKey)
	return func(c *fiber.Ctx) error {
		if len(expected) == 0 {
			return c.Next()
		}
		got := []byte(c.Get(HeaderName))
		if subtle.ConstantTimeCompare(got, expected) != 1 {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid or missing API key"})
		}
		return c.Next()
	}
}
