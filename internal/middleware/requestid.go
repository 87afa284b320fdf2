package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-Id"

// RequestID makes sure every request carries an id, generating one when
// the caller did not send its own, and echoes it on the response so log
// lines can be correlated across the proxy hop.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("requestID", id)
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}
