package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ErrorHandler is the custom error handler for Fiber. It catches errors
// returned by handlers that were not already written out (router 404s,
// panics surfaced by recover) and keeps the JSON error envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Something went wrong!"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
		if code == fiber.StatusNotFound {
			message = "Route not found"
		}
	}

	return c.Status(code).JSON(ErrorResponse{
		Error: message,
	})
}
