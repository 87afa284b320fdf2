package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/services"
)

// HealthCheck godoc
// @Summary Health check endpoint
// @Description Returns the health status of the API
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// ReadinessCheck reports ready only when the active tour store answers.
func ReadinessCheck(service *services.TourService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := service.Ready(c.UserContext()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "not ready",
			})
		}
		return c.JSON(fiber.Map{
			"status": "ready",
		})
	}
}
