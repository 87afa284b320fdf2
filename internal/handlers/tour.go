package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/services"
	"github.com/Griffinitto/Tour-Booking-Platform/internal/store"
)

type TourHandler struct {
	service *services.TourService
}

func NewTourHandler(service *services.TourService) *TourHandler {
	return &TourHandler{service: service}
}

func SetupTourRoutes(router fiber.Router, service *services.TourService) {
	h := NewTourHandler(service)

	router.Get("/", h.List)
	router.Get("/search", h.Search)
	router.Get("/:id", h.Get)
}

// List godoc
// @Summary List tours
// @Description Lists tours with optional location and price filtering
// @Tags tours
// @Produce json
// @Param location query string false "Exact location match"
// @Param minPrice query int false "Inclusive lower price bound"
// @Param maxPrice query int false "Inclusive upper price bound"
// @Success 200 {array} models.Tour
// @Failure 400 {object} map[string][]string
// @Router /tours [get]
func (h *TourHandler) List(c *fiber.Ctx) error {
	filter, errs := services.ParseSearchFilter(
		c.Query("location"),
		"", // the list endpoint has no free-text dimension
		c.Query("minPrice"),
		c.Query("maxPrice"),
	)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	tours, err := h.service.Search(c.UserContext(), filter)
	if err != nil {
		return h.respondStoreError(c, err)
	}

	return c.JSON(tours)
}

// Search godoc
// @Summary Search tours
// @Description Searches tours by free text over name and description, plus location and price filters
// @Tags tours
// @Produce json
// @Param name query string false "Case-insensitive substring over name and description"
// @Param location query string false "Exact location match"
// @Param minPrice query int false "Inclusive lower price bound"
// @Param maxPrice query int false "Inclusive upper price bound"
// @Success 200 {array} models.Tour
// @Failure 400 {object} map[string][]string
// @Router /tours/search [get]
func (h *TourHandler) Search(c *fiber.Ctx) error {
	filter, errs := services.ParseSearchFilter(
		c.Query("location"),
		c.Query("name"),
		c.Query("minPrice"),
		c.Query("maxPrice"),
	)
	if errs != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errs})
	}

	tours, err := h.service.Search(c.UserContext(), filter)
	if err != nil {
		return h.respondStoreError(c, err)
	}

	return c.JSON(tours)
}

// Get godoc
// @Summary Get tour by ID
// @Tags tours
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} models.Tour
// @Failure 404 {object} ErrorResponse
// @Router /tours/{id} [get]
func (h *TourHandler) Get(c *fiber.Ctx) error {
	tour, err := h.service.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.respondStoreError(c, err)
	}

	return c.JSON(tour)
}

// respondStoreError maps a store-taxonomy error onto the HTTP contract.
// Upstream failures keep their message (it names the failure mode and the
// upstream status); anything unclassified is logged and masked with a
// generic 500 so internals never leak to the caller.
func (h *TourHandler) respondStoreError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Tour not found"})
	case errors.Is(err, store.ErrUpstreamUnavailable), errors.Is(err, store.ErrUpstreamRejected):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, store.ErrMisconfigured):
		log.Printf("[tours] store misconfigured: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An unexpected error occurred while fetching tours.",
		})
	default:
		log.Printf("[tours] unexpected error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "An unexpected error occurred while fetching tours.",
		})
	}
}
