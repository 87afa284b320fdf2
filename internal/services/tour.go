package services

import (
	"context"
	"log"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/cache"
	"github.com/Griffinitto/Tour-Booking-Platform/internal/models"
	"github.com/Griffinitto/Tour-Booking-Platform/internal/store"
)

// TourService resolves search requests: cache first, then the active store,
// then a cache write so the next identical request inside the TTL window is
// served without touching the store. The store is invoked at most once per
// request and never retried; a failed fetch surfaces as-is and leaves the
// cache untouched.
type TourService struct {
	store store.TourStore
	cache *cache.TourCache
}

// NewTourService wires the active store and the shared cache instance.
func NewTourService(st store.TourStore, c *cache.TourCache) *TourService {
	return &TourService{store: st, cache: c}
}

// Search returns the tours matching an already-validated filter. The
// result is never nil; an empty match serializes as [].
func (s *TourService) Search(ctx context.Context, filter models.SearchFilter) ([]models.Tour, error) {
	key := filter.Fingerprint()

	if tours, ok := s.cache.Get(key); ok {
		return tours, nil
	}

	tours, err := s.store.FetchTours(ctx, filter)
	if err != nil {
		return nil, err
	}
	if tours == nil {
		tours = []models.Tour{}
	}

	s.cache.Set(key, tours)
	return tours, nil
}

// GetByID fetches a single tour. Lookups by id are not cached; the record
// read is as cheap as the cache probe would be and staleness buys nothing.
func (s *TourService) GetByID(ctx context.Context, id string) (*models.Tour, error) {
	return s.store.GetTour(ctx, id)
}

// Ready reports whether the active store is usable, for readiness probes.
func (s *TourService) Ready(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		log.Printf("[readiness] tour store not ready: %v", err)
		return err
	}
	return nil
}
