package store

import (
	"context"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/models"
)

// TourStore abstracts the backing store for tour listings. Two
// implementations exist: ProxyStore fetches the whole collection from a
// REST source and filters in memory, FirestoreStore pushes the supported
// dimensions into a native query. Callers must not branch on which one is
// active; the capability difference is each store's own business.
type TourStore interface {
	// FetchTours returns the tours matching filter. Every dimension the
	// store can express natively is pushed down; the rest is applied in
	// memory before returning. Failures are translated to the sentinel
	// errors in errors.go.
	FetchTours(ctx context.Context, filter models.SearchFilter) ([]models.Tour, error)

	// GetTour returns a single tour by id, or ErrNotFound.
	GetTour(ctx context.Context, id string) (*models.Tour, error)

	// Ping checks that the store is reachable and usable.
	Ping(ctx context.Context) error
}
