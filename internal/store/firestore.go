package store

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/models"
)

// toursCollection is the Firestore collection holding tour documents.
const toursCollection = "tours"

// FirestoreStore reads tours from a Firestore collection. Location and the
// price bounds are pushed into the native query; free-text name matching is
// not expressible in Firestore. The usual name-range prefix trick only
// matches prefixes and breaks on case, so it is deliberately not used;
// the name filter runs in memory instead.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore wraps a Firestore client. A nil client is allowed at
// construction so a broken deployment fails per-request with a clear
// misconfiguration error instead of crashing at startup.
func NewFirestoreStore(client *firestore.Client) *FirestoreStore {
	return &FirestoreStore{client: client}
}

// FetchTours queries the collection with every pushable dimension and
// filters the remainder in memory.
func (s *FirestoreStore) FetchTours(ctx context.Context, filter models.SearchFilter) ([]models.Tour, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: firestore client is not initialized", ErrMisconfigured)
	}

	q := s.client.Collection(toursCollection).Query
	if filter.Location != "" {
		q = q.Where("location", "==", filter.Location)
	}
	if filter.MinPrice != nil {
		q = q.Where("price", ">=", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price", "<=", *filter.MaxPrice)
	}

	docs, err := q.Documents(ctx).GetAll()
	if err != nil {
		return nil, translateFirestoreErr(err)
	}

	tours := make([]models.Tour, 0, len(docs))
	for _, doc := range docs {
		var t models.Tour
		if err := doc.DataTo(&t); err != nil {
			return nil, fmt.Errorf("%w: decoding tour document %s: %v", ErrUpstreamRejected, doc.Ref.ID, err)
		}
		t.ID = doc.Ref.ID
		tours = append(tours, t)
	}

	return filter.ApplyName(tours), nil
}

// GetTour fetches a single tour document by id.
func (s *FirestoreStore) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	if s.client == nil {
		return nil, fmt.Errorf("%w: firestore client is not initialized", ErrMisconfigured)
	}

	doc, err := s.client.Collection(toursCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}
		return nil, translateFirestoreErr(err)
	}

	var t models.Tour
	if err := doc.DataTo(&t); err != nil {
		return nil, fmt.Errorf("%w: decoding tour document %s: %v", ErrUpstreamRejected, id, err)
	}
	t.ID = doc.Ref.ID
	return &t, nil
}

// Ping runs a cheap single-document query to verify the store is usable.
func (s *FirestoreStore) Ping(ctx context.Context) error {
	if s.client == nil {
		return fmt.Errorf("%w: firestore client is not initialized", ErrMisconfigured)
	}
	_, err := s.client.Collection(toursCollection).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return translateFirestoreErr(err)
	}
	return nil
}

// translateFirestoreErr maps a Firestore/gRPC failure into the store error
// taxonomy. Deadline and connectivity problems are "unavailable"; anything
// else the server answered with is "rejected".
func translateFirestoreErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: firestore request timed out", ErrUpstreamUnavailable)
	}
	switch status.Code(err) {
	case codes.DeadlineExceeded:
		return fmt.Errorf("%w: firestore request timed out", ErrUpstreamUnavailable)
	case codes.Unavailable:
		return fmt.Errorf("%w: unable to reach firestore: %v", ErrUpstreamUnavailable, err)
	default:
		return fmt.Errorf("%w: firestore responded with %s", ErrUpstreamRejected, status.Code(err))
	}
}
