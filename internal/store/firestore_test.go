package store

import (
	"context"
	"errors"
	"testing"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/models"
)

// A nil client models the deployment error this store must report: the
// Firestore handle was never initialized. Query behavior needs a live
// store or the emulator and is not exercised here.

func TestFirestoreNilClientFetch(t *testing.T) {
	s := NewFirestoreStore(nil)
	_, err := s.FetchTours(context.Background(), models.SearchFilter{})
	if !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
}

func TestFirestoreNilClientGet(t *testing.T) {
	s := NewFirestoreStore(nil)
	_, err := s.GetTour(context.Background(), "abc")
	if !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
}

func TestFirestoreNilClientPing(t *testing.T) {
	s := NewFirestoreStore(nil)
	if err := s.Ping(context.Background()); !errors.Is(err, ErrMisconfigured) {
		t.Fatalf("expected ErrMisconfigured, got %v", err)
	}
}
