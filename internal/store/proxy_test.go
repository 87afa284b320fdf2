package store

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/models"
)

var fixture = []models.Tour{
	{ID: "1", Name: "Serengeti Safari Adventure", Description: "Big five game drives", Location: "Kenya", Price: 250, Duration: 5},
	{ID: "2", Name: "Masai Mara Safari", Description: "Luxury safari lodge stay", Location: "Kenya", Price: 450, Duration: 7},
	{ID: "3", Name: "Safari Photography Tour", Description: "Golden hour wildlife shots", Location: "Tanzania", Price: 200, Duration: 4},
	{ID: "4", Name: "Paris City Tour", Description: "Walk the left bank", Location: "France", Price: 150, Duration: 2},
	{ID: "5", Name: "Versailles Excursion", Description: "A day trip to paris and the palace", Location: "France", Price: 100, Duration: 1},
}

func newFixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/tours", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(fixture)
	})
	mux.HandleFunc("/tours/", func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimPrefix(r.URL.Path, "/tours/")
		for _, tour := range fixture {
			if tour.ID == id {
				json.NewEncoder(w).Encode(tour)
				return
			}
		}
		w.WriteHeader(http.StatusNotFound)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func intPtr(n int) *int { return &n }

func TestProxyFetchUnfiltered(t *testing.T) {
	srv := newFixtureServer(t)
	s := NewProxyStore(srv.URL, 5*time.Second)

	tours, err := s.FetchTours(context.Background(), models.SearchFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(tours) != len(fixture) {
		t.Errorf("expected all %d tours, got %d", len(fixture), len(tours))
	}
}

func TestProxyFetchAppliesAllFilters(t *testing.T) {
	srv := newFixtureServer(t)
	s := NewProxyStore(srv.URL, 5*time.Second)

	filter := models.SearchFilter{
		Name:     "safari",
		Location: "Kenya",
		MinPrice: intPtr(100),
		MaxPrice: intPtr(300),
	}
	tours, err := s.FetchTours(context.Background(), filter)
	if err != nil {
		t.Fatal(err)
	}
	if len(tours) != 1 || tours[0].ID != "1" {
		t.Fatalf("expected only tour 1 to pass all four predicates, got %+v", tours)
	}
}

func TestProxyFetchTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(srv.Close)
	s := NewProxyStore(srv.URL, 30*time.Millisecond)

	_, err := s.FetchTours(context.Background(), models.SearchFilter{})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
	if !strings.Contains(err.Error(), "timed out") {
		t.Errorf("timeout error should say so: %v", err)
	}
}

func TestProxyFetchUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close() // nothing listening anymore

	s := NewProxyStore(url, time.Second)
	_, err := s.FetchTours(context.Background(), models.SearchFilter{})
	if !errors.Is(err, ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestProxyFetchUpstreamRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	s := NewProxyStore(srv.URL, time.Second)
	_, err := s.FetchTours(context.Background(), models.SearchFilter{})
	if !errors.Is(err, ErrUpstreamRejected) {
		t.Fatalf("expected ErrUpstreamRejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "500") {
		t.Errorf("rejection should carry the upstream status: %v", err)
	}
}

func TestProxyFetchBadPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	t.Cleanup(srv.Close)

	s := NewProxyStore(srv.URL, time.Second)
	_, err := s.FetchTours(context.Background(), models.SearchFilter{})
	if !errors.Is(err, ErrUpstreamRejected) {
		t.Fatalf("expected ErrUpstreamRejected for undecodable body, got %v", err)
	}
}

func TestProxyGetTour(t *testing.T) {
	srv := newFixtureServer(t)
	s := NewProxyStore(srv.URL, time.Second)

	tour, err := s.GetTour(context.Background(), "4")
	if err != nil {
		t.Fatal(err)
	}
	if tour.Name != "Paris City Tour" {
		t.Errorf("tour = %+v", tour)
	}
}

func TestProxyGetTourNotFound(t *testing.T) {
	srv := newFixtureServer(t)
	s := NewProxyStore(srv.URL, time.Second)

	_, err := s.GetTour(context.Background(), "does-not-exist")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProxyPing(t *testing.T) {
	srv := newFixtureServer(t)
	s := NewProxyStore(srv.URL, time.Second)

	if err := s.Ping(context.Background()); err != nil {
		t.Errorf("ping against live fixture: %v", err)
	}

	srv.Close()
	if err := s.Ping(context.Background()); !errors.Is(err, ErrUpstreamUnavailable) {
		t.Errorf("ping against closed server: %v", err)
	}
}
