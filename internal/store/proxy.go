package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/models"
)

// ProxyStore reads tours from a REST source (the local JSON server in
// development). The upstream has no query capability worth pushing down,
// so every request fetches the full collection and applies the filter in
// memory. Each outbound call is bounded by an explicit timeout.
type ProxyStore struct {
	baseURL string
	timeout time.Duration
	client  *http.Client
}

// NewProxyStore creates a ProxyStore against baseURL. timeout bounds each
// upstream request; zero means the 5s default.
func NewProxyStore(baseURL string, timeout time.Duration) *ProxyStore {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &ProxyStore{
		baseURL: baseURL,
		timeout: timeout,
		client:  &http.Client{},
	}
}

// FetchTours fetches the unfiltered collection and filters it in memory.
func (s *ProxyStore) FetchTours(ctx context.Context, filter models.SearchFilter) ([]models.Tour, error) {
	resp, err := s.get(ctx, s.baseURL+"/tours")
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: tour source responded with status %d", ErrUpstreamRejected, resp.StatusCode)
	}

	var tours []models.Tour
	if err := json.NewDecoder(resp.Body).Decode(&tours); err != nil {
		return nil, fmt.Errorf("%w: decoding tour source response: %v", ErrUpstreamRejected, err)
	}

	return filter.Apply(tours), nil
}

// GetTour fetches a single tour by id.
func (s *ProxyStore) GetTour(ctx context.Context, id string) (*models.Tour, error) {
	resp, err := s.get(ctx, s.baseURL+"/tours/"+id)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: tour source responded with status %d", ErrUpstreamRejected, resp.StatusCode)
	}

	var tour models.Tour
	if err := json.NewDecoder(resp.Body).Decode(&tour); err != nil {
		return nil, fmt.Errorf("%w: decoding tour source response: %v", ErrUpstreamRejected, err)
	}
	return &tour, nil
}

// Ping checks the upstream is reachable.
func (s *ProxyStore) Ping(ctx context.Context) error {
	resp, err := s.get(ctx, s.baseURL+"/tours")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: tour source responded with status %d", ErrUpstreamRejected, resp.StatusCode)
	}
	return nil
}

// get issues a deadline-bounded GET and translates transport failures into
// the unavailable bucket. Timeouts get their own message so callers can see
// the difference between a slow upstream and a dead one.
func (s *ProxyStore) get(ctx context.Context, url string) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()
		return nil, fmt.Errorf("%w: building request: %v", ErrMisconfigured, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		cancel()
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: request to tour source timed out after %s", ErrUpstreamUnavailable, s.timeout)
		}
		return nil, fmt.Errorf("%w: unable to reach tour source: %v", ErrUpstreamUnavailable, err)
	}

	// The body outlives this call; tie the deadline cancel to its close.
	resp.Body = &cancelReadCloser{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

type cancelReadCloser struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (c *cancelReadCloser) Close() error {
	err := c.ReadCloser.Close()
	c.cancel()
	return err
}
