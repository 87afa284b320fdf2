package store

import "errors"

// Every backend failure is translated into exactly one of these buckets at
// the store boundary, so handlers can map errors to status codes with
// errors.Is and nothing upstream needs to know which backend is active.
var (
	// ErrUpstreamUnavailable covers timeouts and connection failures
	// talking to the backing store. 502 to the caller, who may retry;
	// this layer never retries on its own.
	ErrUpstreamUnavailable = errors.New("tour store unavailable")

	// ErrUpstreamRejected means the backing store answered with a failure
	// status. The wrapped message carries the upstream status for
	// diagnostics. Also 502.
	ErrUpstreamRejected = errors.New("tour store rejected request")

	// ErrMisconfigured means the active backend handle is missing or was
	// never initialized: a deployment problem, not a caller problem. 500.
	ErrMisconfigured = errors.New("tour store misconfigured")

	// ErrNotFound is returned by single-record lookups with no match. 404.
	ErrNotFound = errors.New("tour not found")
)
