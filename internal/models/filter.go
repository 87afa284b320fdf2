package models

import (
	"strconv"
	"strings"
)

// SearchFilter holds the validated search dimensions for a tour query.
// Zero values mean "not provided": empty string for Location/Name,
// nil for the price bounds.
type SearchFilter struct {
	Location string
	Name     string
	MinPrice *int
	MaxPrice *int
}

// unset is the fingerprint placeholder for an absent filter field.
const unset = "*"

// Fingerprint returns the canonical cache key for the filter. Fields are
// joined in a fixed order with a placeholder for unset values, so two
// filters with the same effective semantics always collide. Name is
// lower-cased because free-text matching is case-insensitive.
func (f SearchFilter) Fingerprint() string {
	parts := []string{"tours", unset, unset, unset, unset}
	if f.Location != "" {
		parts[1] = f.Location
	}
	if f.MinPrice != nil {
		parts[2] = strconv.Itoa(*f.MinPrice)
	}
	if f.MaxPrice != nil {
		parts[3] = strconv.Itoa(*f.MaxPrice)
	}
	if f.Name != "" {
		parts[4] = strings.ToLower(f.Name)
	}
	return strings.Join(parts, ":")
}

// Apply filters tours in memory across every dimension, in a fixed order:
// location equality, min price (inclusive), max price (inclusive), then
// free-text match. Used by the proxy store, which gets the collection
// unfiltered from upstream.
func (f SearchFilter) Apply(tours []Tour) []Tour {
	out := make([]Tour, 0, len(tours))
	for _, t := range tours {
		if f.Location != "" && t.Location != f.Location {
			continue
		}
		if f.MinPrice != nil && t.Price < float64(*f.MinPrice) {
			continue
		}
		if f.MaxPrice != nil && t.Price > float64(*f.MaxPrice) {
			continue
		}
		if !f.matchesName(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

// ApplyName filters only on the free-text dimension. The Firestore store
// pushes location and price bounds into the native query and uses this for
// the one dimension the store cannot express.
func (f SearchFilter) ApplyName(tours []Tour) []Tour {
	if f.Name == "" {
		return tours
	}
	out := make([]Tour, 0, len(tours))
	for _, t := range tours {
		if f.matchesName(t) {
			out = append(out, t)
		}
	}
	return out
}

// matchesName reports whether the tour matches the free-text term:
// case-insensitive substring of either name or description.
func (f SearchFilter) matchesName(t Tour) bool {
	if f.Name == "" {
		return true
	}
	term := strings.ToLower(f.Name)
	return strings.Contains(strings.ToLower(t.Name), term) ||
		strings.Contains(strings.ToLower(t.Description), term)
}
