package services

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/Griffinitto/Tour-Booking-Platform/internal/models"
)

// priceParam accepts only plain unsigned integers: no sign, no decimals,
// no surrounding whitespace. Anything looser silently changed meaning in
// the past (parseInt("12.9") == 12), so the exact pattern is the contract.
var priceParam = regexp.MustCompile(`^[0-9]+$`)

// ParseSearchFilter validates raw query-string inputs and builds a
// SearchFilter. It returns every problem it finds, not just the first, so
// a client can fix its request in one round trip. Empty strings mean the
// field was not provided. The function is pure.
func ParseSearchFilter(location, name, minPrice, maxPrice string) (models.SearchFilter, []string) {
	var errs []string

	minP := parsePriceParam(minPrice, "minPrice", &errs)
	maxP := parsePriceParam(maxPrice, "maxPrice", &errs)

	if minP != nil && maxP != nil && *minP > *maxP {
		errs = append(errs, "minPrice cannot be greater than maxPrice")
	}

	if len(errs) > 0 {
		return models.SearchFilter{}, errs
	}

	return models.SearchFilter{
		Location: location,
		Name:     name,
		MinPrice: minP,
		MaxPrice: maxP,
	}, nil
}

func parsePriceParam(raw, field string, errs *[]string) *int {
	if raw == "" {
		return nil
	}
	if !priceParam.MatchString(raw) {
		*errs = append(*errs, fmt.Sprintf("%s must be a non-negative integer, got %q", field, raw))
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// Digits-only input that still fails Atoi means overflow.
		*errs = append(*errs, fmt.Sprintf("%s must be a non-negative integer, got %q", field, raw))
		return nil
	}
	return &n
}
