package services

import (
	"strings"
	"testing"
)

func TestParseSearchFilterValid(t *testing.T) {
	filter, errs := ParseSearchFilter("Kenya", "safari", "100", "300")
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if filter.Location != "Kenya" || filter.Name != "safari" {
		t.Errorf("filter = %+v", filter)
	}
	if filter.MinPrice == nil || *filter.MinPrice != 100 {
		t.Errorf("MinPrice = %v", filter.MinPrice)
	}
	if filter.MaxPrice == nil || *filter.MaxPrice != 300 {
		t.Errorf("MaxPrice = %v", filter.MaxPrice)
	}
}

func TestParseSearchFilterEmptyMeansUnset(t *testing.T) {
	filter, errs := ParseSearchFilter("", "", "", "")
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if filter.MinPrice != nil || filter.MaxPrice != nil || filter.Location != "" || filter.Name != "" {
		t.Errorf("all fields should be unset, got %+v", filter)
	}
}

func TestParseSearchFilterRejectsNonIntegers(t *testing.T) {
	cases := []struct {
		raw  string
		want string
	}{
		{"abc", `minPrice must be a non-negative integer, got "abc"`},
		{"12.5", `minPrice must be a non-negative integer, got "12.5"`},
		{"-3", `minPrice must be a non-negative integer, got "-3"`},
		{" 5", `minPrice must be a non-negative integer, got " 5"`},
		{"5 ", `minPrice must be a non-negative integer, got "5 "`},
		{"+5", `minPrice must be a non-negative integer, got "+5"`},
		{"1e3", `minPrice must be a non-negative integer, got "1e3"`},
	}
	for _, tc := range cases {
		_, errs := ParseSearchFilter("", "", tc.raw, "")
		if len(errs) != 1 {
			t.Errorf("minPrice=%q: expected 1 error, got %v", tc.raw, errs)
			continue
		}
		if errs[0] != tc.want {
			t.Errorf("minPrice=%q: error = %q, want %q", tc.raw, errs[0], tc.want)
		}
	}
}

func TestParseSearchFilterCrossField(t *testing.T) {
	_, errs := ParseSearchFilter("", "", "500", "100")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %v", errs)
	}
	if errs[0] != "minPrice cannot be greater than maxPrice" {
		t.Errorf("error = %q", errs[0])
	}
}

func TestParseSearchFilterEqualBoundsAllowed(t *testing.T) {
	filter, errs := ParseSearchFilter("", "", "100", "100")
	if errs != nil {
		t.Fatalf("min == max is valid, got %v", errs)
	}
	if *filter.MinPrice != 100 || *filter.MaxPrice != 100 {
		t.Errorf("filter = %+v", filter)
	}
}

func TestParseSearchFilterCollectsAllErrors(t *testing.T) {
	_, errs := ParseSearchFilter("", "", "abc", "xyz")
	if len(errs) != 2 {
		t.Fatalf("expected both field errors in one pass, got %v", errs)
	}
	if !strings.Contains(errs[0], "minPrice") || !strings.Contains(errs[1], "maxPrice") {
		t.Errorf("errors should name each field in order: %v", errs)
	}
}

func TestParseSearchFilterNoSwap(t *testing.T) {
	// Contradictory bounds are an error, never silently swapped.
	filter, errs := ParseSearchFilter("", "", "500", "100")
	if errs == nil {
		t.Fatalf("expected error, got filter %+v", filter)
	}
}
