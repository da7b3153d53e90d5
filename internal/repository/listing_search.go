package repository

import (
	"strconv"
	"strings"

	"github.com/rentfornest/rentfornest/internal/model"
)

// SearchQuery defines the ten optional filters for searching
// listings. A zero-value field means the criterion is not supplied
// and always passes; supplied criteria are combined with logical AND.
//
// The five location fields and PinCode are substring matches —
// location fields case-insensitive, PinCode as-is. The rent and
// duration bounds are inclusive.
type SearchQuery struct {
	State    string
	District string
	City     string
	Area     string
	Road     string
	PinCode  string

	MinRent *float64
	MaxRent *float64

	MinDuration *int
	MaxDuration *int
}

// SearchForm carries filter criteria exactly as typed, all strings.
// Query converts it into a SearchQuery with explicit
// parse-with-fallback: a numeric bound that does not parse is treated
// as not supplied, never as an error.
type SearchForm struct {
	State    string
	District string
	City     string
	Area     string
	Road     string
	PinCode  string

	MinRent string
	MaxRent string

	MinDuration string
	MaxDuration string
}

// Query parses the form's numeric bounds and carries the text
// criteria over unchanged.
func (f SearchForm) Query() SearchQuery {
	return SearchQuery{
		State:       f.State,
		District:    f.District,
		City:        f.City,
		Area:        f.Area,
		Road:        f.Road,
		PinCode:     f.PinCode,
		MinRent:     parseRent(f.MinRent),
		MaxRent:     parseRent(f.MaxRent),
		MinDuration: parseMonths(f.MinDuration),
		MaxDuration: parseMonths(f.MaxDuration),
	}
}

func parseRent(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func parseMonths(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

// Search returns every listing for which all supplied criteria hold,
// in collection order (newest-first). No relevance sorting: two calls
// with the same query against an unmodified collection return the
// same sequence.
func (r *ListingRepo) Search(q SearchQuery) []model.PropertyListing {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.PropertyListing{}
	for _, l := range r.listings {
		if matches(l, q) {
			out = append(out, l)
		}
	}
	return out
}

func matches(l model.PropertyListing, q SearchQuery) bool {
	if !containsFold(l.State, q.State) {
		return false
	}
	if !containsFold(l.District, q.District) {
		return false
	}
	if !containsFold(l.City, q.City) {
		return false
	}
	if !containsFold(l.Area, q.Area) {
		return false
	}
	if !containsFold(l.Road, q.Road) {
		return false
	}
	if q.PinCode != "" && !strings.Contains(l.PinCode, q.PinCode) {
		return false
	}
	if q.MinRent != nil && l.MonthlyRent < *q.MinRent {
		return false
	}
	if q.MaxRent != nil && l.MonthlyRent > *q.MaxRent {
		return false
	}
	if q.MinDuration != nil && l.Duration < *q.MinDuration {
		return false
	}
	if q.MaxDuration != nil && l.Duration > *q.MaxDuration {
		return false
	}
	return true
}

// containsFold is a case-insensitive substring check where an empty
// needle always passes.
func containsFold(haystack, needle string) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
