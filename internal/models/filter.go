package models

import "github.com/shopspring/decimal"

// PriceRange bounds an inclusive price window. An invalid (unset) bound is open.
type PriceRange struct {
	Min decimal.NullDecimal `json:"min"`
	Max decimal.NullDecimal `json:"max"`
}

// Bounded reports whether either side of the range is set.
func (r PriceRange) Bounded() bool {
	return r.Min.Valid || r.Max.Valid
}

// Contains reports whether price lies within the range, bounds included.
func (r PriceRange) Contains(price decimal.Decimal) bool {
	if r.Min.Valid && price.LessThan(r.Min.Decimal) {
		return false
	}
	if r.Max.Valid && price.GreaterThan(r.Max.Decimal) {
		return false
	}
	return true
}

// NewPriceRange builds a fully bounded range.
func NewPriceRange(min, max decimal.Decimal) PriceRange {
	return PriceRange{
		Min: decimal.NullDecimal{Decimal: min, Valid: true},
		Max: decimal.NullDecimal{Decimal: max, Valid: true},
	}
}

// FilterSpec is the set of filter and search criteria active on a listing.
// Empty sets impose no restriction.
type FilterSpec struct {
	Categories []string   `json:"categories"`
	Brands     []string   `json:"brands"`
	PriceRange PriceRange `json:"price_range"`
	Ratings    []int      `json:"ratings"`
	Query      string     `json:"query"`
}

// ActiveCount counts the filter groups that currently narrow the listing,
// which the filter sidebar shows on its reset button.
func (f FilterSpec) ActiveCount() int {
	count := 0
	if len(f.Categories) > 0 {
		count++
	}
	if len(f.Brands) > 0 {
		count++
	}
	if len(f.Ratings) > 0 {
		count++
	}
	if f.PriceRange.Bounded() {
		count++
	}
	return count
}
