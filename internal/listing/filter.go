// Package listing filters, searches and paginates in-memory catalogs.
//
// Everything here is a pure function of its inputs: source slices are never
// mutated, and results keep the catalog order.
package listing

import (
	"math"
	"slices"
	"strings"

	"github.com/shopspring/decimal"

	"mrfixit/internal/models"
)

// Item is anything a listing can filter. The bool results report whether the
// attribute applies to the item at all; a stage whose attribute does not apply
// lets the item through.
type Item interface {
	ListingCategory() string
	ListingBrand() (string, bool)
	ListingPrice(models.Currency) (decimal.Decimal, bool)
	ListingRating() (float64, bool)
	ListingTitle() string
}

// Apply returns the catalog items matching spec, in catalog order.
//
// Stages are ANDed: category, brand, price (in the active currency), rating,
// then the case-insensitive title query. Within the rating stage the selected
// floors are ORed. A spec that matches nothing yields an empty, non-nil slice.
func Apply[T Item](catalog []T, spec models.FilterSpec, currency models.Currency) []T {
	spec = NormalizeSpec(spec)
	query := strings.ToLower(spec.Query)

	matched := make([]T, 0, len(catalog))
	for _, item := range catalog {
		if len(spec.Categories) > 0 && !slices.Contains(spec.Categories, item.ListingCategory()) {
			continue
		}
		if len(spec.Brands) > 0 {
			if brand, ok := item.ListingBrand(); ok && !slices.Contains(spec.Brands, brand) {
				continue
			}
		}
		if price, ok := item.ListingPrice(currency); ok && !spec.PriceRange.Contains(price) {
			continue
		}
		if len(spec.Ratings) > 0 {
			if rating, ok := item.ListingRating(); ok && !meetsAnyFloor(rating, spec.Ratings) {
				continue
			}
		}
		if query != "" && !strings.Contains(strings.ToLower(item.ListingTitle()), query) {
			continue
		}
		matched = append(matched, item)
	}
	return matched
}

func meetsAnyFloor(rating float64, floors []int) bool {
	floored := int(math.Floor(rating))
	for _, floor := range floors {
		if floored >= floor {
			return true
		}
	}
	return false
}

// NormalizeSpec tidies a spec before it is applied: values are trimmed and
// deduplicated, rating floors outside 1-5 are dropped, and inverted price
// bounds are swapped rather than rejected.
func NormalizeSpec(spec models.FilterSpec) models.FilterSpec {
	out := models.FilterSpec{
		Categories: normalizeTags(spec.Categories),
		Brands:     normalizeTags(spec.Brands),
		PriceRange: spec.PriceRange,
		Query:      strings.TrimSpace(spec.Query),
	}

	for _, r := range spec.Ratings {
		if r >= 1 && r <= 5 && !slices.Contains(out.Ratings, r) {
			out.Ratings = append(out.Ratings, r)
		}
	}

	pr := &out.PriceRange
	if pr.Min.Valid && pr.Max.Valid && pr.Min.Decimal.GreaterThan(pr.Max.Decimal) {
		pr.Min, pr.Max = pr.Max, pr.Min
	}
	return out
}

func normalizeTags(tags []string) []string {
	var out []string
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t != "" && !slices.Contains(out, t) {
			out = append(out, t)
		}
	}
	return out
}
