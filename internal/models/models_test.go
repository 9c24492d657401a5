package models_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrfixit/internal/models"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in      string
		want    models.Currency
		wantErr bool
	}{
		{"", models.CurrencyUSD, false},
		{"usd", models.CurrencyUSD, false},
		{" ZWL ", models.CurrencyZWL, false},
		{"zwl", models.CurrencyZWL, false},
		{"EUR", "", true},
	}
	for _, tt := range tests {
		got, err := models.ParseCurrency(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCurrencyFormat(t *testing.T) {
	assert.Equal(t, "$89.99", models.CurrencyUSD.Format(decimal.RequireFromString("89.99")))
	assert.Equal(t, "$5.90", models.CurrencyUSD.Format(decimal.RequireFromString("5.9")))
	assert.Equal(t, "ZWL 8,999.00", models.CurrencyZWL.Format(decimal.RequireFromString("8999")))
	assert.Equal(t, "ZWL 19,999.00", models.CurrencyZWL.Format(decimal.RequireFromString("19999")))
	assert.Equal(t, "ZWL 599.00", models.CurrencyZWL.Format(decimal.RequireFromString("599")))
	assert.Equal(t, "ZWL 1,234,567.50", models.CurrencyZWL.Format(decimal.RequireFromString("1234567.5")))
}

func TestProduct_WithDisplayPrice(t *testing.T) {
	p := models.Product{PriceUSD: decimal.RequireFromString("12.75"), PriceZWL: decimal.RequireFromString("1275")}

	zwl := p.WithDisplayPrice(models.CurrencyZWL)
	assert.Equal(t, "ZWL 1,275.00", zwl.DisplayPrice)
	assert.Equal(t, "$12.75", p.WithDisplayPrice(models.CurrencyUSD).DisplayPrice)
	assert.Empty(t, p.DisplayPrice)
}

func TestPriceRange(t *testing.T) {
	open := models.PriceRange{}
	assert.False(t, open.Bounded())
	assert.True(t, open.Contains(decimal.NewFromInt(1_000_000)))

	r := models.NewPriceRange(decimal.NewFromInt(10), decimal.NewFromInt(50))
	assert.True(t, r.Bounded())
	assert.True(t, r.Contains(decimal.NewFromInt(10)), "lower bound is inclusive")
	assert.True(t, r.Contains(decimal.NewFromInt(50)), "upper bound is inclusive")
	assert.False(t, r.Contains(decimal.RequireFromString("50.01")))
	assert.False(t, r.Contains(decimal.RequireFromString("9.99")))

	floor := models.PriceRange{Min: decimal.NewNullDecimal(decimal.NewFromInt(100))}
	assert.True(t, floor.Contains(decimal.NewFromInt(20000)))
	assert.False(t, floor.Contains(decimal.NewFromInt(99)))
}

func TestFilterSpec_ActiveCount(t *testing.T) {
	assert.Equal(t, 0, models.FilterSpec{Query: "drill"}.ActiveCount())

	spec := models.FilterSpec{
		Categories: []string{"Tools"},
		Brands:     []string{"Bosch"},
		Ratings:    []int{4},
		PriceRange: models.PriceRange{Max: decimal.NewNullDecimal(decimal.NewFromInt(50))},
	}
	assert.Equal(t, 4, spec.ActiveCount())
}

func TestFilterSpec_JSON(t *testing.T) {
	var spec models.FilterSpec
	require.NoError(t, json.Unmarshal([]byte(`{"brands":["Cobra"],"price_range":{"min":null,"max":"50"},"ratings":[4,5]}`), &spec))

	assert.Equal(t, []string{"Cobra"}, spec.Brands)
	assert.False(t, spec.PriceRange.Min.Valid)
	require.True(t, spec.PriceRange.Max.Valid)
	assert.True(t, spec.PriceRange.Max.Decimal.Equal(decimal.NewFromInt(50)))
	assert.Equal(t, []int{4, 5}, spec.Ratings)
}

func TestProductListingAttributes(t *testing.T) {
	p := models.Product{
		Name:     "LED Floodlight 50W",
		Category: "Electrical",
		Brand:    "Bosch",
		PriceUSD: decimal.RequireFromString("45.99"),
		PriceZWL: decimal.RequireFromString("4599"),
		Rating:   4.7,
	}

	usd, ok := p.ListingPrice(models.CurrencyUSD)
	require.True(t, ok)
	assert.True(t, usd.Equal(decimal.RequireFromString("45.99")))
	zwl, _ := p.ListingPrice(models.CurrencyZWL)
	assert.True(t, zwl.Equal(decimal.NewFromInt(4599)))

	post := models.BlogPost{Title: "Rainy season prep", Category: "Seasonal"}
	_, ok = post.ListingBrand()
	assert.False(t, ok)
	_, ok = post.ListingPrice(models.CurrencyUSD)
	assert.False(t, ok)
	_, ok = post.ListingRating()
	assert.False(t, ok)
}

func TestValueIcon(t *testing.T) {
	icon, err := models.ParseValueIcon("community")
	require.NoError(t, err)
	assert.Equal(t, "users", icon.Glyph())

	_, err = models.ParseValueIcon("rocket")
	assert.Error(t, err)
}
