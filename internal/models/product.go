package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a hardware product in the store catalog.
type Product struct {
	ID           string          `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Position     int             `json:"-" gorm:"index"`
	Name         string          `json:"name" gorm:"type:varchar(150)"`
	Category     string          `json:"category" gorm:"index;type:varchar(100)"`
	Brand        string          `json:"brand" gorm:"type:varchar(100)"`
	PriceUSD     decimal.Decimal `json:"price_usd" gorm:"type:decimal(12,2)"`
	PriceZWL     decimal.Decimal `json:"price_zwl" gorm:"type:decimal(14,2)"`
	Rating       float64         `json:"rating"`
	ImageURL     string          `json:"image_url"`
	DisplayPrice string          `json:"display_price,omitempty" gorm:"-"`
	CreatedAt    time.Time       `json:"-"`
	UpdatedAt    time.Time       `json:"-"`
}

// PriceIn returns the product price denominated in the given currency.
// The two prices are independent values, never converted from one another.
func (p Product) PriceIn(c Currency) decimal.Decimal {
	if c == CurrencyZWL {
		return p.PriceZWL
	}
	return p.PriceUSD
}

// WithDisplayPrice returns a copy of p carrying its price in c, formatted
// the way the product card shows it.
func (p Product) WithDisplayPrice(c Currency) Product {
	p.DisplayPrice = c.Format(p.PriceIn(c))
	return p
}

func (p Product) ListingCategory() string { return p.Category }

func (p Product) ListingBrand() (string, bool) { return p.Brand, true }

func (p Product) ListingPrice(c Currency) (decimal.Decimal, bool) { return p.PriceIn(c), true }

func (p Product) ListingRating() (float64, bool) { return p.Rating, true }

func (p Product) ListingTitle() string { return p.Name }
