package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// BlogPost is a DIY article shown on the blog listing and home page preview.
// Date and ReadTime are display strings, not parsed values.
type BlogPost struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Position  int       `json:"-" gorm:"index"`
	Title     string    `json:"title" gorm:"type:varchar(200)"`
	Excerpt   string    `json:"excerpt"`
	Category  string    `json:"category" gorm:"index;type:varchar(100)"`
	Date      string    `json:"date" gorm:"type:varchar(50)"`
	ReadTime  string    `json:"read_time" gorm:"type:varchar(50)"`
	ImageURL  string    `json:"image_url"`
	Featured  bool      `json:"featured"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

func (b BlogPost) ListingCategory() string { return b.Category }

// Posts carry no brand, price or rating, so those filter stages leave them alone.
func (b BlogPost) ListingBrand() (string, bool) { return "", false }

func (b BlogPost) ListingPrice(Currency) (decimal.Decimal, bool) { return decimal.Zero, false }

func (b BlogPost) ListingRating() (float64, bool) { return 0, false }

func (b BlogPost) ListingTitle() string { return b.Title }
