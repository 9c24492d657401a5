package models

import (
	"fmt"
	"time"
)

// Slide is a promotion shown in the home page hero carousel.
type Slide struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement:false"`
	Position    int       `json:"-" gorm:"index"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"image_url"`
	CTAText     string    `json:"cta_text"`
	CTALink     string    `json:"cta_link"`
	CreatedAt   time.Time `json:"-"`
}

// Category is a product category tile on the home page.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Position  int       `json:"-" gorm:"index"`
	Name      string    `json:"name" gorm:"uniqueIndex;type:varchar(100)"`
	Slug      string    `json:"slug" gorm:"uniqueIndex;type:varchar(100)"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"-"`
}

// ValueIcon names the icon drawn next to a company value.
type ValueIcon string

const (
	ValueIconQuality   ValueIcon = "quality"
	ValueIconService   ValueIcon = "service"
	ValueIconCommunity ValueIcon = "community"
	ValueIconExpertise ValueIcon = "expertise"
)

var valueIconGlyphs = map[ValueIcon]string{
	ValueIconQuality:   "award",
	ValueIconService:   "heart",
	ValueIconCommunity: "users",
	ValueIconExpertise: "shield",
}

// ParseValueIcon rejects anything outside the known icon set.
func ParseValueIcon(s string) (ValueIcon, error) {
	icon := ValueIcon(s)
	if _, ok := valueIconGlyphs[icon]; !ok {
		return "", fmt.Errorf("unknown value icon: %q", s)
	}
	return icon, nil
}

// Glyph returns the icon-set name the renderer draws for this value.
func (v ValueIcon) Glyph() string {
	return valueIconGlyphs[v]
}

// CompanyValue is one of the values listed on the about page.
type CompanyValue struct {
	Icon        ValueIcon `json:"icon"`
	Glyph       string    `json:"glyph"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

// MaxTestimonialRating is the number of stars a testimonial card draws.
const MaxTestimonialRating = 5

// Testimonial is a customer quote shown on the home page.
type Testimonial struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar"`
	Rating    int    `json:"rating"`
	Quote     string `json:"testimonial"`
	Date      string `json:"date"`
}

// Milestone is one entry on the about page company timeline.
type Milestone struct {
	Year        string `json:"year"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"image_url,omitempty"`
}
