package repositories

import "mrfixit/internal/models"

// ContentRepository serves the static site content: hero slides and
// category tiles, both in display order.
type ContentRepository interface {
	GetSlides() ([]models.Slide, error)
	GetCategories() ([]models.Category, error)
	CreateSlide(slide *models.Slide) error
	CreateCategory(category *models.Category) error
}
