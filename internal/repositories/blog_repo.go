package repositories

import (
	"errors"

	"mrfixit/internal/models"
)

// ErrPostNotFound is returned when no blog post matches.
var ErrPostNotFound = errors.New("blog post not found")

// BlogRepository defines the interface for blog post data access.
// GetAll returns posts in display order.
type BlogRepository interface {
	GetAll() ([]models.BlogPost, error)
	GetFeatured() (*models.BlogPost, error)
	Create(post *models.BlogPost) error
}
