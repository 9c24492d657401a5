package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mrfixit/internal/models"
)

// GORMBlogRepository is a GORM implementation of BlogRepository.
type GORMBlogRepository struct {
	db *gorm.DB
}

// NewGORMBlogRepository creates a new instance of GORMBlogRepository.
func NewGORMBlogRepository(db *gorm.DB) *GORMBlogRepository {
	return &GORMBlogRepository{db: db}
}

// GetAll retrieves every post ordered by position.
func (r *GORMBlogRepository) GetAll() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	if err := r.db.Order("position, id").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to get blog posts: %w", err)
	}
	return posts, nil
}

// GetFeatured retrieves the first featured post.
func (r *GORMBlogRepository) GetFeatured() (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.Where("featured = ?", true).Order("position").First(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("featured post: %w", ErrPostNotFound)
		}
		return nil, fmt.Errorf("failed to get featured post: %w", err)
	}
	return &post, nil
}

// Create inserts a post.
func (r *GORMBlogRepository) Create(post *models.BlogPost) error {
	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	if err := r.db.Create(post).Error; err != nil {
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}
