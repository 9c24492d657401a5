package repositories

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"mrfixit/internal/models"
)

// GORMContentRepository is a GORM implementation of ContentRepository.
type GORMContentRepository struct {
	db *gorm.DB
}

// NewGORMContentRepository creates a new instance of GORMContentRepository.
func NewGORMContentRepository(db *gorm.DB) *GORMContentRepository {
	return &GORMContentRepository{db: db}
}

func (r *GORMContentRepository) GetSlides() ([]models.Slide, error) {
	var slides []models.Slide
	if err := r.db.Order("position, id").Find(&slides).Error; err != nil {
		return nil, fmt.Errorf("failed to get slides: %w", err)
	}
	return slides, nil
}

func (r *GORMContentRepository) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.Order("position, id").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories: %w", err)
	}
	return categories, nil
}

func (r *GORMContentRepository) CreateSlide(slide *models.Slide) error {
	if err := r.db.Create(slide).Error; err != nil {
		return fmt.Errorf("failed to create slide: %w", err)
	}
	return nil
}

func (r *GORMContentRepository) CreateCategory(category *models.Category) error {
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	if err := r.db.Create(category).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}
