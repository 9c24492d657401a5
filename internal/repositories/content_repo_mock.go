package repositories

import (
	"sync"

	"github.com/google/uuid"

	"mrfixit/internal/models"
)

// MockContentRepository is an in-memory implementation of ContentRepository.
type MockContentRepository struct {
	slides     []models.Slide
	categories []models.Category
	mu         sync.RWMutex
}

// NewMockContentRepository creates a new instance of MockContentRepository.
func NewMockContentRepository() *MockContentRepository {
	return &MockContentRepository{}
}

func (r *MockContentRepository) GetSlides() ([]models.Slide, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Slide(nil), r.slides...), nil
}

func (r *MockContentRepository) GetCategories() ([]models.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Category(nil), r.categories...), nil
}

func (r *MockContentRepository) CreateSlide(slide *models.Slide) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slides = append(r.slides, *slide)
	return nil
}

func (r *MockContentRepository) CreateCategory(category *models.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == "" {
		category.ID = uuid.New().String()
	}
	r.categories = append(r.categories, *category)
	return nil
}
