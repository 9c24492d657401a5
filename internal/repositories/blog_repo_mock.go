package repositories

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"mrfixit/internal/models"
)

// MockBlogRepository is an in-memory implementation of BlogRepository.
type MockBlogRepository struct {
	posts []models.BlogPost
	mu    sync.RWMutex
}

// NewMockBlogRepository creates a new instance of MockBlogRepository.
func NewMockBlogRepository() *MockBlogRepository {
	return &MockBlogRepository{}
}

// GetAll returns a copy of all posts in insertion order.
func (r *MockBlogRepository) GetAll() ([]models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]models.BlogPost, len(r.posts))
	copy(posts, r.posts)
	return posts, nil
}

// GetFeatured returns the first featured post.
func (r *MockBlogRepository) GetFeatured() (*models.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.posts {
		if p.Featured {
			post := p
			return &post, nil
		}
	}
	return nil, fmt.Errorf("featured post: %w", ErrPostNotFound)
}

// Create appends a post.
func (r *MockBlogRepository) Create(post *models.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if post.ID == "" {
		post.ID = uuid.New().String()
	}
	r.posts = append(r.posts, *post)
	return nil
}
