package services

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"mrfixit/internal/listing"
	"mrfixit/internal/models"
	"mrfixit/internal/repositories"
)

// AllCategories is the blog tab that places no category restriction.
const AllCategories = "All"

// BlogQuery is one request against the blog grid.
type BlogQuery struct {
	Category string
	Query    string
	Page     int
	PerPage  int
}

// BlogService handles business logic related to blog posts.
type BlogService struct {
	blogRepo   repositories.BlogRepository
	categories []string
	perPage    int
	latency    time.Duration
}

// NewBlogService creates a new BlogService. categories are the tabs offered
// above the grid; AllCategories is always the first of them.
func NewBlogService(blogRepo repositories.BlogRepository, categories []string, perPage int, latency time.Duration) *BlogService {
	if perPage <= 0 {
		perPage = 6
	}
	tabs := []string{AllCategories}
	for _, c := range categories {
		c = strings.TrimSpace(c)
		if c == "" || slices.ContainsFunc(tabs, func(t string) bool { return strings.EqualFold(t, c) }) {
			continue
		}
		tabs = append(tabs, c)
	}
	return &BlogService{blogRepo: blogRepo, categories: tabs, perPage: perPage, latency: latency}
}

// Categories returns the blog tabs in display order.
func (s *BlogService) Categories() []string {
	return slices.Clone(s.categories)
}

// List filters and paginates the blog grid. The featured post is shown on
// its own and never appears in the grid.
func (s *BlogService) List(ctx context.Context, q BlogQuery) (listing.Page[models.BlogPost], error) {
	if err := wait(ctx, s.latency); err != nil {
		return listing.Page[models.BlogPost]{}, err
	}

	posts, err := s.gridPosts()
	if err != nil {
		return listing.Page[models.BlogPost]{}, err
	}

	spec := models.FilterSpec{Query: q.Query}
	if c := strings.TrimSpace(q.Category); c != "" && !strings.EqualFold(c, AllCategories) {
		spec.Categories = []string{c}
	}

	perPage := q.PerPage
	if perPage <= 0 {
		perPage = s.perPage
	}

	matched := listing.Apply(posts, spec, models.CurrencyUSD)
	return listing.Paginate(matched, q.Page, perPage), nil
}

// Featured returns the post highlighted at the top of the blog page.
func (s *BlogService) Featured() (*models.BlogPost, error) {
	return s.blogRepo.GetFeatured()
}

// Preview returns the first n grid posts for the home page.
func (s *BlogService) Preview(n int) ([]models.BlogPost, error) {
	posts, err := s.gridPosts()
	if err != nil {
		return nil, err
	}
	if n >= 0 && n < len(posts) {
		posts = posts[:n]
	}
	return posts, nil
}

func (s *BlogService) gridPosts() ([]models.BlogPost, error) {
	all, err := s.blogRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load blog posts: %w", err)
	}
	posts := make([]models.BlogPost, 0, len(all))
	for _, p := range all {
		if !p.Featured {
			posts = append(posts, p)
		}
	}
	return posts, nil
}
