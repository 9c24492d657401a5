package services

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"mrfixit/internal/models"
	"mrfixit/internal/repositories"
)

// HomePreviewSize is the number of blog posts shown on the home page.
const HomePreviewSize = 3

// Home is everything the home page renders below the header.
type Home struct {
	Slides       []models.Slide       `json:"slides"`
	Categories   []models.Category    `json:"categories"`
	Blog         []models.BlogPost    `json:"blog"`
	Testimonials []models.Testimonial `json:"testimonials"`
}

// StaticContent is the site copy that ships with the binary rather than
// living in the database.
type StaticContent struct {
	Values       []models.CompanyValue
	Testimonials []models.Testimonial
	History      []models.Milestone
}

// ContentService serves the static site content.
type ContentService struct {
	contentRepo repositories.ContentRepository
	blog        *BlogService
	static      StaticContent
}

// NewContentService creates a new ContentService.
func NewContentService(contentRepo repositories.ContentRepository, blog *BlogService, static StaticContent) *ContentService {
	return &ContentService{contentRepo: contentRepo, blog: blog, static: static}
}

// Slides returns the hero carousel slides in display order.
func (s *ContentService) Slides() ([]models.Slide, error) {
	return s.contentRepo.GetSlides()
}

// Categories returns the product category tiles.
func (s *ContentService) Categories() ([]models.Category, error) {
	return s.contentRepo.GetCategories()
}

// CompanyValues returns the about page values. Entries with an icon outside
// the known set are rejected.
func (s *ContentService) CompanyValues() ([]models.CompanyValue, error) {
	out := make([]models.CompanyValue, 0, len(s.static.Values))
	for _, v := range s.static.Values {
		icon, err := models.ParseValueIcon(string(v.Icon))
		if err != nil {
			return nil, fmt.Errorf("value %q: %w", v.Title, err)
		}
		v.Glyph = icon.Glyph()
		out = append(out, v)
	}
	return out, nil
}

// Testimonials returns the customer quotes. A rating outside one to five
// stars is rejected.
func (s *ContentService) Testimonials() ([]models.Testimonial, error) {
	out := make([]models.Testimonial, 0, len(s.static.Testimonials))
	for _, t := range s.static.Testimonials {
		if t.Rating < 1 || t.Rating > models.MaxTestimonialRating {
			return nil, fmt.Errorf("testimonial from %q: rating %d out of range", t.Name, t.Rating)
		}
		out = append(out, t)
	}
	return out, nil
}

// History returns the company timeline.
func (s *ContentService) History() []models.Milestone {
	return slices.Clone(s.static.History)
}

// Home loads the home page sections concurrently.
func (s *ContentService) Home(ctx context.Context) (*Home, error) {
	var home Home
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slides, err := s.contentRepo.GetSlides()
		if err != nil {
			return fmt.Errorf("failed to load slides: %w", err)
		}
		home.Slides = slides
		return nil
	})
	g.Go(func() error {
		categories, err := s.contentRepo.GetCategories()
		if err != nil {
			return fmt.Errorf("failed to load categories: %w", err)
		}
		home.Categories = categories
		return nil
	})
	g.Go(func() error {
		if err := ctx.Err(); err != nil {
			return err
		}
		posts, err := s.blog.Preview(HomePreviewSize)
		if err != nil {
			return err
		}
		home.Blog = posts
		return nil
	})

	g.Go(func() error {
		testimonials, err := s.Testimonials()
		if err != nil {
			return err
		}
		home.Testimonials = testimonials
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &home, nil
}
