package seed

import (
	"fmt"

	"mrfixit/internal/repositories"
)

// Load writes the sample content into empty repositories. Repositories that
// already hold data are left alone, so restarting against a shared database
// does not duplicate the catalog.
func Load(products repositories.ProductRepository, blog repositories.BlogRepository, content repositories.ContentRepository) error {
	existing, err := products.GetAll()
	if err != nil {
		return fmt.Errorf("failed to inspect catalog: %w", err)
	}
	if len(existing) == 0 {
		for _, p := range Products() {
			p := p
			if err := products.Create(&p); err != nil {
				return fmt.Errorf("failed to seed product %s: %w", p.ID, err)
			}
		}
	}

	posts, err := blog.GetAll()
	if err != nil {
		return fmt.Errorf("failed to inspect blog: %w", err)
	}
	if len(posts) == 0 {
		for _, p := range BlogPosts() {
			p := p
			if err := blog.Create(&p); err != nil {
				return fmt.Errorf("failed to seed blog post %s: %w", p.ID, err)
			}
		}
	}

	slides, err := content.GetSlides()
	if err != nil {
		return fmt.Errorf("failed to inspect slides: %w", err)
	}
	if len(slides) == 0 {
		for _, s := range Slides() {
			s := s
			if err := content.CreateSlide(&s); err != nil {
				return fmt.Errorf("failed to seed slide %d: %w", s.ID, err)
			}
		}
	}

	categories, err := content.GetCategories()
	if err != nil {
		return fmt.Errorf("failed to inspect categories: %w", err)
	}
	if len(categories) == 0 {
		for _, c := range Categories() {
			c := c
			if err := content.CreateCategory(&c); err != nil {
				return fmt.Errorf("failed to seed category %s: %w", c.Slug, err)
			}
		}
	}
	return nil
}
