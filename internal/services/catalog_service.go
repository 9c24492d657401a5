// Package services holds the storefront's business logic between the HTTP
// handlers and the repositories.
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

// ProductQuery is one request against the product listing.
type ProductQuery struct {
	Spec     models.FilterSpec
	Currency models.Currency
	Page     int
	PerPage  int
}

// Facets are the values the filter sidebar offers.
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
}

// CatalogService handles business logic related to the product catalog.
type CatalogService struct {
	productRepo repositories.ProductRepository
	contentRepo repositories.ContentRepository
	perPage     int
	latency     time.Duration
}

// NewCatalogService creates a new CatalogService. perPage is the page size used
// when a query does not set one; latency delays every search to mimic a
// remote catalog.
func NewCatalogService(productRepo repositories.ProductRepository, contentRepo repositories.ContentRepository, perPage int, latency time.Duration) *CatalogService {
	if perPage <= 0 {
		perPage = listing.DefaultPerPage
	}
	return &CatalogService{
		productRepo: productRepo,
		contentRepo: contentRepo,
		perPage:     perPage,
		latency:     latency,
	}
}

// Search filters and paginates the catalog. It honours ctx cancellation
// while the simulated latency elapses.
func (s *CatalogService) Search(ctx context.Context, q ProductQuery) (listing.Page[models.Product], error) {
	if err := wait(ctx, s.latency); err != nil {
		return listing.Page[models.Product]{}, err
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return listing.Page[models.Product]{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	spec := q.Spec
	if len(spec.Categories) > 0 {
		if spec.Categories, err = s.resolveCategories(spec.Categories); err != nil {
			return listing.Page[models.Product]{}, err
		}
	}

	currency := q.Currency
	if currency == "" {
		currency = models.CurrencyUSD
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = s.perPage
	}

	matched := listing.Apply(products, spec, currency)
	page := listing.Paginate(matched, q.Page, perPage)
	for i := range page.Items {
		page.Items[i] = page.Items[i].WithDisplayPrice(currency)
	}
	return page, nil
}

// resolveCategories maps category slugs, as used by home page links such as
// ?category=tools, onto display names. Unknown values pass through unchanged.
func (s *CatalogService) resolveCategories(values []string) ([]string, error) {
	categories, err := s.contentRepo.GetCategories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	resolved := make([]string, 0, len(values))
	for _, v := range values {
		name := v
		for _, c := range categories {
			if strings.EqualFold(strings.TrimSpace(v), c.Slug) {
				name = c.Name
				break
			}
		}
		resolved = append(resolved, name)
	}
	return resolved, nil
}

// GetProduct retrieves a single product by its ID, priced for display in
// currency.
func (s *CatalogService) GetProduct(id string, currency models.Currency) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if currency == "" {
		currency = models.CurrencyUSD
	}
	priced := product.WithDisplayPrice(currency)
	return &priced, nil
}

// Facets lists the distinct categories and brands in catalog order.
func (s *CatalogService) Facets() (Facets, error) {
	products, err := s.productRepo.GetAll()
	if err != nil {
		return Facets{}, fmt.Errorf("failed to load catalog: %w", err)
	}

	f := Facets{Categories: []string{}, Brands: []string{}}
	for _, p := range products {
		if p.Category != "" && !slices.Contains(f.Categories, p.Category) {
			f.Categories = append(f.Categories, p.Category)
		}
		if p.Brand != "" && !slices.Contains(f.Brands, p.Brand) {
			f.Brands = append(f.Brands, p.Brand)
		}
	}
	return f, nil
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
