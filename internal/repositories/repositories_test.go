package repositories_test

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrfixit/internal/database"
	"mrfixit/internal/models"
	"mrfixit/internal/repositories"
	"mrfixit/internal/seed"
)

type repoSet struct {
	products repositories.ProductRepository
	blog     repositories.BlogRepository
	content  repositories.ContentRepository
}

func implementations(t *testing.T) map[string]repoSet {
	t.Helper()
	db, err := database.Open("sqlite", fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	return map[string]repoSet{
		"memory": {
			products: repositories.NewMockProductRepository(),
			blog:     repositories.NewMockBlogRepository(),
			content:  repositories.NewMockContentRepository(),
		},
		"gorm": {
			products: repositories.NewGORMProductRepository(db),
			blog:     repositories.NewGORMBlogRepository(db),
			content:  repositories.NewGORMContentRepository(db),
		},
	}
}

func TestRepositories_SeededOrderIsPreserved(t *testing.T) {
	for name, repos := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, seed.Load(repos.products, repos.blog, repos.content))

			products, err := repos.products.GetAll()
			require.NoError(t, err)
			require.Len(t, products, 12)
			for i, p := range products {
				assert.Equal(t, fmt.Sprintf("prod-%03d", i+1), p.ID)
			}
			assert.True(t, products[0].PriceUSD.Equal(seed.Products()[0].PriceUSD))
			assert.True(t, products[0].PriceZWL.Equal(seed.Products()[0].PriceZWL))

			posts, err := repos.blog.GetAll()
			require.NoError(t, err)
			assert.Len(t, posts, 7)

			featured, err := repos.blog.GetFeatured()
			require.NoError(t, err)
			assert.Equal(t, "featured-1", featured.ID)

			slides, err := repos.content.GetSlides()
			require.NoError(t, err)
			require.Len(t, slides, 3)
			assert.Equal(t, "Season Sale", slides[0].Title)

			categories, err := repos.content.GetCategories()
			require.NoError(t, err)
			require.Len(t, categories, 6)
			assert.Equal(t, "tools", categories[0].Slug)

			// Loading twice must not duplicate anything.
			require.NoError(t, seed.Load(repos.products, repos.blog, repos.content))
			products, err = repos.products.GetAll()
			require.NoError(t, err)
			assert.Len(t, products, 12)
		})
	}
}

func TestRepositories_ProductLookup(t *testing.T) {
	for name, repos := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, seed.Load(repos.products, repos.blog, repos.content))

			p, err := repos.products.GetByID("prod-005")
			require.NoError(t, err)
			assert.Equal(t, "LED Floodlight 50W", p.Name)

			_, err = repos.products.GetByID("missing")
			assert.ErrorIs(t, err, repositories.ErrProductNotFound)
		})
	}
}

func TestRepositories_CreateAssignsIDAndPosition(t *testing.T) {
	for name, repos := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, seed.Load(repos.products, repos.blog, repos.content))

			p := &models.Product{Name: "Claw Hammer", Category: "Tools", Brand: "Stanley", Rating: 4.0}
			require.NoError(t, repos.products.Create(p))
			assert.NotEmpty(t, p.ID)
			assert.Equal(t, 13, p.Position)

			all, err := repos.products.GetAll()
			require.NoError(t, err)
			assert.Equal(t, "Claw Hammer", all[len(all)-1].Name)
		})
	}
}

func TestRepositories_NoFeaturedPost(t *testing.T) {
	for name, repos := range implementations(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repos.blog.GetFeatured()
			assert.ErrorIs(t, err, repositories.ErrPostNotFound)
		})
	}
}
