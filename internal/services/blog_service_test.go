package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mrfixit/internal/repositories"
	"mrfixit/internal/seed"
	"mrfixit/internal/services"
)

func TestBlogService_ListAllExcludesFeatured(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	service := services.NewBlogService(blogRepo, seed.BlogCategories(), 6, 0)

	blogRepo.On("GetAll").Return(seed.BlogPosts(), nil).Once()

	page, err := service.List(context.Background(), services.BlogQuery{Category: services.AllCategories})
	require.NoError(t, err)
	assert.Equal(t, 6, page.TotalItems)
	assert.Equal(t, 1, page.TotalPages)
	for _, p := range page.Items {
		assert.False(t, p.Featured)
	}
	blogRepo.AssertExpectations(t)
}

func TestBlogService_ListByCategory(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	service := services.NewBlogService(blogRepo, seed.BlogCategories(), 6, 0)

	blogRepo.On("GetAll").Return(seed.BlogPosts(), nil)

	tools, err := service.List(context.Background(), services.BlogQuery{Category: "Tools"})
	require.NoError(t, err)
	require.Len(t, tools.Items, 1)
	assert.Equal(t, "3", tools.Items[0].ID)

	electrical, err := service.List(context.Background(), services.BlogQuery{Category: "Electrical"})
	require.NoError(t, err)
	assert.True(t, electrical.Empty())
	assert.NotNil(t, electrical.Items)
	assert.Equal(t, 1, electrical.TotalPages)
}

func TestBlogService_ListPaginates(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	service := services.NewBlogService(blogRepo, seed.BlogCategories(), 6, 0)

	blogRepo.On("GetAll").Return(seed.BlogPosts(), nil).Once()

	page, err := service.List(context.Background(), services.BlogQuery{Page: 2, PerPage: 4})
	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, "5", page.Items[0].ID)
}

func TestBlogService_ListError(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	service := services.NewBlogService(blogRepo, seed.BlogCategories(), 6, 0)

	blogRepo.On("GetAll").Return(nil, errors.New("boom")).Once()

	_, err := service.List(context.Background(), services.BlogQuery{})
	assert.Error(t, err)
}

func TestBlogService_FeaturedAndPreview(t *testing.T) {
	blogRepo := new(MockBlogRepository)
	service := services.NewBlogService(blogRepo, seed.BlogCategories(), 6, 0)

	posts := seed.BlogPosts()
	blogRepo.On("GetFeatured").Return(&posts[0], nil).Once()
	blogRepo.On("GetAll").Return(posts, nil).Once()

	featured, err := service.Featured()
	require.NoError(t, err)
	assert.Equal(t, "featured-1", featured.ID)

	preview, err := service.Preview(3)
	require.NoError(t, err)
	require.Len(t, preview, 3)
	assert.Equal(t, "1", preview[0].ID)

	blogRepo.On("GetFeatured").Return(nil, repositories.ErrPostNotFound).Once()
	_, err = service.Featured()
	assert.ErrorIs(t, err, repositories.ErrPostNotFound)
}

func TestBlogService_Categories(t *testing.T) {
	service := services.NewBlogService(new(MockBlogRepository), seed.BlogCategories(), 6, 0)

	categories := service.Categories()
	assert.Equal(t, []string{"All", "DIY Tips", "Tools", "Paint", "Plumbing", "Electrical", "Garden", "Seasonal"}, categories)

	categories[1] = "changed"
	assert.Equal(t, "DIY Tips", service.Categories()[1])
}

func TestBlogService_CategoriesAlwaysStartWithAll(t *testing.T) {
	service := services.NewBlogService(new(MockBlogRepository), []string{"Tools", " ", "all", "tools", "Paint"}, 6, 0)
	assert.Equal(t, []string{services.AllCategories, "Tools", "Paint"}, service.Categories())

	assert.Equal(t, []string{services.AllCategories}, services.NewBlogService(new(MockBlogRepository), nil, 6, 0).Categories())
}
