package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mrfixit/internal/repositories"
	"mrfixit/internal/services"
)

// BlogHandler handles HTTP requests for the blog.
type BlogHandler struct {
	service *services.BlogService
	logger  *zap.Logger
}

// NewBlogHandler creates a new BlogHandler.
func NewBlogHandler(service *services.BlogService, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{service: service, logger: logger}
}

// RegisterRoutes registers the blog routes with the Fiber app.
func (h *BlogHandler) RegisterRoutes(router fiber.Router) {
	blogRoutes := router.Group("/blog")
	blogRoutes.Get("/", h.HandleListPosts)
	blogRoutes.Get("/featured", h.HandleGetFeatured)
	blogRoutes.Get("/categories", h.HandleGetCategories)
}

// HandleListPosts returns one page of the blog grid.
func (h *BlogHandler) HandleListPosts(c *fiber.Ctx) error {
	page, err := h.service.List(c.UserContext(), services.BlogQuery{
		Category: c.Query("category"),
		Query:    c.Query("q"),
		Page:     c.QueryInt("page", 1),
		PerPage:  c.QueryInt("limit", 0),
	})
	if err != nil {
		h.logger.Error("blog listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve blog posts",
			"error":   err.Error(),
		})
	}
	return c.JSON(newPageResponse(page, "No posts found"))
}

// HandleGetFeatured returns the featured post.
func (h *BlogHandler) HandleGetFeatured(c *fiber.Ctx) error {
	post, err := h.service.Featured()
	if err != nil {
		if errors.Is(err, repositories.ErrPostNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No featured post",
			})
		}
		h.logger.Error("loading featured post failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve featured post",
			"error":   err.Error(),
		})
	}
	return c.JSON(post)
}

// HandleGetCategories returns the category tabs shown above the blog grid.
func (h *BlogHandler) HandleGetCategories(c *fiber.Ctx) error {
	return c.JSON(h.service.Categories())
}
