package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mrfixit/internal/services"
)

// ContentHandler serves the home page and static content.
type ContentHandler struct {
	service *services.ContentService
	logger  *zap.Logger
}

// NewContentHandler creates a new ContentHandler.
func NewContentHandler(service *services.ContentService, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{service: service, logger: logger}
}

// RegisterRoutes registers the content routes with the Fiber app.
func (h *ContentHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/home", h.HandleGetHome)
	router.Get("/categories", h.HandleGetCategories)
	router.Get("/values", h.HandleGetValues)
	router.Get("/history", h.HandleGetHistory)
	router.Get("/testimonials", h.HandleGetTestimonials)
}

func (h *ContentHandler) failed(c *fiber.Ctx, message string, err error) error {
	h.logger.Error(message, zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": message,
		"error":   err.Error(),
	})
}

// HandleGetHome returns every home page section below the header.
func (h *ContentHandler) HandleGetHome(c *fiber.Ctx) error {
	home, err := h.service.Home(c.UserContext())
	if err != nil {
		return h.failed(c, "Could not load home page", err)
	}
	return c.JSON(home)
}

// HandleGetCategories returns the product category tiles.
func (h *ContentHandler) HandleGetCategories(c *fiber.Ctx) error {
	categories, err := h.service.Categories()
	if err != nil {
		return h.failed(c, "Could not retrieve categories", err)
	}
	return c.JSON(categories)
}

// HandleGetValues returns the company values.
func (h *ContentHandler) HandleGetValues(c *fiber.Ctx) error {
	values, err := h.service.CompanyValues()
	if err != nil {
		return h.failed(c, "Could not retrieve company values", err)
	}
	return c.JSON(values)
}

// HandleGetHistory returns the company timeline.
func (h *ContentHandler) HandleGetHistory(c *fiber.Ctx) error {
	return c.JSON(h.service.History())
}

// HandleGetTestimonials returns the customer quotes.
func (h *ContentHandler) HandleGetTestimonials(c *fiber.Ctx) error {
	testimonials, err := h.service.Testimonials()
	if err != nil {
		return h.failed(c, "Could not retrieve testimonials", err)
	}
	return c.JSON(testimonials)
}
