package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mrfixit/internal/models"
	"mrfixit/internal/repositories"
	"mrfixit/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	service *services.CatalogService
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.CatalogService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{service: service, logger: logger}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleSearchProducts)
	productRoutes.Get("/facets", h.HandleGetFacets)
	productRoutes.Get("/:id", h.HandleGetProductByID)
}

// HandleSearchProducts filters, searches and paginates the catalog.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	spec, err := parseFilterSpec(c)
	if err != nil {
		return badRequest(c, "Invalid filter", err)
	}
	currency, err := models.ParseCurrency(c.Query("currency"))
	if err != nil {
		return badRequest(c, "Invalid currency", err)
	}

	page, err := h.service.Search(c.UserContext(), services.ProductQuery{
		Spec:     spec,
		Currency: currency,
		Page:     c.QueryInt("page", 1),
		PerPage:  c.QueryInt("limit", 0),
	})
	if err != nil {
		h.logger.Error("product search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
	return c.JSON(newPageResponse(page, "No products found"))
}

// HandleGetFacets returns the categories and brands offered by the sidebar.
func (h *ProductHandler) HandleGetFacets(c *fiber.Ctx) error {
	facets, err := h.service.Facets()
	if err != nil {
		h.logger.Error("loading facets failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve filters",
			"error":   err.Error(),
		})
	}
	return c.JSON(facets)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	currency, err := models.ParseCurrency(c.Query("currency"))
	if err != nil {
		return badRequest(c, "Invalid currency", err)
	}
	product, err := h.service.GetProduct(productID, currency)
	if err != nil {
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", productID),
			})
		}
		h.logger.Error("loading product failed", zap.String("id", productID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve product",
			"error":   err.Error(),
		})
	}
	return c.JSON(product)
}
