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

// CartHandler handles add-to-cart requests.
type CartHandler struct {
	service *services.CartService
	logger  *zap.Logger
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(service *services.CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{service: service, logger: logger}
}

// RegisterRoutes registers the cart routes with the Fiber app.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/cart/items", h.HandleAddItem)
}

// HandleAddItem forwards an add-to-cart request.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var item models.CartItem
	if err := c.BodyParser(&item); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	product, err := h.service.AddItem(&item)
	if err != nil {
		if ok, resp := validationFailed(c, err); ok {
			return resp
		}
		if errors.Is(err, repositories.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": fmt.Sprintf("Product with ID %s not found", item.ProductID),
			})
		}
		h.logger.Error("add to cart failed", zap.String("product_id", item.ProductID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": fmt.Sprintf("%s added to cart", product.Name),
		"item":    item,
		"product": product,
	})
}
