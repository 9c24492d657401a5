package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mrfixit/internal/models"
	"mrfixit/internal/services"
)

// ContactHandler handles the contact form and newsletter signups.
type ContactHandler struct {
	service *services.ContactService
	logger  *zap.Logger
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(service *services.ContactService, logger *zap.Logger) *ContactHandler {
	return &ContactHandler{service: service, logger: logger}
}

// RegisterRoutes registers the contact routes with the Fiber app.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmitContact)
	router.Post("/newsletter", h.HandleSubscribe)
}

// HandleSubmitContact accepts a contact form submission.
func (h *ContactHandler) HandleSubmitContact(c *fiber.Ctx) error {
	var msg models.ContactMessage
	if err := c.BodyParser(&msg); err != nil {
		h.logger.Debug("invalid contact request body", zap.Error(err))
		return badRequest(c, "Invalid request body", err)
	}

	if err := h.service.Submit(&msg); err != nil {
		if ok, resp := validationFailed(c, err); ok {
			return resp
		}
		h.logger.Error("contact submission failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not send message",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Message received",
		"id":      msg.ID,
	})
}

// HandleSubscribe accepts a newsletter signup.
func (h *ContactHandler) HandleSubscribe(c *fiber.Ctx) error {
	var signup models.NewsletterSignup
	if err := c.BodyParser(&signup); err != nil {
		return badRequest(c, "Invalid request body", err)
	}

	if err := h.service.Subscribe(&signup); err != nil {
		if ok, resp := validationFailed(c, err); ok {
			return resp
		}
		h.logger.Error("newsletter signup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not subscribe",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
		"message": "Subscribed successfully",
	})
}
