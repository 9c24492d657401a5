package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"mrfixit/internal/slides"
)

// HeroHandler exposes the home page carousel and its navigation hooks.
type HeroHandler struct {
	rotator *slides.Rotator
}

// NewHeroHandler creates a new HeroHandler.
func NewHeroHandler(rotator *slides.Rotator) *HeroHandler {
	return &HeroHandler{rotator: rotator}
}

// RegisterRoutes registers the hero routes with the Fiber app.
func (h *HeroHandler) RegisterRoutes(router fiber.Router) {
	heroRoutes := router.Group("/hero")
	heroRoutes.Get("/", h.HandleGetHero)
	heroRoutes.Post("/next", h.HandleNext)
	heroRoutes.Post("/prev", h.HandlePrev)
	heroRoutes.Post("/goto/:index", h.HandleGoTo)
	heroRoutes.Post("/pause", h.HandlePause)
	heroRoutes.Post("/resume", h.HandleResume)
}

func (h *HeroHandler) respond(c *fiber.Ctx) error {
	return c.JSON(h.rotator.View())
}

// HandleGetHero returns the slides and the rotator position.
func (h *HeroHandler) HandleGetHero(c *fiber.Ctx) error {
	return h.respond(c)
}

// HandleNext advances one slide.
func (h *HeroHandler) HandleNext(c *fiber.Ctx) error {
	h.rotator.Next()
	return h.respond(c)
}

// HandlePrev steps back one slide.
func (h *HeroHandler) HandlePrev(c *fiber.Ctx) error {
	h.rotator.Prev()
	return h.respond(c)
}

// HandleGoTo jumps to the slide at :index.
func (h *HeroHandler) HandleGoTo(c *fiber.Ctx) error {
	index, err := c.ParamsInt("index")
	if err != nil {
		return badRequest(c, "Slide index must be a whole number", err)
	}
	if err := h.rotator.GoTo(index); err != nil {
		if errors.Is(err, slides.ErrInvalidIndex) {
			return badRequest(c, "Invalid slide index", err)
		}
		return err
	}
	return h.respond(c)
}

// HandlePause stops autoplay.
func (h *HeroHandler) HandlePause(c *fiber.Ctx) error {
	h.rotator.Pause()
	return h.respond(c)
}

// HandleResume restarts autoplay.
func (h *HeroHandler) HandleResume(c *fiber.Ctx) error {
	h.rotator.Resume()
	return h.respond(c)
}
