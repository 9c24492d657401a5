package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"mrfixit/internal/browse"
	"mrfixit/internal/models"
)

// BrowseCookie carries the browse session ID.
const BrowseCookie = "mrfixit_browse"

// BrowseHandler exposes the stateful product listing page: each visitor's
// filters, search, currency and page live server side under a cookie.
type BrowseHandler struct {
	manager *browse.Manager
	ttl     time.Duration
	logger  *zap.Logger
}

// NewBrowseHandler creates a new BrowseHandler.
func NewBrowseHandler(manager *browse.Manager, ttl time.Duration, logger *zap.Logger) *BrowseHandler {
	return &BrowseHandler{manager: manager, ttl: ttl, logger: logger}
}

// RegisterRoutes registers the browse routes with the Fiber app.
func (h *BrowseHandler) RegisterRoutes(router fiber.Router) {
	browseRoutes := router.Group("/browse")
	browseRoutes.Get("/", h.HandleGet)
	browseRoutes.Put("/filters", h.HandleSetFilters)
	browseRoutes.Put("/search", h.HandleSearch)
	browseRoutes.Put("/currency", h.HandleSetCurrency)
	browseRoutes.Put("/per-page", h.HandleSetPerPage)
	browseRoutes.Put("/page", h.HandleSetPage)
	browseRoutes.Post("/reset", h.HandleReset)
	browseRoutes.Delete("/", h.HandleEnd)
}

func (h *BrowseHandler) session(c *fiber.Ctx) *browse.Session {
	s, created := h.manager.GetOrCreate(c.Cookies(BrowseCookie))
	if created {
		c.Cookie(&fiber.Cookie{
			Name:     BrowseCookie,
			Value:    s.ID(),
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
			MaxAge:   int(h.ttl.Seconds()),
		})
	}
	return s
}

func (h *BrowseHandler) respond(c *fiber.Ctx, snap browse.Snapshot, err error) error {
	switch {
	case err == nil:
		return c.JSON(snap)
	case errors.Is(err, browse.ErrStaleResult):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Superseded by a newer request",
			"error":   err.Error(),
		})
	case errors.Is(err, context.Canceled):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"message": "Request cancelled",
		})
	default:
		h.logger.Error("browse search failed", zap.String("session", snap.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
			"error":   err.Error(),
		})
	}
}

// HandleGet returns the session state, running the first search if needed.
func (h *BrowseHandler) HandleGet(c *fiber.Ctx) error {
	s := h.session(c)
	if snap := s.Snapshot(); snap.Result != nil {
		return c.JSON(snap)
	}
	snap, err := s.Refresh(c.UserContext())
	return h.respond(c, snap, err)
}

// HandleSetFilters replaces the sidebar filters.
func (h *BrowseHandler) HandleSetFilters(c *fiber.Ctx) error {
	var spec models.FilterSpec
	if err := c.BodyParser(&spec); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	snap, err := h.session(c).SetFilters(c.UserContext(), spec)
	return h.respond(c, snap, err)
}

// HandleSearch sets the search text.
func (h *BrowseHandler) HandleSearch(c *fiber.Ctx) error {
	var body struct {
		Query string `json:"query"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	snap, err := h.session(c).Search(c.UserContext(), body.Query)
	return h.respond(c, snap, err)
}

// HandleSetCurrency switches the active currency.
func (h *BrowseHandler) HandleSetCurrency(c *fiber.Ctx) error {
	var body struct {
		Currency string `json:"currency"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	currency, err := models.ParseCurrency(body.Currency)
	if err != nil {
		return badRequest(c, "Invalid currency", err)
	}
	snap, err := h.session(c).SetCurrency(c.UserContext(), currency)
	return h.respond(c, snap, err)
}

// HandleSetPerPage changes the page size.
func (h *BrowseHandler) HandleSetPerPage(c *fiber.Ctx) error {
	var body struct {
		PerPage int `json:"per_page"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	snap, err := h.session(c).SetPerPage(c.UserContext(), body.PerPage)
	return h.respond(c, snap, err)
}

// HandleSetPage moves to another page.
func (h *BrowseHandler) HandleSetPage(c *fiber.Ctx) error {
	var body struct {
		Page int `json:"page"`
	}
	if err := c.BodyParser(&body); err != nil {
		return badRequest(c, "Invalid request body", err)
	}
	snap, err := h.session(c).SetPage(c.UserContext(), body.Page)
	return h.respond(c, snap, err)
}

// HandleReset clears filters and search.
func (h *BrowseHandler) HandleReset(c *fiber.Ctx) error {
	snap, err := h.session(c).Reset(c.UserContext())
	return h.respond(c, snap, err)
}

// HandleEnd discards the session.
func (h *BrowseHandler) HandleEnd(c *fiber.Ctx) error {
	if id := c.Cookies(BrowseCookie); id != "" {
		h.manager.Delete(id)
	}
	c.ClearCookie(BrowseCookie)
	return c.SendStatus(fiber.StatusNoContent)
}
