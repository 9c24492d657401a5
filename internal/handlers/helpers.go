// Package handlers exposes the storefront over HTTP with Fiber.
package handlers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"mrfixit/internal/listing"
	"mrfixit/internal/models"
)

// pageResponse is a listing page plus the notice shown when nothing matched.
type pageResponse[T any] struct {
	listing.Page[T]
	Message string `json:"message,omitempty"`
}

func newPageResponse[T any](page listing.Page[T], emptyMessage string) pageResponse[T] {
	resp := pageResponse[T]{Page: page}
	if page.Empty() {
		resp.Message = emptyMessage
	}
	return resp
}

// validationFailed renders validator errors as a field-to-message map. It
// reports false when err is not a validation error.
func validationFailed(c *fiber.Ctx, err error) (bool, error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return false, nil
	}
	errorMessages := make(map[string]string)
	for _, e := range validationErrors {
		errorMessages[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag())
	}
	return true, c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"message": "Validation failed",
		"errors":  errorMessages,
	})
}

func badRequest(c *fiber.Ctx, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// queryList collects every value of a repeated or comma-separated query
// parameter: ?brand=Bosch&brand=Makita and ?brand=Bosch,Makita are the same.
func queryList(c *fiber.Ctx, key string) []string {
	var out []string
	for _, raw := range c.Context().QueryArgs().PeekMulti(key) {
		for _, v := range strings.Split(string(raw), ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func queryDecimal(c *fiber.Ctx, key string) (decimal.NullDecimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("%s must be a number", key)
	}
	if d.IsNegative() {
		return decimal.NullDecimal{}, fmt.Errorf("%s must not be negative", key)
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func queryInts(c *fiber.Ctx, key string) ([]int, error) {
	values := queryList(c, key)
	out := make([]int, 0, len(values))
	for _, v := range values {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("%s must be a whole number, got %q", key, v)
		}
		out = append(out, n)
	}
	return out, nil
}

// parseFilterSpec reads category, brand, minPrice, maxPrice, rating and q.
func parseFilterSpec(c *fiber.Ctx) (models.FilterSpec, error) {
	spec := models.FilterSpec{
		Categories: queryList(c, "category"),
		Brands:     queryList(c, "brand"),
		Query:      c.Query("q"),
	}

	var err error
	if spec.PriceRange.Min, err = queryDecimal(c, "minPrice"); err != nil {
		return spec, err
	}
	if spec.PriceRange.Max, err = queryDecimal(c, "maxPrice"); err != nil {
		return spec, err
	}
	if spec.Ratings, err = queryInts(c, "rating"); err != nil {
		return spec, err
	}
	return spec, nil
}
