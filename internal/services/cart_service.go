package services

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"mrfixit/internal/models"
	"mrfixit/internal/repositories"
)

// CartService forwards add-to-cart requests. The cart itself is kept by the
// client; the server only confirms the product exists.
type CartService struct {
	productRepo repositories.ProductRepository
	publisher   EventPublisher
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewCartService creates a new CartService. publisher may be nil.
func NewCartService(productRepo repositories.ProductRepository, publisher EventPublisher, logger *zap.Logger) *CartService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartService{
		productRepo: productRepo,
		publisher:   publisher,
		validate:    validator.New(),
		logger:      logger,
	}
}

// AddItem validates the request and publishes it. A zero quantity means one.
func (s *CartService) AddItem(item *models.CartItem) (*models.Product, error) {
	if err := s.validate.Struct(item); err != nil {
		return nil, err
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}

	product, err := s.productRepo.GetByID(item.ProductID)
	if err != nil {
		return nil, fmt.Errorf("product %s: %w", item.ProductID, err)
	}

	publish(s.publisher, s.logger, models.EventCartItemAdded, item)
	return product, nil
}
