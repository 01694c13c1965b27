package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/quickbite/order-api/internal/models"
	"github.com/quickbite/order-api/internal/repository"
)

// CatalogReader is the read-only product lookup used for pricing
type CatalogReader interface {
	GetByID(ctx context.Context, id uint) (*models.Product, error)
}

// OrderRepository interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id uint) error
}

// OrderService handles order pricing, persistence and deletion
type OrderService struct {
	orders  OrderRepository
	catalog CatalogReader
}

// NewOrderService creates a new order service
func NewOrderService(orders OrderRepository, catalog CatalogReader) *OrderService {
	return &OrderService{
		orders:  orders,
		catalog: catalog,
	}
}

// CreateOrder validates the request, reprices every line from the catalog
// and persists the order with its lines atomically.
//
// Requested products that do not exist in the catalog are dropped from the
// order rather than failing it; they contribute nothing to the total. An
// order whose products were all unknown is still persisted with total 0 and
// no lines.
func (s *OrderService) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	// Validate before any store I/O
	if !req.ConsumptionMethod.Valid() {
		return nil, newValidationError("consumptionMethod",
			"must be %s or %s", models.DineIn, models.TakeAway)
	}
	if len(req.Products) == 0 {
		return nil, newValidationError("products", "order must contain at least one product")
	}
	for _, item := range req.Products {
		if item.Quantity < 1 {
			return nil, newValidationError("quantity",
				"must be at least 1 for product %d", item.ProductID)
		}
	}

	// Price each surviving line from the catalog, keeping submission order
	total := decimal.Zero
	lines := make([]models.OrderLine, 0, len(req.Products))

	for _, item := range req.Products {
		product, err := s.catalog.GetByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, repository.ErrProductNotFound) {
				continue
			}
			return nil, fmt.Errorf("looking up product %d: %w", item.ProductID, err)
		}

		subtotal := decimal.NewFromFloat(product.Price).
			Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(subtotal)

		lines = append(lines, models.OrderLine{
			ProductID: product.ID,
			Quantity:  item.Quantity,
			Price:     product.Price,
			Subtotal:  subtotal.InexactFloat64(),
		})
	}

	order := &models.Order{
		Total:             total.InexactFloat64(),
		ConsumptionMethod: req.ConsumptionMethod,
		Lines:             lines,
	}

	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("persisting order: %w", err)
	}

	return order, nil
}

// GetOrder returns an order with its lines and nested product detail
func (s *OrderService) GetOrder(ctx context.Context, id uint) (*models.Order, error) {
	return s.orders.GetByID(ctx, id)
}

// ListOrders returns all orders, newest first
func (s *OrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.GetAll(ctx)
}

// DeleteOrder removes an order and all its lines atomically. A missing
// order reports repository.ErrOrderNotFound.
func (s *OrderService) DeleteOrder(ctx context.Context, id uint) error {
	return s.orders.Delete(ctx, id)
}
