package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/quickbite/order-api/internal/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
)

// SalesTotals holds the raw aggregates for a sales-summary window.
type SalesTotals struct {
	Orders   int64
	Quantity int64
	Revenue  float64
}

// OrderRepository defines the interface for order data access
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetAll(ctx context.Context) ([]models.Order, error)
	Delete(ctx context.Context, id uint) error
	SalesTotals(ctx context.Context, start, end *time.Time) (SalesTotals, error)
}

// GormOrderRepository implements OrderRepository on the relational store
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Create persists the order and all its lines in a single transaction.
// Either the order row and every line are written, or nothing is.
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

// GetByID returns an order with its lines and, where the catalog row still
// exists, the product detail for each line.
func (r *GormOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Preload("Lines.Product").
		First(&order, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

// GetAll returns all orders with their lines, newest first
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	orders := make([]models.Order, 0)
	err := r.db.WithContext(ctx).
		Preload("Lines").
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes the order's lines and then the order row inside one
// transaction, so no line can outlive its order.
func (r *GormOrderRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&models.OrderLine{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&models.Order{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrOrderNotFound
		}
		return nil
	})
}

// SalesTotals computes order count, quantity sold and revenue for the
// window. Nil start/end means all time. Empty windows yield zeroes.
func (r *GormOrderRepository) SalesTotals(ctx context.Context, start, end *time.Time) (SalesTotals, error) {
	var totals SalesTotals

	orders := r.db.WithContext(ctx).Model(&models.Order{})
	if start != nil && end != nil {
		orders = orders.Where("created_at >= ? AND created_at <= ?", *start, *end)
	}
	if err := orders.Count(&totals.Orders).Error; err != nil {
		return SalesTotals{}, err
	}

	quantity := r.db.WithContext(ctx).Model(&models.OrderLine{}).
		Select("COALESCE(SUM(order_lines.quantity), 0)")
	if start != nil && end != nil {
		quantity = quantity.
			Joins("JOIN orders ON orders.id = order_lines.order_id").
			Where("orders.created_at >= ? AND orders.created_at <= ?", *start, *end)
	}
	if err := quantity.Scan(&totals.Quantity).Error; err != nil {
		return SalesTotals{}, err
	}

	revenue := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0)")
	if start != nil && end != nil {
		revenue = revenue.Where("created_at >= ? AND created_at <= ?", *start, *end)
	}
	if err := revenue.Scan(&totals.Revenue).Error; err != nil {
		return SalesTotals{}, err
	}

	return totals, nil
}
