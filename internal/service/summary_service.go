package service

import (
	"context"
	"fmt"
	"time"

	"github.com/quickbite/order-api/internal/models"
	"github.com/quickbite/order-api/internal/period"
	"github.com/quickbite/order-api/internal/repository"
)

// SalesAggregator provides windowed order aggregates
type SalesAggregator interface {
	SalesTotals(ctx context.Context, start, end *time.Time) (repository.SalesTotals, error)
}

// SummaryService computes sales summaries over a time window
type SummaryService struct {
	orders SalesAggregator
}

// NewSummaryService creates a new summary service
func NewSummaryService(orders SalesAggregator) *SummaryService {
	return &SummaryService{orders: orders}
}

// SalesSummary resolves the window described by from/to or the named
// period (explicit dates win) and aggregates orders inside it. With
// neither, every order ever created is counted.
func (s *SummaryService) SalesSummary(ctx context.Context, now time.Time, from, to, periodName string) (*models.SalesSummary, error) {
	window, err := period.Resolve(now, from, to, periodName)
	if err != nil {
		return nil, err
	}

	totals, err := s.orders.SalesTotals(ctx, window.Start, window.End)
	if err != nil {
		return nil, fmt.Errorf("aggregating sales: %w", err)
	}

	return &models.SalesSummary{
		Period:        window.Label,
		StartDate:     window.Start,
		EndDate:       window.End,
		TotalOrders:   totals.Orders,
		TotalProducts: totals.Quantity,
		TotalProfit:   totals.Revenue,
	}, nil
}
