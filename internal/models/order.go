package models

import "time"

// ConsumptionMethod is how the customer receives the order.
type ConsumptionMethod string

const (
	DineIn   ConsumptionMethod = "DINE_IN"
	TakeAway ConsumptionMethod = "TAKE_AWAY"
)

// Valid reports whether the method is one of the allowed values.
func (m ConsumptionMethod) Valid() bool {
	return m == DineIn || m == TakeAway
}

// Order is a confirmed purchase. Total always equals the sum of its line
// subtotals at creation time; the order and its lines are written and
// deleted as one transaction.
type Order struct {
	ID                uint              `json:"id" gorm:"primaryKey"`
	Total             float64           `json:"total"`
	ConsumptionMethod ConsumptionMethod `json:"consumptionMethod"`
	CreatedAt         time.Time         `json:"createdAt"`
	Lines             []OrderLine       `json:"products" gorm:"foreignKey:OrderID"`
}

// OrderLine is one product-quantity-price record belonging to an order.
// Price is captured from the catalog at order time; the ProductID is
// informational only and may point at a product that has since been
// deleted.
type OrderLine struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	OrderID   uint     `json:"orderId"`
	ProductID uint     `json:"productId"`
	Quantity  int      `json:"quantity"`
	Price     float64  `json:"price"`
	Subtotal  float64  `json:"subtotal"`
	Product   *Product `json:"product,omitempty" gorm:"foreignKey:ProductID"`
}

// OrderRequest is an incoming order submission.
type OrderRequest struct {
	ConsumptionMethod ConsumptionMethod  `json:"consumptionMethod"`
	Products          []OrderRequestItem `json:"products"`
}

// OrderRequestItem is a single requested product-quantity pair.
type OrderRequestItem struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// SalesSummary aggregates orders over a resolved time window.
// StartDate and EndDate are nil when no date filter was applied.
type SalesSummary struct {
	Period        string     `json:"period"`
	StartDate     *time.Time `json:"startDate"`
	EndDate       *time.Time `json:"endDate"`
	TotalOrders   int64      `json:"totalOrders"`
	TotalProducts int64      `json:"totalProducts"`
	TotalProfit   float64    `json:"totalProfit"`
}

// ImportResult reports the outcome of a catalog CSV import run.
type ImportResult struct {
	ImportID string `json:"importId"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}
