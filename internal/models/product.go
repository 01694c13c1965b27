package models

import "time"

// Product represents a catalog item available for order.
// Prices are copied onto order lines at order time, so editing or deleting
// a product never changes historical orders.
type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Price     float64   `json:"price"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}
