package handlers

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/quickbite/order-api/internal/models"
	"github.com/quickbite/order-api/internal/repository"
	"github.com/quickbite/order-api/internal/service"
	"github.com/quickbite/order-api/pkg/logger"
)

// newTestServer wires the full stack against an isolated in-memory
// database, mirroring the routing in cmd/server.
func newTestServer(t *testing.T) (*chi.Mux, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "failed to open test database")
	require.NoError(t, db.AutoMigrate(&models.Product{}, &models.Order{}, &models.OrderLine{}))

	log := logger.New("error")

	productRepo := repository.NewGormProductRepository(db)
	orderRepo := repository.NewGormOrderRepository(db)

	productService := service.NewProductService(productRepo, log)
	orderService := service.NewOrderService(orderRepo, productRepo)
	summaryService := service.NewSummaryService(orderRepo)

	productHandler := NewProductHandler(productService, log)
	orderHandler := NewOrderHandler(orderService, log)
	summaryHandler := NewSummaryHandler(summaryService, log)

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Post("/product", productHandler.ImportProducts)
		r.Delete("/product/{productId}", productHandler.DeleteProduct)

		r.Post("/order", orderHandler.CreateOrder)
		r.Get("/order", orderHandler.ListOrders)
		r.Get("/order/{orderId}", orderHandler.GetOrder)
		r.Delete("/order/{orderId}", orderHandler.DeleteOrder)
		r.Get("/sales-summary", summaryHandler.SalesSummary)
	})

	return r, db
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func seedTestProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	product := models.Product{Name: name, Price: price, Image: "/img/" + name + ".png"}
	require.NoError(t, db.Create(&product).Error)
	return product
}
