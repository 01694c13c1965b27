package service

import (
	"context"
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/quickbite/order-api/internal/models"
	"github.com/quickbite/order-api/internal/repository"
)

// ErrInvalidCSV indicates a catalog file that could not be parsed at all.
var ErrInvalidCSV = errors.New("invalid CSV format")

// ProductService handles catalog business logic
type ProductService struct {
	repo repository.ProductRepository
	log  *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository, log *slog.Logger) *ProductService {
	return &ProductService{
		repo: repo,
		log:  log,
	}
}

// ListProducts returns all catalog products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// DeleteProduct removes a product from the catalog. Historical order lines
// keep their captured price and quantity.
func (s *ProductService) DeleteProduct(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// ImportCSV loads products from a "name,price,image" CSV with a header
// row. Rows with missing fields or an unparseable or negative price are
// skipped and counted, not fatal; only an unreadable file fails the import.
func (s *ProductService) ImportCSV(ctx context.Context, r io.Reader) (*models.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, ErrInvalidCSV
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	nameCol, okName := columns["name"]
	priceCol, okPrice := columns["price"]
	imageCol, okImage := columns["image"]
	if !okName || !okPrice || !okImage {
		return nil, ErrInvalidCSV
	}

	result := &models.ImportResult{ImportID: uuid.New().String()}

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, ErrInvalidCSV
		}

		name := strings.TrimSpace(record[nameCol])
		priceStr := strings.TrimSpace(record[priceCol])
		image := strings.TrimSpace(record[imageCol])
		if name == "" || priceStr == "" || image == "" {
			result.Skipped++
			continue
		}

		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil || price < 0 {
			result.Skipped++
			continue
		}

		product := &models.Product{Name: name, Price: price, Image: image}
		if err := s.repo.Create(ctx, product); err != nil {
			s.log.Error("failed to import product",
				"import_id", result.ImportID,
				"name", name,
				"error", err,
			)
			result.Skipped++
			continue
		}
		result.Inserted++
	}

	s.log.Info("catalog import finished",
		"import_id", result.ImportID,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
	)

	return result, nil
}
