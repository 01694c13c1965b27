package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/order-api/pkg/logger"

	"github.com/quickbite/order-api/internal/models"
	"github.com/quickbite/order-api/internal/repository"
)

// fakeProductRepo is an in-memory catalog store
type fakeProductRepo struct {
	products map[uint]models.Product
	nextID   uint
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uint]models.Product), nextID: 1}
}

func (f *fakeProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	all := make([]models.Product, 0, len(f.products))
	for _, p := range f.products {
		all = append(all, p)
	}
	return all, nil
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	return &p, nil
}

func (f *fakeProductRepo) Create(ctx context.Context, product *models.Product) error {
	product.ID = f.nextID
	f.products[product.ID] = *product
	f.nextID++
	return nil
}

func (f *fakeProductRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := f.products[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(f.products, id)
	return nil
}

func TestProductService_ImportCSV(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, logger.New("error"))

	csvData := strings.Join([]string{
		"name,price,image",
		"Chicken Waffle,12.99,/img/waffle.png",
		"Greek Salad,9.49,/img/salad.png",
		",3.00,/img/anon.png",          // missing name
		"Mystery Meat,free,/img/m.png", // unparseable price
		"Backwards Burger,-5,/img/b.png",
	}, "\n")

	result, err := svc.ImportCSV(context.Background(), strings.NewReader(csvData))
	require.NoError(t, err)

	assert.Equal(t, 2, result.Inserted)
	assert.Equal(t, 3, result.Skipped)
	assert.NotEmpty(t, result.ImportID)
	assert.Len(t, repo.products, 2)
}

func TestProductService_ImportCSV_InvalidHeader(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), logger.New("error"))

	_, err := svc.ImportCSV(context.Background(), strings.NewReader("title,cost\nBurger,5"))
	assert.ErrorIs(t, err, ErrInvalidCSV)
}

func TestProductService_ImportCSV_EmptyFile(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), logger.New("error"))

	_, err := svc.ImportCSV(context.Background(), strings.NewReader(""))
	assert.ErrorIs(t, err, ErrInvalidCSV)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	svc := NewProductService(newFakeProductRepo(), logger.New("error"))

	_, err := svc.GetProduct(context.Background(), 55)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductService_DeleteProduct(t *testing.T) {
	repo := newFakeProductRepo()
	svc := NewProductService(repo, logger.New("error"))

	product := &models.Product{Name: "Espresso", Price: 2.50}
	require.NoError(t, repo.Create(context.Background(), product))

	require.NoError(t, svc.DeleteProduct(context.Background(), product.ID))
	assert.ErrorIs(t, svc.DeleteProduct(context.Background(), product.ID), repository.ErrProductNotFound)
}
