package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/order-api/internal/models"
)

func postJSON(t *testing.T, router http.Handler, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf []byte
	if str, ok := body.(string); ok {
		buf = []byte(str)
	} else {
		var err error
		buf, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(buf))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	router, db := newTestServer(t)
	product := seedTestProduct(t, db, "burger", 10.00)

	w := postJSON(t, router, "/api/order", models.OrderRequest{
		ConsumptionMethod: models.DineIn,
		Products:          []models.OrderRequestItem{{ProductID: product.ID, Quantity: 2}},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	assert.NotZero(t, order.ID)
	assert.Equal(t, 20.00, order.Total)
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 20.00, order.Lines[0].Subtotal)
	assert.Equal(t, models.DineIn, order.ConsumptionMethod)
}

func TestOrderHandler_CreateOrder_Validation(t *testing.T) {
	router, db := newTestServer(t)
	product := seedTestProduct(t, db, "salad", 8.00)

	tests := []struct {
		name        string
		body        interface{}
		wantInError string
	}{
		{
			name: "invalid consumption method",
			body: models.OrderRequest{
				ConsumptionMethod: "INVALID",
				Products:          []models.OrderRequestItem{{ProductID: product.ID, Quantity: 1}},
			},
			wantInError: "consumptionMethod",
		},
		{
			name: "empty product list",
			body: models.OrderRequest{
				ConsumptionMethod: models.DineIn,
				Products:          []models.OrderRequestItem{},
			},
			wantInError: "at least one product",
		},
		{
			name: "zero quantity",
			body: models.OrderRequest{
				ConsumptionMethod: models.DineIn,
				Products:          []models.OrderRequestItem{{ProductID: product.ID, Quantity: 0}},
			},
			wantInError: "quantity",
		},
		{
			name:        "invalid JSON",
			body:        "not json",
			wantInError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, router, "/api/order", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp map[string]string
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Contains(t, resp["error"], tt.wantInError)

			var count int64
			require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
			assert.Zero(t, count, "validation failures must not create rows")
		})
	}
}

func TestOrderHandler_CreateOrder_UnknownProductSkipped(t *testing.T) {
	router, db := newTestServer(t)
	product := seedTestProduct(t, db, "waffle", 12.99)

	w := postJSON(t, router, "/api/order", models.OrderRequest{
		ConsumptionMethod: models.TakeAway,
		Products: []models.OrderRequestItem{
			{ProductID: product.ID, Quantity: 1},
			{ProductID: 9999, Quantity: 3},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Len(t, order.Lines, 1)
	assert.Equal(t, 12.99, order.Total)
}

func TestOrderHandler_GetOrder(t *testing.T) {
	router, db := newTestServer(t)
	product := seedTestProduct(t, db, "pizza", 15.00)

	created := postJSON(t, router, "/api/order", models.OrderRequest{
		ConsumptionMethod: models.DineIn,
		Products:          []models.OrderRequestItem{{ProductID: product.ID, Quantity: 1}},
	})
	require.Equal(t, http.StatusOK, created.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &order))

	req := httptest.NewRequest(http.MethodGet, "/api/order/"+itoa(order.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var fetched models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, order.ID, fetched.ID)
	assert.Equal(t, order.Total, fetched.Total, "reads must not mutate totals")
	require.Len(t, fetched.Lines, 1)
	require.NotNil(t, fetched.Lines[0].Product, "detail read nests product")
	assert.Equal(t, "pizza", fetched.Lines[0].Product.Name)
}

func TestOrderHandler_GetOrder_BadID(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/order/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOrderHandler_GetOrder_NotFound(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/order/1234", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestOrderHandler_ListOrders(t *testing.T) {
	router, db := newTestServer(t)
	product := seedTestProduct(t, db, "tea", 3.00)

	for i := 0; i < 2; i++ {
		w := postJSON(t, router, "/api/order", models.OrderRequest{
			ConsumptionMethod: models.TakeAway,
			Products:          []models.OrderRequestItem{{ProductID: product.ID, Quantity: 1}},
		})
		require.Equal(t, http.StatusOK, w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/order", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var orders []models.Order
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	assert.Len(t, orders, 2)
}

func TestOrderHandler_DeleteOrder(t *testing.T) {
	router, db := newTestServer(t)
	product := seedTestProduct(t, db, "coffee", 4.00)

	created := postJSON(t, router, "/api/order", models.OrderRequest{
		ConsumptionMethod: models.DineIn,
		Products:          []models.OrderRequestItem{{ProductID: product.ID, Quantity: 2}},
	})
	require.Equal(t, http.StatusOK, created.Code)

	var order models.Order
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &order))

	req := httptest.NewRequest(http.MethodDelete, "/api/order/"+itoa(order.ID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String(), "delete success carries no body")

	// The order and all its lines are gone
	getReq := httptest.NewRequest(http.MethodGet, "/api/order/"+itoa(order.ID), nil)
	getW := httptest.NewRecorder()
	router.ServeHTTP(getW, getReq)
	assert.Equal(t, http.StatusNotFound, getW.Code)

	var lineCount int64
	require.NoError(t, db.Model(&models.OrderLine{}).Where("order_id = ?", order.ID).Count(&lineCount).Error)
	assert.Zero(t, lineCount)
}

func TestOrderHandler_DeleteOrder_BadID(t *testing.T) {
	router, db := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/order/abc", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Order{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestOrderHandler_DeleteOrder_NotFound(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/api/order/777", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
