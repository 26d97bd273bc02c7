package controllers_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shashiranjanraj/eggstore/app/controllers"
	"github.com/shashiranjanraj/eggstore/app/models"
	"github.com/shashiranjanraj/eggstore/app/repositories"
)

// ─── Fakes ────────────────────────────────────────────────────────────────────

// fakeProductRepo is an in-memory ProductRepository honouring the same
// contract as the Mongo variant: malformed and unknown ids both yield
// ErrNotFound.
type fakeProductRepo struct {
	products []models.Product
}

func (f *fakeProductRepo) All(context.Context) ([]models.Product, error) {
	return append([]models.Product(nil), f.products...), nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id string) (models.Product, error) {
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return models.Product{}, repositories.ErrNotFound
	}
	for _, p := range f.products {
		if p.ID.Hex() == id {
			return p, nil
		}
	}
	return models.Product{}, repositories.ErrNotFound
}

func (f *fakeProductRepo) Insert(_ context.Context, p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.products = append(f.products, *p)
	return nil
}

func (f *fakeProductRepo) Count(context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

// fakeOrderRepo records inserted orders and can be told to fail.
type fakeOrderRepo struct {
	orders  []models.Order
	failErr error
}

func (f *fakeOrderRepo) Insert(_ context.Context, o *models.Order) (string, error) {
	if f.failErr != nil {
		return "", f.failErr
	}
	o.ID = primitive.NewObjectID()
	f.orders = append(f.orders, *o)
	return o.ID.Hex(), nil
}

// ─── Helpers ──────────────────────────────────────────────────────────────────

func newCatalogue(t *testing.T, prices ...float64) *fakeProductRepo {
	t.Helper()
	repo := &fakeProductRepo{}
	for i, price := range prices {
		p := models.Product{
			Title:    fmt.Sprintf("Eggs %d", i),
			Price:    price,
			Category: "chicken",
			InStock:  true,
		}
		if err := repo.Insert(context.Background(), &p); err != nil {
			t.Fatalf("insert product: %v", err)
		}
	}
	return repo
}

func postOrder(t *testing.T, c *controllers.OrderController, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	c.Create(rec, req)
	return rec
}

func orderBody(method string, items ...map[string]any) string {
	payload := map[string]any{
		"items":         items,
		"customer_name": "Ada",
		"email":         "ada@example.com",
		"address":       "1 Farm Lane",
	}
	if method != "" {
		payload["payment_method"] = method
	}
	b, _ := json.Marshal(payload)
	return string(b)
}

func decodeOrder(t *testing.T, rec *httptest.ResponseRecorder) controllers.CreateOrderResponse {
	t.Helper()
	var resp controllers.CreateOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

// ─── Tests ────────────────────────────────────────────────────────────────────

func TestCreateOrderComputesTotal(t *testing.T) {
	products := newCatalogue(t, 4.99, 6.49)
	orders := &fakeOrderRepo{}
	c := controllers.NewOrderController(products, orders)

	rec := postOrder(t, c, orderBody("card",
		map[string]any{"product_id": products.products[0].ID.Hex(), "quantity": 2},
		map[string]any{"product_id": products.products[1].ID.Hex(), "quantity": 3},
	))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeOrder(t, rec)
	assert.Equal(t, 29.45, resp.Total) // 2×4.99 + 3×6.49
	assert.Equal(t, models.StatusPaid, resp.Status)

	require.Len(t, orders.orders, 1)
	stored := orders.orders[0]
	assert.Equal(t, resp.OrderID, stored.ID.Hex())
	assert.Equal(t, 29.45, stored.TotalAmount)
	require.Len(t, stored.Items, 2)
	assert.Equal(t, 9.98, stored.Items[0].Subtotal)
	assert.Equal(t, "Eggs 0", stored.Items[0].Title)
}

func TestCreateOrderRoundsToCents(t *testing.T) {
	products := newCatalogue(t, 0.1)
	c := controllers.NewOrderController(products, &fakeOrderRepo{})

	rec := postOrder(t, c, orderBody("card",
		map[string]any{"product_id": products.products[0].ID.Hex(), "quantity": 3},
	))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0.3, decodeOrder(t, rec).Total)
}

func TestCreateOrderPaymentStatus(t *testing.T) {
	cases := []struct {
		method     string
		wantStatus string
		wantStored string
	}{
		{"card", models.StatusPaid, models.PaymentCard},
		{"cod", models.StatusPending, models.PaymentCOD},
		{"", models.StatusPaid, models.PaymentCard},        // missing defaults to card
		{"bitcoin", models.StatusPaid, models.PaymentCard}, // unknown normalises to card
	}

	for _, tc := range cases {
		t.Run("method="+tc.method, func(t *testing.T) {
			products := newCatalogue(t, 4.99)
			orders := &fakeOrderRepo{}
			c := controllers.NewOrderController(products, orders)

			rec := postOrder(t, c, orderBody(tc.method,
				map[string]any{"product_id": products.products[0].ID.Hex(), "quantity": 1},
			))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Equal(t, tc.wantStatus, decodeOrder(t, rec).Status)
			require.Len(t, orders.orders, 1)
			assert.Equal(t, tc.wantStored, orders.orders[0].PaymentMethod)
			assert.Equal(t, tc.wantStatus, orders.orders[0].Status)
		})
	}
}

func TestCreateOrderEmptyItems(t *testing.T) {
	orders := &fakeOrderRepo{}
	c := controllers.NewOrderController(newCatalogue(t, 4.99), orders)

	rec := postOrder(t, c, orderBody("card"))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No items in order")
	assert.Empty(t, orders.orders, "no order may be persisted")
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	orders := &fakeOrderRepo{}
	products := newCatalogue(t, 4.99)
	c := controllers.NewOrderController(products, orders)

	missing := primitive.NewObjectID().Hex()
	rec := postOrder(t, c, orderBody("card",
		map[string]any{"product_id": products.products[0].ID.Hex(), "quantity": 1},
		map[string]any{"product_id": missing, "quantity": 1},
	))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found: "+missing)
	assert.Empty(t, orders.orders, "the whole order aborts atomically")
}

func TestCreateOrderMalformedProductID(t *testing.T) {
	orders := &fakeOrderRepo{}
	c := controllers.NewOrderController(newCatalogue(t, 4.99), orders)

	rec := postOrder(t, c, orderBody("card",
		map[string]any{"product_id": "not-a-hex-id", "quantity": 1},
	))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Product not found: not-a-hex-id")
	assert.Empty(t, orders.orders)
}

func TestCreateOrderInsertFailureReturnsPlaceholder(t *testing.T) {
	products := newCatalogue(t, 4.99)
	orders := &fakeOrderRepo{failErr: fmt.Errorf("mongo is down")}
	c := controllers.NewOrderController(products, orders)

	rec := postOrder(t, c, orderBody("card",
		map[string]any{"product_id": products.products[0].ID.Hex(), "quantity": 1},
	))

	require.Equal(t, http.StatusOK, rec.Code, "checkout must survive storage outages")
	resp := decodeOrder(t, rec)
	assert.Equal(t, models.PlaceholderOrderID, resp.OrderID)
	assert.Equal(t, 4.99, resp.Total)
}

func TestCreateOrderWithoutStore(t *testing.T) {
	c := controllers.NewOrderController(
		repositories.NewNullProductRepository(),
		repositories.NewNullOrderRepository(),
	)

	// Any product id resolves to the fixed fallback price when the store
	// is absent.
	rec := postOrder(t, c, orderBody("cod",
		map[string]any{"product_id": "whatever", "quantity": 2},
		map[string]any{"product_id": "anything", "quantity": 1},
	))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	resp := decodeOrder(t, rec)
	assert.Equal(t, models.PlaceholderOrderID, resp.OrderID)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, 14.97, resp.Total) // 3 × 4.99
}

func TestCreateOrderValidation(t *testing.T) {
	products := newCatalogue(t, 4.99)
	pid := products.products[0].ID.Hex()

	cases := []struct {
		name string
		body string
	}{
		{"missing customer_name", fmt.Sprintf(
			`{"items":[{"product_id":%q,"quantity":1}],"email":"a@b.co","address":"x"}`, pid)},
		{"missing email", fmt.Sprintf(
			`{"items":[{"product_id":%q,"quantity":1}],"customer_name":"Ada","address":"x"}`, pid)},
		{"zero quantity", fmt.Sprintf(
			`{"items":[{"product_id":%q,"quantity":0}],"customer_name":"Ada","email":"a@b.co","address":"x"}`, pid)},
		{"malformed json", `{"items": [`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			orders := &fakeOrderRepo{}
			c := controllers.NewOrderController(products, orders)
			rec := postOrder(t, c, tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Empty(t, orders.orders)
		})
	}
}
