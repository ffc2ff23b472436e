package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang-storefront-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchProducts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Product{{ID: 1, Title: "Milk 1L", Price: 1.19, InStock: true}})
	}))
	defer server.Close()

	products, err := NewClient(server.URL).FetchProducts(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, int64(1), products[0].ID)
	assert.Equal(t, "Milk 1L", products[0].Title)
}

func TestFetchProductsNonListResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"detail": "unexpected shape"}`))
	}))
	defer server.Close()

	// Valid JSON that is not a list reads as an empty catalog, so the
	// loader can take the seeding path.
	products, err := NewClient(server.URL).FetchProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestFetchProductsInvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>gateway error</html>"))
	}))
	defer server.Close()

	_, err := NewClient(server.URL).FetchProducts(context.Background())
	assert.Error(t, err)
}

func TestCreateProduct(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/products", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var p models.Product
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&p))
		assert.Equal(t, "Milk 1L", p.Title)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	err := NewClient(server.URL).CreateProduct(context.Background(), models.Product{Title: "Milk 1L", Price: 1.19})
	assert.NoError(t, err)
}

func TestCreateProductIgnoresRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "duplicate title", http.StatusConflict)
	}))
	defer server.Close()

	// Seeding is best-effort: only transport failures are errors.
	err := NewClient(server.URL).CreateProduct(context.Background(), models.Product{Title: "Milk 1L"})
	assert.NoError(t, err)
}

func TestSubmitCheckout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/checkout", r.URL.Path)
		json.NewEncoder(w).Encode(models.Invoice{InvoiceNumber: "INV-7", Subtotal: 10, Tax: 1, Total: 11})
	}))
	defer server.Close()

	invoice, err := NewClient(server.URL).SubmitCheckout(context.Background(), &models.CheckoutPayload{
		CustomerName: "Ada",
		Items:        []models.CheckoutItem{{ProductID: 1, Quantity: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, "INV-7", invoice.InvoiceNumber)
	assert.Equal(t, 11.0, invoice.Total)
}

func TestSubmitCheckoutNonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "card declined", http.StatusPaymentRequired)
	}))
	defer server.Close()

	_, err := NewClient(server.URL).SubmitCheckout(context.Background(), &models.CheckoutPayload{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card declined")
}
