package services

import (
	"testing"

	"golang-storefront-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	rice = models.Product{ID: 1, Title: "Basmati Rice 5kg", Price: 12.99, Category: "Grocery", InStock: true}
	oil  = models.Product{ID: 2, Title: "Sunflower Oil 1L", Price: 3.49, Category: "Grocery", InStock: true}
)

func TestAddToCart(t *testing.T) {
	s := NewCartService()

	cart := s.AddToCart("s1", rice)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	// Adding the same product again increments, no duplicate line.
	cart = s.AddToCart("s1", rice)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	cart = s.AddToCart("s1", oil)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, rice.ID, cart.Items[0].Product.ID)
	assert.Equal(t, oil.ID, cart.Items[1].Product.ID)
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	s := NewCartService()
	s.AddToCart("s1", rice)

	for _, qty := range []int{0, -1, -100} {
		cart := s.UpdateQuantity("s1", rice.ID, qty)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 1, cart.Items[0].Quantity, "qty %d should clamp to 1", qty)
	}

	cart := s.UpdateQuantity("s1", rice.ID, 5)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestUpdateQuantityUnknownIDIsNoOp(t *testing.T) {
	s := NewCartService()
	s.AddToCart("s1", rice)

	cart := s.UpdateQuantity("s1", 999, 7)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 1, cart.Items[0].Quantity)
}

func TestRemoveItemIdempotent(t *testing.T) {
	s := NewCartService()
	s.AddToCart("s1", rice)
	s.AddToCart("s1", oil)

	cart := s.RemoveItem("s1", rice.ID)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, oil.ID, cart.Items[0].Product.ID)

	cart = s.RemoveItem("s1", rice.ID)
	assert.Len(t, cart.Items, 1)

	cart = s.RemoveItem("s1", 999)
	assert.Len(t, cart.Items, 1)
}

func TestCartInvariantsOverSequence(t *testing.T) {
	s := NewCartService()

	s.AddToCart("s1", rice)
	s.AddToCart("s1", rice)
	s.AddToCart("s1", oil)
	s.UpdateQuantity("s1", oil.ID, -3)
	s.RemoveItem("s1", rice.ID)
	s.AddToCart("s1", rice)
	cart := s.UpdateQuantity("s1", rice.ID, 0)

	seen := make(map[int64]bool)
	for _, line := range cart.Items {
		assert.GreaterOrEqual(t, line.Quantity, 1)
		assert.False(t, seen[line.Product.ID], "duplicate line for product %d", line.Product.ID)
		seen[line.Product.ID] = true
	}
}

func TestClearCartKeepsCustomerAndInvoice(t *testing.T) {
	s := NewCartService()
	s.AddToCart("s1", rice)
	s.SetCustomer("s1", models.CustomerInfo{Name: "Ada", Email: "ada@example.com", Address: "1 Main St"})
	s.CompleteCheckout("s1", &models.Invoice{InvoiceNumber: "INV-1"})

	s.AddToCart("s1", oil)
	cart := s.ClearCart("s1")

	assert.Empty(t, cart.Items)
	assert.Equal(t, "Ada", cart.Customer.Name)
	require.NotNil(t, cart.Invoice)
	assert.Equal(t, "INV-1", cart.Invoice.InvoiceNumber)
}

func TestSetCustomerTrims(t *testing.T) {
	s := NewCartService()

	cart := s.SetCustomer("s1", models.CustomerInfo{Name: "  Ada ", Email: " ada@example.com", Address: "1 Main St  "})

	assert.Equal(t, "Ada", cart.Customer.Name)
	assert.Equal(t, "ada@example.com", cart.Customer.Email)
	assert.Equal(t, "1 Main St", cart.Customer.Address)
}

func TestSessionsAreIsolated(t *testing.T) {
	s := NewCartService()

	s.AddToCart("s1", rice)
	cart := s.GetCart("s2")

	assert.Empty(t, cart.Items)
	assert.Equal(t, models.CheckoutIdle, cart.CheckoutState)
}

func TestBeginCheckoutPreconditions(t *testing.T) {
	s := NewCartService()

	// Empty cart
	_, err := s.BeginCheckout("s1")
	assert.ErrorIs(t, err, ErrEmptyCart)

	// Missing customer fields
	s.AddToCart("s1", rice)
	_, err = s.BeginCheckout("s1")
	assert.ErrorIs(t, err, ErrIncompleteCustomer)

	s.SetCustomer("s1", models.CustomerInfo{Name: "Ada", Email: "ada@example.com"})
	_, err = s.BeginCheckout("s1")
	assert.ErrorIs(t, err, ErrIncompleteCustomer)

	// All set
	s.SetCustomer("s1", models.CustomerInfo{Name: "Ada", Email: "ada@example.com", Address: "1 Main St"})
	payload, err := s.BeginCheckout("s1")
	require.NoError(t, err)
	require.Len(t, payload.Items, 1)
	assert.Equal(t, rice.ID, payload.Items[0].ProductID)
	assert.Equal(t, 1, payload.Items[0].Quantity)
	assert.Equal(t, "Ada", payload.CustomerName)

	// Second begin while processing is rejected.
	_, err = s.BeginCheckout("s1")
	assert.ErrorIs(t, err, ErrCheckoutInProgress)
}

func TestCompleteCheckoutClearsCartAndStoresInvoice(t *testing.T) {
	s := NewCartService()
	s.AddToCart("s1", rice)
	s.SetCustomer("s1", models.CustomerInfo{Name: "Ada", Email: "ada@example.com", Address: "1 Main St"})

	_, err := s.BeginCheckout("s1")
	require.NoError(t, err)

	invoice := &models.Invoice{InvoiceNumber: "INV-42", Subtotal: 12.99, Tax: 1.30, Total: 14.29}
	cart := s.CompleteCheckout("s1", invoice)

	assert.Empty(t, cart.Items)
	assert.Equal(t, invoice, cart.Invoice)
	assert.Equal(t, "Ada", cart.Customer.Name)
	assert.Equal(t, models.CheckoutIdle, cart.CheckoutState)
}

func TestFailCheckoutLeavesCartIntact(t *testing.T) {
	s := NewCartService()
	s.AddToCart("s1", rice)
	s.AddToCart("s1", rice)
	s.SetCustomer("s1", models.CustomerInfo{Name: "Ada", Email: "ada@example.com", Address: "1 Main St"})

	_, err := s.BeginCheckout("s1")
	require.NoError(t, err)

	s.FailCheckout("s1")
	cart := s.GetCart("s1")

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Nil(t, cart.Invoice)
	assert.Equal(t, models.CheckoutFailed, cart.CheckoutState)

	// A failed checkout can be retried.
	_, err = s.BeginCheckout("s1")
	assert.NoError(t, err)
}
