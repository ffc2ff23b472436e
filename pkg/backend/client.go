package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-storefront-backend/internal/models"
)

// Client talks to the remote store service that owns the catalog and
// computes invoices.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchProducts returns the backend's product list. A response that is
// valid JSON but not a list is reported as an empty catalog rather than an
// error, so the caller can fall back to seeding.
func (c *Client) FetchProducts(ctx context.Context) ([]models.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/products", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var products []models.Product
	if err := json.Unmarshal(body, &products); err != nil {
		if json.Valid(body) {
			// Valid JSON, just not a product list.
			return nil, nil
		}
		return nil, fmt.Errorf("invalid products response: %w", err)
	}

	return products, nil
}

// CreateProduct posts a single product to the backend. The response body is
// not consumed; only transport-level failures are reported, so a partially
// rejected seed run still counts as complete.
func (c *Client) CreateProduct(ctx context.Context, product models.Product) error {
	payload, err := json.Marshal(product)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/products", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	io.Copy(io.Discard, resp.Body)
	return nil
}

// SubmitCheckout posts the checkout payload and returns the invoice the
// backend computed. A non-2xx status is an error; its body is opaque text.
func (c *Client) SubmitCheckout(ctx context.Context, payload *models.CheckoutPayload) (*models.Invoice, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/checkout", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errText, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("checkout rejected (%d): %s", resp.StatusCode, string(errText))
	}

	var invoice models.Invoice
	if err := json.NewDecoder(resp.Body).Decode(&invoice); err != nil {
		return nil, fmt.Errorf("invalid invoice response: %w", err)
	}

	return &invoice, nil
}
