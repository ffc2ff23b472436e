package models

// Product is a catalog entry as the store backend returns it. The backend
// assigns IDs; a product has no ID before its first fetch. Products are
// immutable for the lifetime of a session once loaded.
type Product struct {
	ID          int64   `json:"id,omitempty"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	InStock     bool    `json:"in_stock"`
	Description string  `json:"description"`
}

// CartLine is one entry in a cart: a product snapshot plus the requested
// quantity. Quantity is always >= 1; a line that would drop below 1 is
// removed instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// CustomerInfo holds the billing details collected before checkout.
// All three fields must be non-empty for a checkout to be submitted.
type CustomerInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

// Complete reports whether every billing field is filled in.
func (c CustomerInfo) Complete() bool {
	return c.Name != "" && c.Email != "" && c.Address != ""
}

// Totals is derived from cart lines and never stored on its own.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Total    float64 `json:"total"`
}

// Invoice is the receipt computed by the store backend after a successful
// checkout. It is kept as-is until the next checkout replaces it.
type Invoice struct {
	InvoiceNumber string  `json:"invoice_number"`
	Subtotal      float64 `json:"subtotal"`
	Tax           float64 `json:"tax"`
	Total         float64 `json:"total"`
}

// CheckoutState tracks whether a session currently has a checkout in
// flight. Modeled as a named state rather than a bool so failure can be
// represented distinctly.
type CheckoutState string

const (
	CheckoutIdle       CheckoutState = "idle"
	CheckoutProcessing CheckoutState = "processing"
	CheckoutFailed     CheckoutState = "failed"
)

// CheckoutItem is one line of the payload posted to the store backend.
type CheckoutItem struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// CheckoutPayload is the body of POST /api/checkout on the store backend.
type CheckoutPayload struct {
	CustomerName    string         `json:"customer_name"`
	CustomerEmail   string         `json:"customer_email"`
	CustomerAddress string         `json:"customer_address"`
	Items           []CheckoutItem `json:"items"`
}
