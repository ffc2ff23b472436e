package services

import (
	"errors"
	"strings"
	"sync"

	"golang-storefront-backend/internal/models"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrIncompleteCustomer = errors.New("customer name, email and address are required")
	ErrCheckoutInProgress = errors.New("checkout already in progress")
)

// session holds everything the storefront tracks for one client: cart
// lines keyed by product ID, billing details, the last invoice and the
// checkout state. Lines also keep insertion order so responses are stable.
type session struct {
	lines    map[int64]*models.CartLine
	order    []int64
	customer models.CustomerInfo
	invoice  *models.Invoice
	state    models.CheckoutState
}

// CartService owns all cart sessions. Sessions live in memory only and are
// gone on restart; the store backend is the only durable system here.
type CartService struct {
	mu       sync.Mutex
	sessions map[string]*session
}

func NewCartService() *CartService {
	return &CartService{
		sessions: make(map[string]*session),
	}
}

type CartResponse struct {
	SessionID     string               `json:"session_id"`
	Items         []models.CartLine    `json:"items"`
	Totals        models.Totals        `json:"totals"`
	Customer      models.CustomerInfo  `json:"customer"`
	Invoice       *models.Invoice      `json:"invoice,omitempty"`
	CheckoutState models.CheckoutState `json:"checkout_state"`
}

// getSession returns the session for the ID, creating it on first use.
// Callers must hold s.mu.
func (s *CartService) getSession(sessionID string) *session {
	sess, exists := s.sessions[sessionID]
	if !exists {
		sess = &session{
			lines: make(map[int64]*models.CartLine),
			state: models.CheckoutIdle,
		}
		s.sessions[sessionID] = sess
	}
	return sess
}

// AddToCart puts a snapshot of the product into the cart with quantity 1,
// or bumps the existing line's quantity by 1.
func (s *CartService) AddToCart(sessionID string, product models.Product) *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getSession(sessionID)
	if line, exists := sess.lines[product.ID]; exists {
		line.Quantity++
	} else {
		sess.lines[product.ID] = &models.CartLine{Product: product, Quantity: 1}
		sess.order = append(sess.order, product.ID)
	}

	return s.buildResponse(sessionID, sess)
}

// UpdateQuantity sets a line's quantity, clamping anything below 1 up to 1.
// An unknown product ID is a no-op.
func (s *CartService) UpdateQuantity(sessionID string, productID int64, quantity int) *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getSession(sessionID)
	if line, exists := sess.lines[productID]; exists {
		if quantity < 1 {
			quantity = 1
		}
		line.Quantity = quantity
	}

	return s.buildResponse(sessionID, sess)
}

// RemoveItem deletes the line for the product if present. Idempotent.
func (s *CartService) RemoveItem(sessionID string, productID int64) *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getSession(sessionID)
	if _, exists := sess.lines[productID]; exists {
		delete(sess.lines, productID)
		for i, id := range sess.order {
			if id == productID {
				sess.order = append(sess.order[:i], sess.order[i+1:]...)
				break
			}
		}
	}

	return s.buildResponse(sessionID, sess)
}

// ClearCart removes every line but keeps customer details and invoice.
func (s *CartService) ClearCart(sessionID string) *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getSession(sessionID)
	sess.lines = make(map[int64]*models.CartLine)
	sess.order = nil

	return s.buildResponse(sessionID, sess)
}

// SetCustomer stores the billing details for the session, trimmed.
func (s *CartService) SetCustomer(sessionID string, customer models.CustomerInfo) *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getSession(sessionID)
	sess.customer = models.CustomerInfo{
		Name:    strings.TrimSpace(customer.Name),
		Email:   strings.TrimSpace(customer.Email),
		Address: strings.TrimSpace(customer.Address),
	}

	return s.buildResponse(sessionID, sess)
}

// GetCart returns the current state of the session.
func (s *CartService) GetCart(sessionID string) *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.buildResponse(sessionID, s.getSession(sessionID))
}

// BeginCheckout validates the checkout preconditions and, if they hold,
// flips the session to processing and returns the payload for the store
// backend. Validation and the state flip happen under one lock so two
// concurrent triggers cannot both pass; the loser gets
// ErrCheckoutInProgress rather than being queued.
func (s *CartService) BeginCheckout(sessionID string) (*models.CheckoutPayload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getSession(sessionID)
	if sess.state == models.CheckoutProcessing {
		return nil, ErrCheckoutInProgress
	}
	if len(sess.order) == 0 {
		return nil, ErrEmptyCart
	}
	if !sess.customer.Complete() {
		return nil, ErrIncompleteCustomer
	}

	items := make([]models.CheckoutItem, 0, len(sess.order))
	for _, id := range sess.order {
		line := sess.lines[id]
		items = append(items, models.CheckoutItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
		})
	}

	sess.state = models.CheckoutProcessing

	return &models.CheckoutPayload{
		CustomerName:    sess.customer.Name,
		CustomerEmail:   sess.customer.Email,
		CustomerAddress: sess.customer.Address,
		Items:           items,
	}, nil
}

// CompleteCheckout stores the invoice and empties the cart in one step.
// Customer details are kept for the next order.
func (s *CartService) CompleteCheckout(sessionID string, invoice *models.Invoice) *CartResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getSession(sessionID)
	sess.invoice = invoice
	sess.lines = make(map[int64]*models.CartLine)
	sess.order = nil
	sess.state = models.CheckoutIdle

	return s.buildResponse(sessionID, sess)
}

// FailCheckout marks the session's checkout as failed, leaving cart,
// customer and invoice exactly as they were before the attempt.
func (s *CartService) FailCheckout(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := s.getSession(sessionID)
	sess.state = models.CheckoutFailed
}

// buildResponse snapshots the session. Callers must hold s.mu.
func (s *CartService) buildResponse(sessionID string, sess *session) *CartResponse {
	items := make([]models.CartLine, 0, len(sess.order))
	for _, id := range sess.order {
		items = append(items, *sess.lines[id])
	}

	return &CartResponse{
		SessionID:     sessionID,
		Items:         items,
		Totals:        CalculateTotals(items),
		Customer:      sess.customer,
		Invoice:       sess.invoice,
		CheckoutState: sess.state,
	}
}
