package services

import (
	"context"
	"errors"
	"log"

	"golang-storefront-backend/pkg/backend"
	"golang-storefront-backend/pkg/messaging"
)

// ErrCheckoutFailed is the generic failure surfaced to clients; the
// backend's rejection text is logged, not exposed.
var ErrCheckoutFailed = errors.New("checkout failed")

// CheckoutService submits carts to the store backend. At most one checkout
// per session is in flight at a time; the processing flag lives in the
// cart session and is flipped by BeginCheckout under its lock.
type CheckoutService struct {
	cart    *CartService
	backend *backend.Client
	kafka   *messaging.KafkaProducer
	brokers []string
}

func NewCheckoutService(cartService *CartService, backendClient *backend.Client, kafkaProducer *messaging.KafkaProducer, kafkaBrokers []string) *CheckoutService {
	return &CheckoutService{
		cart:    cartService,
		backend: backendClient,
		kafka:   kafkaProducer,
		brokers: kafkaBrokers,
	}
}

// Checkout validates preconditions, posts the cart to the backend and, on
// success, installs the returned invoice and empties the cart. On any
// failure the cart, customer details and previous invoice are untouched.
func (s *CheckoutService) Checkout(ctx context.Context, sessionID string) (*CartResponse, error) {
	payload, err := s.cart.BeginCheckout(sessionID)
	if err != nil {
		return nil, err
	}

	invoice, err := s.backend.SubmitCheckout(ctx, payload)
	if err != nil {
		log.Printf("Checkout failed for session %s: %v", sessionID, err)
		s.cart.FailCheckout(sessionID)
		return nil, ErrCheckoutFailed
	}

	response := s.cart.CompleteCheckout(sessionID, invoice)

	if s.kafka != nil {
		event := messaging.CheckoutEvent{
			Type:          "checkout_completed",
			SessionID:     sessionID,
			InvoiceNumber: invoice.InvoiceNumber,
			Total:         invoice.Total,
			ItemCount:     len(payload.Items),
		}
		if err := s.kafka.SendMessage("checkout_events", s.brokers, sessionID, event); err != nil {
			log.Printf("Failed to publish checkout event: %v", err)
		}
	}

	return response, nil
}
