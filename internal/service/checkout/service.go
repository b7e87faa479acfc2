// Package checkout assembles orders from the cart and submits them to the
// order-notification sink.
package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"grocery-storefront/internal/domain"
	"grocery-storefront/internal/pricing"
)

// ErrEmptyCart rejects checkout of a cart with no line items.
var ErrEmptyCart = errors.New("cart is empty")

type cartStore interface {
	Items() []domain.CartItem
	Total() float64
	ClearCart(ctx context.Context)
}

// Service posts assembled orders to the notification sink. The sink is
// opaque: the service only cares whether the request was accepted.
type Service struct {
	client  *http.Client
	sinkURL string
	logger  *log.Logger
	now     func() time.Time
}

func New(sinkURL string, timeout time.Duration, logger *log.Logger) *Service {
	return &Service{
		client:  &http.Client{Timeout: timeout},
		sinkURL: sinkURL,
		logger:  logger,
		now:     time.Now,
	}
}

// Submit snapshots the cart, posts the order document to the sink, and
// clears the cart only after the sink accepted it. On any failure the cart
// is left untouched so the caller can retry.
func (s *Service) Submit(ctx context.Context, customer domain.CustomerInfo, store cartStore) (*domain.Order, error) {
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	order := &domain.Order{
		Customer:      customer,
		Items:         items,
		Totals:        pricing.Compute(store.Total()),
		PaymentMethod: domain.PaymentCashOnDelivery,
		OrderDate:     s.now().UTC().Format(time.RFC3339),
	}

	body, err := json.Marshal(order)
	if err != nil {
		return nil, fmt.Errorf("encode order: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.sinkURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build order request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("order sink responded %d", resp.StatusCode)
	}

	store.ClearCart(ctx)
	s.logger.Printf("order accepted for %s, %d line items, total %s",
		customer.Email, len(order.Items), pricing.Format(order.Totals.Total))
	return order, nil
}
