// Package cart implements the shopping-cart store: the single authoritative
// collection of line items for one session, with snapshot persistence and
// derived totals.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	"github.com/google/uuid"

	"grocery-storefront/internal/domain"
	"grocery-storefront/internal/pricing"
)

// ChangeKind tells consumers which confirmation to show for a mutation.
type ChangeKind string

const (
	ChangeAdded     ChangeKind = "added"
	ChangeIncreased ChangeKind = "quantity_increased"
	ChangeRemoved   ChangeKind = "removed"
)

// Notice is the user-visible confirmation produced by a cart mutation.
type Notice struct {
	Kind        ChangeKind `json:"kind"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
}

type snapshotRepo interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}

// Store owns the cart for one session key. It is the only writer of the
// persisted snapshot; every mutation rewrites the whole snapshot. Persistence
// failures are logged, never surfaced: the in-memory cart stays authoritative
// for the session either way.
type Store struct {
	repo   snapshotRepo
	key    string
	logger *log.Logger
	items  []domain.CartItem
	newID  func() string
}

// Open loads the persisted snapshot for key. An absent or unreadable
// snapshot starts an empty cart; opening never fails.
func Open(ctx context.Context, repo snapshotRepo, key string, logger *log.Logger) *Store {
	s := &Store{repo: repo, key: key, logger: logger, newID: uuid.NewString}
	data, err := repo.Load(ctx, key)
	switch {
	case errors.Is(err, domain.ErrNotFound):
	case err != nil:
		logger.Printf("load cart snapshot %s: %v", key, err)
	default:
		var items []domain.CartItem
		if err := json.Unmarshal(data, &items); err != nil {
			logger.Printf("discarding unreadable cart snapshot %s: %v", key, err)
		} else {
			s.items = items
		}
	}
	return s
}

// Items returns the line items in insertion order.
func (s *Store) Items() []domain.CartItem {
	out := make([]domain.CartItem, len(s.items))
	copy(out, s.items)
	return out
}

// AddToCart adds one unit of product. If a line with the same product name
// already exists its quantity is incremented and its stored price left
// untouched; otherwise a new line with quantity 1 is appended.
func (s *Store) AddToCart(ctx context.Context, p domain.Product) Notice {
	for i := range s.items {
		if s.items[i].Name == p.Name {
			s.items[i].Quantity++
			s.persist(ctx)
			return Notice{
				Kind:        ChangeIncreased,
				Title:       "Updated cart",
				Description: p.Name + " quantity increased",
			}
		}
	}
	s.items = append(s.items, domain.CartItem{
		ID:       s.newID(),
		Name:     p.Name,
		Price:    p.Price,
		Image:    p.Image,
		Category: p.Category,
		Quantity: 1,
	})
	s.persist(ctx)
	return Notice{
		Kind:        ChangeAdded,
		Title:       "Added to cart",
		Description: p.Name + " has been added to your cart",
	}
}

// UpdateQuantity sets a line's quantity. Zero or below removes the line.
// Unknown ids are a no-op and return no notice.
func (s *Store) UpdateQuantity(ctx context.Context, id string, quantity int) *Notice {
	if quantity <= 0 {
		return s.RemoveFromCart(ctx, id)
	}
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			s.persist(ctx)
			break
		}
	}
	return nil
}

// RemoveFromCart deletes the matching line. Removing an id that is already
// gone is a no-op and returns no notice.
func (s *Store) RemoveFromCart(ctx context.Context, id string) *Notice {
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persist(ctx)
			return &Notice{
				Kind:        ChangeRemoved,
				Title:       "Removed from cart",
				Description: "Item has been removed from your cart",
			}
		}
	}
	return nil
}

// ClearCart empties the collection and drops the persisted snapshot.
func (s *Store) ClearCart(ctx context.Context) {
	s.items = nil
	if err := s.repo.Delete(ctx, s.key); err != nil {
		s.logger.Printf("delete cart snapshot %s: %v", s.key, err)
	}
}

// Total is the plain monetary subtotal: Σ price × quantity, before tax and
// shipping.
func (s *Store) Total() float64 {
	var total float64
	for _, it := range s.items {
		total += pricing.ParsePrice(it.Price) * float64(it.Quantity)
	}
	return total
}

// Count is the number of units across all lines, not the number of lines.
// The header badge shows this.
func (s *Store) Count() int {
	var count int
	for _, it := range s.items {
		count += it.Quantity
	}
	return count
}

func (s *Store) persist(ctx context.Context) {
	data, err := json.Marshal(s.items)
	if err != nil {
		s.logger.Printf("encode cart snapshot %s: %v", s.key, err)
		return
	}
	if err := s.repo.Save(ctx, s.key, data); err != nil {
		s.logger.Printf("save cart snapshot %s: %v", s.key, err)
	}
}
