package cart

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/storage"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

// AddItemInput holds the parameters for adding a product to the cart.
type AddItemInput struct {
	ProductID string
	Title     string
	UnitPrice int64
	ImageRef  string
	Quantity  int
}

// Store is the single source of truth for the persisted cart. Every mutation
// is written through to storage before it returns; if the write fails the
// in-memory cart is left as it was.
type Store struct {
	store  storage.Store
	logger *slog.Logger

	mu     sync.Mutex
	cart   *domain.Cart
	loaded bool
}

// NewStore creates a cart store over the given storage backend.
func NewStore(store storage.Store, logger *slog.Logger) *Store {
	return &Store{
		store:  store,
		logger: logger,
		cart:   &domain.Cart{},
	}
}

// Load reads the cart from storage, replacing the in-memory copy. A missing
// or undecodable value yields an empty cart.
func (s *Store) Load(ctx context.Context) ([]domain.CartLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

// Items returns a copy of the current lines in insertion order, loading
// them first if needed.
func (s *Store) Items(ctx context.Context) ([]domain.CartLineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return s.snapshot(), nil
}

// AddItem appends a new line or, when the product is already in the cart,
// increases its quantity and takes the newer image reference. The merged
// quantity is capped at MaxQuantity and a quantity below one counts as one.
func (s *Store) AddItem(ctx context.Context, input AddItemInput) error {
	if input.ProductID == "" {
		return apperrors.InvalidInput("product id is required")
	}
	if input.UnitPrice < 0 {
		return apperrors.InvalidInput("price must not be negative")
	}
	qty := domain.ClampQuantity(input.Quantity)

	err := s.mutate(ctx, func(c *domain.Cart) (bool, error) {
		if idx := c.IndexOf(input.ProductID); idx >= 0 {
			c.Items[idx].Quantity = domain.ClampQuantity(c.Items[idx].Quantity + qty)
			if input.ImageRef != "" {
				c.Items[idx].ImageRef = input.ImageRef
			}
			return true, nil
		}
		c.Items = append(c.Items, domain.CartLineItem{
			ProductID: input.ProductID,
			Title:     input.Title,
			UnitPrice: input.UnitPrice,
			ImageRef:  input.ImageRef,
			Quantity:  qty,
		})
		return true, nil
	})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "item added to cart",
		slog.String("product_id", input.ProductID),
		slog.Int("quantity", qty),
	)
	return nil
}

// SetQuantity sets the quantity of a line, clamping it to [1,10].
func (s *Store) SetQuantity(ctx context.Context, productID string, quantity int) error {
	return s.mutate(ctx, func(c *domain.Cart) (bool, error) {
		idx := c.IndexOf(productID)
		if idx < 0 {
			return false, apperrors.NotFound("cart item", productID)
		}
		clamped := domain.ClampQuantity(quantity)
		if c.Items[idx].Quantity == clamped {
			return false, nil
		}
		c.Items[idx].Quantity = clamped
		return true, nil
	})
}

// Increment raises a line's quantity by one, stopping at MaxQuantity.
func (s *Store) Increment(ctx context.Context, productID string) error {
	return s.step(ctx, productID, 1)
}

// Decrement lowers a line's quantity by one, stopping at MinQuantity. It
// never removes the line.
func (s *Store) Decrement(ctx context.Context, productID string) error {
	return s.step(ctx, productID, -1)
}

func (s *Store) step(ctx context.Context, productID string, delta int) error {
	return s.mutate(ctx, func(c *domain.Cart) (bool, error) {
		idx := c.IndexOf(productID)
		if idx < 0 {
			return false, apperrors.NotFound("cart item", productID)
		}
		next := domain.ClampQuantity(c.Items[idx].Quantity + delta)
		if next == c.Items[idx].Quantity {
			return false, nil
		}
		c.Items[idx].Quantity = next
		return true, nil
	})
}

// RemoveItem deletes the line for productID. Removing an absent product is a
// no-op.
func (s *Store) RemoveItem(ctx context.Context, productID string) error {
	removed := false
	err := s.mutate(ctx, func(c *domain.Cart) (bool, error) {
		idx := c.IndexOf(productID)
		if idx < 0 {
			return false, nil
		}
		c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
		removed = true
		return true, nil
	})
	if err != nil {
		return err
	}
	if removed {
		s.logger.InfoContext(ctx, "item removed from cart", slog.String("product_id", productID))
	}
	return nil
}

// Persist overwrites the stored cart with the in-memory one.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(ctx, s.cart)
}

// mutate applies fn to a copy of the cart and, if fn reports a change,
// persists the copy before adopting it.
func (s *Store) mutate(ctx context.Context, fn func(c *domain.Cart) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	next := s.cart.Clone()
	changed, err := fn(next)
	if err != nil || !changed {
		return err
	}
	if err := s.write(ctx, next); err != nil {
		return err
	}
	s.cart = next
	return nil
}

func (s *Store) ensureLoaded(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) error {
	var items []domain.CartLineItem
	_, err := storage.GetJSON(ctx, s.store, storage.KeyCart, &items)
	if err != nil {
		if !errors.Is(err, storage.ErrMalformed) {
			return apperrors.Internal(fmt.Errorf("load cart: %w", err))
		}
		s.logger.WarnContext(ctx, "stored cart is malformed, starting empty",
			slog.String("error", err.Error()),
		)
		items = nil
	}

	s.cart = &domain.Cart{Items: dedupe(items)}
	s.loaded = true
	return nil
}

func (s *Store) write(ctx context.Context, c *domain.Cart) error {
	items := c.Items
	if items == nil {
		items = []domain.CartLineItem{}
	}
	if err := storage.SetJSON(ctx, s.store, storage.KeyCart, items); err != nil {
		s.logger.ErrorContext(ctx, "failed to persist cart", slog.String("error", err.Error()))
		return apperrors.Internal(fmt.Errorf("persist cart: %w", err))
	}
	return nil
}

func (s *Store) snapshot() []domain.CartLineItem {
	return s.cart.Clone().Items
}

// dedupe merges repeated product ids that older clients could leave behind,
// keeping the first position.
func dedupe(items []domain.CartLineItem) []domain.CartLineItem {
	out := make([]domain.CartLineItem, 0, len(items))
	seen := make(map[string]int, len(items))
	for _, item := range items {
		if item.ProductID == "" {
			continue
		}
		if idx, ok := seen[item.ProductID]; ok {
			out[idx].Quantity = domain.ClampQuantity(out[idx].Quantity + item.Quantity)
			continue
		}
		seen[item.ProductID] = len(out)
		out = append(out, item)
	}
	return out
}
