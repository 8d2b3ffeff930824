package checkout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Areeb006/FAJR/internal/cart"
	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/storage"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

// User-facing validation messages.
const (
	MsgSelectAtLeastOne = "Please select at least one item to proceed."
	MsgCartEmpty        = "Your cart is empty."
)

// Service stages a subset of the cart for the checkout page under its own
// storage key, so checkout attempts never mutate the cart itself. It also
// owns the persisted shopping mode.
type Service struct {
	cart   *cart.Store
	store  storage.Store
	symbol string
	logger *slog.Logger
}

// NewService creates a checkout selection service.
func NewService(cartStore *cart.Store, store storage.Store, currencySymbol string, logger *slog.Logger) *Service {
	if currencySymbol == "" {
		currencySymbol = domain.DefaultCurrencySymbol
	}
	return &Service{
		cart:   cartStore,
		store:  store,
		symbol: currencySymbol,
		logger: logger,
	}
}

// SelectAll stages every cart line and switches to "all" mode.
func (s *Service) SelectAll(ctx context.Context) ([]domain.CartLineItem, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, apperrors.InvalidInput(MsgCartEmpty)
	}
	return s.stage(ctx, items, domain.ModeState{Mode: domain.ModeAll})
}

// SelectSingle stages exactly the line for productID ("shop now").
func (s *Service) SelectSingle(ctx context.Context, productID string) ([]domain.CartLineItem, error) {
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}
	c := domain.Cart{Items: items}
	item, ok := c.Find(productID)
	if !ok {
		return nil, apperrors.NotFound("cart item", productID)
	}
	return s.stage(ctx, []domain.CartLineItem{item}, domain.ModeState{Mode: domain.ModeSingle, TargetID: productID})
}

// SelectChecked stages the lines whose ids are in checked, in cart order.
// Unknown ids are ignored; a selection that matches nothing fails validation.
func (s *Service) SelectChecked(ctx context.Context, checked []string) ([]domain.CartLineItem, error) {
	if len(checked) == 0 {
		return nil, apperrors.InvalidInput(MsgSelectAtLeastOne)
	}
	items, err := s.cart.Items(ctx)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(checked))
	for _, id := range checked {
		set[id] = true
	}
	selected := domain.ActiveItems(items, domain.ModeState{Mode: domain.ModeSelected}, set)
	if len(selected) == 0 {
		return nil, apperrors.InvalidInput(MsgSelectAtLeastOne)
	}
	return s.stage(ctx, selected, domain.ModeState{Mode: domain.ModeSelected})
}

func (s *Service) stage(ctx context.Context, items []domain.CartLineItem, mode domain.ModeState) ([]domain.CartLineItem, error) {
	if err := storage.SetJSON(ctx, s.store, storage.KeyCheckoutItems, domain.ToCheckoutItems(s.symbol, items)); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("stage checkout items: %w", err))
	}
	if err := s.SetMode(ctx, mode); err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "checkout selection staged",
		slog.String("mode", string(mode.Mode)),
		slog.Int("lines", len(items)),
		slog.Int("items", domain.CountItems(items)),
	)
	return items, nil
}

// Staged returns the staged selection in its display shape. Absent or
// malformed data is an empty selection.
func (s *Service) Staged(ctx context.Context) ([]domain.CheckoutItem, error) {
	var staged []domain.CheckoutItem
	_, err := storage.GetJSON(ctx, s.store, storage.KeyCheckoutItems, &staged)
	if err != nil {
		if !errors.Is(err, storage.ErrMalformed) {
			return nil, apperrors.Internal(fmt.Errorf("read checkout items: %w", err))
		}
		s.logger.WarnContext(ctx, "staged checkout items are malformed, ignoring",
			slog.String("error", err.Error()),
		)
		return []domain.CheckoutItem{}, nil
	}
	if staged == nil {
		staged = []domain.CheckoutItem{}
	}
	return staged, nil
}

// Consume returns the staged selection and clears it. The selection is
// written once and read once.
func (s *Service) Consume(ctx context.Context) ([]domain.CartLineItem, error) {
	staged, err := s.Staged(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.store.Remove(ctx, storage.KeyCheckoutItems); err != nil {
		return nil, apperrors.Internal(fmt.Errorf("clear checkout items: %w", err))
	}
	return domain.FromCheckoutItems(staged), nil
}

// Mode returns the persisted shopping mode. Missing or malformed values mean
// "all".
func (s *Service) Mode(ctx context.Context) (domain.ModeState, error) {
	raw, _, err := s.store.Get(ctx, storage.KeyShoppingMode)
	if err != nil {
		if !errors.Is(err, storage.ErrMalformed) {
			return domain.ModeState{}, apperrors.Internal(fmt.Errorf("read shopping mode: %w", err))
		}
		s.logger.WarnContext(ctx, "stored shopping mode is malformed, using all",
			slog.String("error", err.Error()),
		)
		return domain.ModeState{Mode: domain.ModeAll}, nil
	}
	state := domain.ModeState{Mode: domain.ParseShoppingMode(raw)}
	if state.Mode == domain.ModeSingle {
		target, _, err := s.store.Get(ctx, storage.KeyShopNowProductID)
		if err != nil {
			if !errors.Is(err, storage.ErrMalformed) {
				return domain.ModeState{}, apperrors.Internal(fmt.Errorf("read shop-now product: %w", err))
			}
			s.logger.WarnContext(ctx, "stored shop-now product is malformed, using all",
				slog.String("error", err.Error()),
			)
			return domain.ModeState{Mode: domain.ModeAll}, nil
		}
		state.TargetID = target
	}
	return state, nil
}

// SetMode persists the shopping mode. The shop-now target is only kept in
// single mode.
func (s *Service) SetMode(ctx context.Context, state domain.ModeState) error {
	if err := s.store.Set(ctx, storage.KeyShoppingMode, string(state.Mode)); err != nil {
		return apperrors.Internal(fmt.Errorf("write shopping mode: %w", err))
	}

	var err error
	if state.Mode == domain.ModeSingle && state.TargetID != "" {
		err = s.store.Set(ctx, storage.KeyShopNowProductID, state.TargetID)
	} else {
		err = s.store.Remove(ctx, storage.KeyShopNowProductID)
	}
	if err != nil {
		return apperrors.Internal(fmt.Errorf("write shop-now product: %w", err))
	}
	return nil
}
