package storefront

import (
	"context"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/Areeb006/FAJR/internal/cart"
	"github.com/Areeb006/FAJR/internal/checkout"
	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/notify"
	"github.com/Areeb006/FAJR/internal/pricing"
	"github.com/Areeb006/FAJR/internal/view"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

// MsgQuantityNotNumber is shown when a typed quantity is not a whole number.
const MsgQuantityNotNumber = "Quantity must be a whole number"

// CartPage is the cart screen: the persisted lines, the checkbox state and
// the totals for the active shopping mode. Every mutation returns the
// recomputed view.
type CartPage struct {
	reporter
	cart     *cart.Store
	checkout *checkout.Service
	calc     *pricing.Calculator

	mu      sync.Mutex
	checked map[string]bool
}

// NewCartPage creates the cart screen controller. Lines start unchecked.
func NewCartPage(cartStore *cart.Store, checkoutSvc *checkout.Service, calc *pricing.Calculator, notifier notify.Notifier, logger *slog.Logger) *CartPage {
	return &CartPage{
		reporter: reporter{notifier: notifier, logger: logger},
		cart:     cartStore,
		checkout: checkoutSvc,
		calc:     calc,
		checked:  make(map[string]bool),
	}
}

// View loads the cart and shopping mode and recomputes the totals.
func (p *CartPage) View(ctx context.Context) (view.CartView, error) {
	items, err := p.cart.Items(ctx)
	if err != nil {
		return view.CartView{}, p.fail(ctx, "load cart", err)
	}
	mode, err := p.checkout.Mode(ctx)
	if err != nil {
		return view.CartView{}, p.fail(ctx, "load shopping mode", err)
	}

	p.mu.Lock()
	present := make(map[string]bool, len(items))
	for _, item := range items {
		present[item.ProductID] = true
	}
	checked := make(map[string]bool, len(p.checked))
	for id := range p.checked {
		if present[id] {
			checked[id] = true
		} else {
			delete(p.checked, id)
		}
	}
	p.mu.Unlock()

	return view.CartView{
		Items:   items,
		Checked: checked,
		Mode:    mode,
		Summary: p.calc.ComputeActive(items, mode, checked),
	}, nil
}

// Increment is the "+" control; it stops at the maximum quantity.
func (p *CartPage) Increment(ctx context.Context, productID string) (view.CartView, error) {
	if err := p.cart.Increment(ctx, productID); err != nil {
		return view.CartView{}, p.fail(ctx, "increase quantity", err)
	}
	return p.View(ctx)
}

// Decrement is the "-" control; it stops at one and never removes the line.
func (p *CartPage) Decrement(ctx context.Context, productID string) (view.CartView, error) {
	if err := p.cart.Decrement(ctx, productID); err != nil {
		return view.CartView{}, p.fail(ctx, "decrease quantity", err)
	}
	return p.View(ctx)
}

// SetQuantity is a typed quantity; out-of-range values are clamped.
func (p *CartPage) SetQuantity(ctx context.Context, productID string, quantity int) (view.CartView, error) {
	if err := p.cart.SetQuantity(ctx, productID, quantity); err != nil {
		return view.CartView{}, p.fail(ctx, "set quantity", err)
	}
	return p.View(ctx)
}

// Remove deletes a line and forgets its checkbox.
func (p *CartPage) Remove(ctx context.Context, productID string) (view.CartView, error) {
	if err := p.cart.RemoveItem(ctx, productID); err != nil {
		return view.CartView{}, p.fail(ctx, "remove item", err)
	}
	p.mu.Lock()
	delete(p.checked, productID)
	p.mu.Unlock()
	return p.View(ctx)
}

// Check ticks the checkboxes of the given lines.
func (p *CartPage) Check(productIDs ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range productIDs {
		p.checked[id] = true
	}
}

// Uncheck clears the checkboxes of the given lines.
func (p *CartPage) Uncheck(productIDs ...string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, id := range productIDs {
		delete(p.checked, id)
	}
}

// CheckedIDs returns the ticked ids in a stable order.
func (p *CartPage) CheckedIDs() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	ids := make([]string, 0, len(p.checked))
	for id := range p.checked {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// ShopAll stages every line for checkout.
func (p *CartPage) ShopAll(ctx context.Context) ([]domain.CartLineItem, error) {
	items, err := p.checkout.SelectAll(ctx)
	if err != nil {
		return nil, p.fail(ctx, "shop all", err)
	}
	return items, nil
}

// ShopNow stages a single line for checkout.
func (p *CartPage) ShopNow(ctx context.Context, productID string) ([]domain.CartLineItem, error) {
	items, err := p.checkout.SelectSingle(ctx, productID)
	if err != nil {
		return nil, p.fail(ctx, "shop now", err)
	}
	return items, nil
}

// ShopSelected stages the ticked lines. Nothing ticked fails validation.
func (p *CartPage) ShopSelected(ctx context.Context) ([]domain.CartLineItem, error) {
	items, err := p.checkout.SelectChecked(ctx, p.CheckedIDs())
	if err != nil {
		return nil, p.fail(ctx, "shop selected", err)
	}
	return items, nil
}

// ParseQuantity reads a typed quantity. Range is not checked here; the cart
// clamps it.
func ParseQuantity(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, apperrors.InvalidInput(MsgQuantityNotNumber)
	}
	return n, nil
}
