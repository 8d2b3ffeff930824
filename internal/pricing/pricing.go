package pricing

import (
	"fmt"

	"github.com/Areeb006/FAJR/internal/domain"
)

// TaxStrategy computes the tax owed on a subtotal.
type TaxStrategy interface {
	Tax(subtotal int64) int64
	Name() string
}

// NoTax charges nothing. It is the calculator's default.
type NoTax struct{}

// Tax always returns 0.
func (NoTax) Tax(int64) int64 { return 0 }

// Name labels the tax line.
func (NoTax) Name() string { return "No tax" }

// FlatRate charges a fixed rate expressed in basis points (100 = 1%),
// rounding half up to the nearest rupee. The zero value charges nothing.
type FlatRate struct {
	BasisPoints int64
}

// Tax returns the rounded rate applied to subtotal. Non-positive subtotals owe
// nothing.
func (f FlatRate) Tax(subtotal int64) int64 {
	if f.BasisPoints <= 0 || subtotal <= 0 {
		return 0
	}
	return (subtotal*f.BasisPoints + 5000) / 10000
}

// Name labels the tax line with the rate, e.g. "Tax (5.25%)".
func (f FlatRate) Name() string {
	if f.BasisPoints <= 0 {
		return NoTax{}.Name()
	}
	return fmt.Sprintf("Tax (%d.%02d%%)", f.BasisPoints/100, f.BasisPoints%100)
}

// Line is a cart line with its extended total.
type Line struct {
	Item          domain.CartLineItem
	ExtendedTotal int64
}

// Summary holds the totals over the active subset of the cart.
type Summary struct {
	Lines     []Line
	ItemCount int
	Subtotal  int64
	Tax       int64
	TaxLabel  string
	Total     int64
}

// Calculator derives totals using a TaxStrategy.
type Calculator struct {
	tax TaxStrategy
}

// NewCalculator creates a calculator. A nil strategy means no tax.
func NewCalculator(tax TaxStrategy) *Calculator {
	if tax == nil {
		tax = NoTax{}
	}
	return &Calculator{tax: tax}
}

// Compute sums extended totals over items and applies tax.
func (c *Calculator) Compute(items []domain.CartLineItem) Summary {
	sum := Summary{Lines: make([]Line, 0, len(items))}
	for _, item := range items {
		ext := item.ExtendedTotal()
		sum.Lines = append(sum.Lines, Line{Item: item, ExtendedTotal: ext})
		sum.ItemCount += item.Quantity
		sum.Subtotal += ext
	}
	sum.Tax = c.tax.Tax(sum.Subtotal)
	sum.TaxLabel = c.tax.Name()
	sum.Total = sum.Subtotal + sum.Tax
	return sum
}

// ComputeActive applies the shopping mode before computing totals.
func (c *Calculator) ComputeActive(items []domain.CartLineItem, state domain.ModeState, checked map[string]bool) Summary {
	return c.Compute(domain.ActiveItems(items, state, checked))
}
