package view

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/pricing"
)

// Empty-state messages.
const (
	CartEmpty     = "Your cart is empty."
	NoneSelected  = "No items selected."
	NothingStaged = "No items staged for checkout."
)

// CartView is everything the cart page shows.
type CartView struct {
	Items   []domain.CartLineItem
	Checked map[string]bool
	Mode    domain.ModeState
	Summary pricing.Summary
}

// Cart renders the cart lines, the selected-lines summary and the totals.
func (r *Renderer) Cart(v CartView) string {
	if len(v.Items) == 0 {
		return r.empty(CartEmpty)
	}

	rows := make([][]string, 0, len(v.Items))
	for _, item := range v.Items {
		mark := "[ ]"
		if v.Checked[item.ProductID] {
			mark = "[x]"
		}
		rows = append(rows, []string{
			mark,
			item.ProductID,
			item.Title,
			r.Money(item.UnitPrice),
			strconv.Itoa(item.Quantity),
			r.Money(item.ExtendedTotal()),
		})
	}

	var b strings.Builder
	b.WriteString(r.table([]string{"", "ID", "Item", "Price", "Qty", "Total"}, rows))
	b.WriteString("\n\n")
	b.WriteString(r.styles.Heading.Render(modeHeading(v.Mode)))
	b.WriteString("\n")
	b.WriteString(r.SummaryLines(v.Summary))
	b.WriteString("\n")
	b.WriteString(r.Totals(v.Summary))
	return b.String()
}

// SummaryLines lists the lines that count towards the total.
func (r *Renderer) SummaryLines(sum pricing.Summary) string {
	if len(sum.Lines) == 0 {
		return r.empty(NoneSelected)
	}
	var lines []string
	for _, l := range sum.Lines {
		lines = append(lines, fmt.Sprintf("%s  Qty: %d  %s  %s",
			l.Item.Title, l.Item.Quantity, r.Money(l.Item.UnitPrice), r.styles.Muted.Render(l.Item.ImageRef)))
	}
	return strings.Join(lines, "\n")
}

// Totals renders the subtotal, tax and grand total block.
func (r *Renderer) Totals(sum pricing.Summary) string {
	return strings.Join([]string{
		r.field(fmt.Sprintf("Subtotal (%d %s)", sum.ItemCount, plural(sum.ItemCount, "item")), r.Money(sum.Subtotal)),
		r.field(sum.TaxLabel, r.Money(sum.Tax)),
		r.field("Total", r.styles.Total.Render(r.Money(sum.Total))),
	}, "\n")
}

// CheckoutItems renders a staged checkout selection.
func (r *Renderer) CheckoutItems(items []domain.CheckoutItem) string {
	if len(items) == 0 {
		return r.empty(NothingStaged)
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{it.ID, it.Name, it.Price, strconv.Itoa(it.Quantity)})
	}
	return r.table([]string{"ID", "Item", "Price", "Qty"}, rows)
}

func modeHeading(m domain.ModeState) string {
	switch m.Mode {
	case domain.ModeSelected:
		return "Selected items"
	case domain.ModeSingle:
		if m.TargetID != "" {
			return "Shop now"
		}
	}
	return "All items"
}
