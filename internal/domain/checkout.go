package domain

// ShoppingMode selects which cart lines contribute to the displayed total.
type ShoppingMode string

const (
	ModeAll      ShoppingMode = "all"
	ModeSelected ShoppingMode = "selected"
	ModeSingle   ShoppingMode = "single"
)

// ParseShoppingMode maps a stored value to a mode. Anything unknown is ModeAll.
func ParseShoppingMode(s string) ShoppingMode {
	switch ShoppingMode(s) {
	case ModeSelected:
		return ModeSelected
	case ModeSingle:
		return ModeSingle
	default:
		return ModeAll
	}
}

// ModeState is the shopping mode together with its optional target product.
type ModeState struct {
	Mode     ShoppingMode
	TargetID string
}

// ActiveItems returns the lines that count towards the total, in cart order.
// In selected mode with nothing checked the result is empty; single mode
// without a target falls back to every line.
func ActiveItems(items []CartLineItem, state ModeState, checked map[string]bool) []CartLineItem {
	switch state.Mode {
	case ModeSelected:
		active := make([]CartLineItem, 0, len(checked))
		for _, item := range items {
			if checked[item.ProductID] {
				active = append(active, item)
			}
		}
		return active
	case ModeSingle:
		if state.TargetID == "" {
			return items
		}
		active := make([]CartLineItem, 0, 1)
		for _, item := range items {
			if item.ProductID == state.TargetID {
				active = append(active, item)
			}
		}
		return active
	default:
		return items
	}
}

// CheckoutItem is the staged line the checkout page reads. Price is already
// formatted for display.
type CheckoutItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// ToCheckoutItems formats cart lines for the checkout hand-off.
func ToCheckoutItems(symbol string, items []CartLineItem) []CheckoutItem {
	out := make([]CheckoutItem, 0, len(items))
	for _, item := range items {
		out = append(out, CheckoutItem{
			ID:       item.ProductID,
			Name:     item.Title,
			Price:    FormatAmount(symbol, item.UnitPrice),
			Image:    item.ImageRef,
			Quantity: item.Quantity,
		})
	}
	return out
}

// FromCheckoutItems recovers cart lines from a staged selection.
func FromCheckoutItems(items []CheckoutItem) []CartLineItem {
	out := make([]CartLineItem, 0, len(items))
	for _, item := range items {
		out = append(out, CartLineItem{
			ProductID: item.ID,
			Title:     item.Name,
			UnitPrice: ParsePrice(item.Price),
			ImageRef:  item.Image,
			Quantity:  ClampQuantity(item.Quantity),
		})
	}
	return out
}
