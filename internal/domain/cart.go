package domain

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Quantity bounds for a single cart line.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// CartLineItem is one product entry in the cart. Price is a whole number of
// rupees, the smallest unit the store trades in. The JSON names are the ones
// the checkout page and older clients already read from storage.
type CartLineItem struct {
	ProductID string `json:"id"`
	Title     string `json:"title"`
	UnitPrice int64  `json:"price"`
	ImageRef  string `json:"image"`
	Quantity  int    `json:"quantity"`
}

// ExtendedTotal is unit price times quantity.
func (i CartLineItem) ExtendedTotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

// ClampQuantity forces q into [MinQuantity, MaxQuantity].
func ClampQuantity(q int) int {
	if q < MinQuantity {
		return MinQuantity
	}
	if q > MaxQuantity {
		return MaxQuantity
	}
	return q
}

// UnmarshalJSON accepts the shapes older clients wrote: numeric ids, prices
// stored as display strings ("₹1,299") or floats, and missing quantities.
func (i *CartLineItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID       json.RawMessage `json:"id"`
		Title    string          `json:"title"`
		Price    json.RawMessage `json:"price"`
		Image    string          `json:"image"`
		Quantity json.RawMessage `json:"quantity"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	id, err := rawText(raw.ID)
	if err != nil {
		return err
	}
	price, err := rawPrice(raw.Price)
	if err != nil {
		return err
	}

	*i = CartLineItem{
		ProductID: id,
		Title:     raw.Title,
		UnitPrice: price,
		ImageRef:  raw.Image,
		Quantity:  ClampQuantity(rawQuantity(raw.Quantity)),
	}
	return nil
}

func rawText(raw json.RawMessage) (string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", nil
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", err
		}
		return s, nil
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err != nil {
		return "", err
	}
	return n.String(), nil
}

func rawPrice(raw json.RawMessage) (int64, error) {
	text, err := rawText(raw)
	if err != nil || text == "" {
		return 0, err
	}
	if isJSONString(raw) {
		return ParsePrice(text), nil
	}
	f, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, err
	}
	return PriceFromFloat(f), nil
}

// rawQuantity returns 0 for anything unusable so ClampQuantity lifts it to 1.
func rawQuantity(raw json.RawMessage) int {
	text, err := rawText(raw)
	if err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) {
		return 0
	}
	if f > MaxQuantity {
		return MaxQuantity
	}
	return int(f)
}

// Cart is an ordered sequence of line items with unique product ids.
type Cart struct {
	Items []CartLineItem
}

// IndexOf returns the position of productID in the cart, or -1.
func (c *Cart) IndexOf(productID string) int {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// Find returns the line for productID.
func (c *Cart) Find(productID string) (CartLineItem, bool) {
	if idx := c.IndexOf(productID); idx >= 0 {
		return c.Items[idx], true
	}
	return CartLineItem{}, false
}

// ItemCount returns the sum of quantities.
func (c *Cart) ItemCount() int {
	return CountItems(c.Items)
}

// Clone returns a deep copy.
func (c *Cart) Clone() *Cart {
	items := make([]CartLineItem, len(c.Items))
	copy(items, c.Items)
	return &Cart{Items: items}
}

// CountItems returns the sum of quantities across items.
func CountItems(items []CartLineItem) int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}
