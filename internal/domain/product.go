package domain

import (
	"bytes"
	"encoding/json"
	"strings"
)

// ID is a resource identifier. The API sends integers; stored state and
// URLs treat ids as strings, so both are accepted.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	s, err := rawText(data)
	if err != nil {
		return err
	}
	*id = ID(s)
	return nil
}

func (id ID) String() string { return string(id) }

// Product is a catalogue entry as served by the API.
type Product struct {
	ID          ID      `json:"id"`
	Title       string  `json:"title"`
	Category    string  `json:"category"`
	Gender      string  `json:"gender"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Volume      string  `json:"volume"`
	Longevity   string  `json:"longevity"`
	IsNew       bool    `json:"is_new"`
}

// UnmarshalJSON tolerates numeric volume/longevity values.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	aux := struct {
		*alias
		Volume    json.RawMessage `json:"volume"`
		Longevity json.RawMessage `json:"longevity"`
	}{alias: (*alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	var err error
	if p.Volume, err = rawText(aux.Volume); err != nil {
		return err
	}
	if p.Longevity, err = rawText(aux.Longevity); err != nil {
		return err
	}
	return nil
}

// CanonicalGender normalises the raw gender label.
func (p Product) CanonicalGender() Gender {
	return NormalizeGender(p.Gender)
}

// UnitPrice is the price in whole rupees.
func (p Product) UnitPrice() int64 {
	return PriceFromFloat(p.Price)
}

// CategoryOrDefault returns the category, or "Perfume" when unset.
func (p Product) CategoryOrDefault() string {
	if strings.TrimSpace(p.Category) == "" {
		return "Perfume"
	}
	return p.Category
}

// LineItem builds a cart line for quantity units of p.
func (p Product) LineItem(quantity int) CartLineItem {
	return CartLineItem{
		ProductID: p.ID.String(),
		Title:     p.Title,
		UnitPrice: p.UnitPrice(),
		ImageRef:  p.ImageURL,
		Quantity:  quantity,
	}
}

// isJSONString reports whether raw holds a JSON string literal.
func isJSONString(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && raw[0] == '"'
}
