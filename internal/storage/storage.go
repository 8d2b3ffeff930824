// Package storage is the client-side key/value store that holds the cart,
// the staged checkout selection, the shopping mode and the API session.
// Reads and writes are synchronous; concurrent writers race and the last one
// wins.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Keys shared with the checkout page and older clients.
const (
	KeyCart             = "cart"
	KeyCheckoutItems    = "checkoutItems"
	KeyShoppingMode     = "shoppingMode"
	KeyShopNowProductID = "shopNowProductId"
	KeySession          = "session"
)

// ErrMalformed marks a stored value that could not be decoded. Callers treat
// it as absent data.
var ErrMalformed = errors.New("malformed stored value")

// Store defines the persistence operations every backend provides.
type Store interface {
	// Get returns the raw value for key and whether it was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set overwrites the value for key.
	Set(ctx context.Context, key, value string) error

	// Remove deletes key. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}

// GetJSON decodes the value under key into v. It reports false when the key
// is absent. A value that does not decode yields an error wrapping
// ErrMalformed.
func GetJSON(ctx context.Context, s Store, key string, v any) (bool, error) {
	raw, ok, err := s.Get(ctx, key)
	if err != nil || !ok {
		return false, err
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		return false, fmt.Errorf("decode %s: %w: %v", key, ErrMalformed, err)
	}
	return true, nil
}

// SetJSON encodes v and stores it under key.
func SetJSON(ctx context.Context, s Store, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.Set(ctx, key, string(data))
}

// Namespaced prefixes every key with ns so several profiles can share one
// backend.
func Namespaced(s Store, ns string) Store {
	if ns == "" {
		return s
	}
	return &namespaced{inner: s, prefix: ns + ":"}
}

type namespaced struct {
	inner  Store
	prefix string
}

func (n *namespaced) Get(ctx context.Context, key string) (string, bool, error) {
	return n.inner.Get(ctx, n.prefix+key)
}

func (n *namespaced) Set(ctx context.Context, key, value string) error {
	return n.inner.Set(ctx, n.prefix+key, value)
}

func (n *namespaced) Remove(ctx context.Context, key string) error {
	return n.inner.Remove(ctx, n.prefix+key)
}
