// Package listing implements the fetch-then-filter list pattern shared by the
// product, user and order screens. Filtering is pure and synchronous over the
// already-loaded collection; only Load talks to the API.
package listing

import (
	"strings"

	"github.com/Areeb006/FAJR/internal/domain"
)

// Query is the filter state of a list: a free-text search plus an optional
// categorical value (gender key for products, status for orders).
type Query struct {
	Search   string
	Category string
}

// IsZero reports whether the query filters nothing.
func (q Query) IsZero() bool {
	return strings.TrimSpace(q.Search) == "" && strings.TrimSpace(q.Category) == ""
}

// Matcher decides whether an item passes a query.
type Matcher[T any] func(item T, q Query) bool

// Filter returns the items that pass match, preserving order. The result is
// never nil.
func Filter[T any](items []T, q Query, match Matcher[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if match(item, q) {
			out = append(out, item)
		}
	}
	return out
}

// ContainsFold reports whether needle occurs in haystack, ignoring case and
// surrounding whitespace in needle. An empty needle matches everything.
func ContainsFold(haystack, needle string) bool {
	needle = strings.TrimSpace(needle)
	if needle == "" {
		return true
	}
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// AnyContainsFold reports whether any field contains needle.
func AnyContainsFold(needle string, fields ...string) bool {
	if strings.TrimSpace(needle) == "" {
		return true
	}
	for _, f := range fields {
		if ContainsFold(f, needle) {
			return true
		}
	}
	return false
}

// MatchProduct filters on title and on the normalised gender. The category
// may be a key ("him"), a label ("For Him") or any raw spelling; "all" and
// empty disable the gender filter.
func MatchProduct(p domain.Product, q Query) bool {
	if !ContainsFold(p.Title, q.Search) {
		return false
	}
	cat := strings.TrimSpace(q.Category)
	if cat == "" || strings.EqualFold(cat, "all") {
		return true
	}
	return domain.NormalizeGender(cat) == p.CanonicalGender()
}

// MatchUser filters on full name or email.
func MatchUser(u domain.User, q Query) bool {
	return AnyContainsFold(q.Search, u.FullName(), u.Email)
}

// MatchOrder filters on exact status and on customer name or email.
func MatchOrder(o domain.Order, q Query) bool {
	cat := strings.TrimSpace(q.Category)
	if cat != "" && !strings.EqualFold(cat, "all") {
		want, ok := domain.ParseOrderStatus(cat)
		if !ok || want != o.Status {
			return false
		}
	}
	return AnyContainsFold(q.Search, o.UserName, o.UserEmail)
}
