package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// OrderStatus Tests
// ============================================================================

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in     string
		want   OrderStatus
		wantOK bool
	}{
		{"pending", OrderPending, true},
		{"Shipped", OrderShipped, true},
		{"out for delivery", OrderOutForDelivery, true},
		{"out-for-delivery", OrderOutForDelivery, true},
		{" delivered ", OrderDelivered, true},
		{"cancelled", OrderCancelled, true},
		{"lost", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseOrderStatus(tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
	}
}

func TestOrderStatus_Label(t *testing.T) {
	assert.Equal(t, "Out For Delivery", OrderOutForDelivery.Label())
	assert.Equal(t, "Pending", OrderPending.Label())
}

// ============================================================================
// Order decoding Tests
// ============================================================================

func TestOrder_UnmarshalListShape(t *testing.T) {
	in := `{"id":7,"user_name":"Sara Khan","user_email":"sara@example.com","total_amount":2599.0,
		"payment_method":"COD","order_status":"shipped","created_at":"2024-05-01",
		"items":[{"product_title":"Oud","product_image":"/api/product-image/2","quantity":1}]}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(in), &o))
	assert.Equal(t, ID("7"), o.ID)
	assert.Equal(t, OrderShipped, o.Status)
	assert.Equal(t, int64(2599), o.Total())
	assert.Equal(t, "Oud x1", o.ItemSummary())
}

func TestOrder_UnmarshalDetailShape(t *testing.T) {
	in := `{"id":"9","status":"Delivered","shipping_address":"12 MG Road","items":[]}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(in), &o))
	assert.Equal(t, OrderDelivered, o.Status)
	assert.Equal(t, "12 MG Road", o.ShippingAddress)
}

func TestOrder_MissingStatusIsPending(t *testing.T) {
	var o Order
	require.NoError(t, json.Unmarshal([]byte(`{"id":1}`), &o))
	assert.Equal(t, OrderPending, o.Status)
}

func TestOrder_MarshalWritesBothStatusNames(t *testing.T) {
	data, err := json.Marshal(Order{ID: "3", Status: OrderPlaced})
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "placed", m["status"])
	assert.Equal(t, "placed", m["order_status"])
}

// ============================================================================
// Product Tests
// ============================================================================

func TestProduct_UnmarshalToleratesNumbers(t *testing.T) {
	in := `{"id":5,"title":"Amber","gender":"Men","price":1499.0,"volume":100,"longevity":null}`

	var p Product
	require.NoError(t, json.Unmarshal([]byte(in), &p))
	assert.Equal(t, ID("5"), p.ID)
	assert.Equal(t, "100", p.Volume)
	assert.Equal(t, "", p.Longevity)
	assert.Equal(t, GenderHim, p.CanonicalGender())
	assert.Equal(t, int64(1499), p.UnitPrice())
	assert.Equal(t, "Perfume", p.CategoryOrDefault())
}

func TestProduct_LineItem(t *testing.T) {
	p := Product{ID: "5", Title: "Amber", Price: 1499, ImageURL: "/api/product-image/5"}
	assert.Equal(t, CartLineItem{ProductID: "5", Title: "Amber", UnitPrice: 1499, ImageRef: "/api/product-image/5", Quantity: 2}, p.LineItem(2))
}

// ============================================================================
// User / Address Tests
// ============================================================================

func TestUser_FullName(t *testing.T) {
	assert.Equal(t, "Sara Khan", User{FirstName: "Sara", LastName: "Khan"}.FullName())
	assert.Equal(t, "Sara", User{FirstName: "Sara"}.FullName())
}

func TestAddress_Line(t *testing.T) {
	a := Address{StreetAddress: "12 MG Road", City: "Pune", State: "MH", PostalCode: "411001", Country: "India"}
	assert.Equal(t, "12 MG Road, Pune, MH, 411001, India", a.Line())
	assert.Equal(t, "Asha Rao", Address{FirstName: "Asha", LastName: "Rao"}.DisplayName())
}

func TestSessionUser_DisplayName(t *testing.T) {
	assert.Equal(t, "Sara Khan", SessionUser{Name: "Sara Khan"}.DisplayName())
	assert.Equal(t, "Sara Khan", SessionUser{FirstName: "Sara", LastName: "Khan"}.DisplayName())
	assert.Equal(t, "s@x.io", SessionUser{Email: "s@x.io"}.DisplayName())
}
