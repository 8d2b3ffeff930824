package domain

import (
	"encoding/json"
	"strconv"
	"strings"
)

// OrderStatus is the fulfilment state of an order.
type OrderStatus string

const (
	OrderPending        OrderStatus = "pending"
	OrderPlaced         OrderStatus = "placed"
	OrderShipped        OrderStatus = "shipped"
	OrderOutForDelivery OrderStatus = "out_for_delivery"
	OrderDelivered      OrderStatus = "delivered"
	OrderCancelled      OrderStatus = "cancelled"
)

// OrderStatuses lists every status the API accepts, in lifecycle order.
var OrderStatuses = []OrderStatus{
	OrderPending,
	OrderPlaced,
	OrderShipped,
	OrderOutForDelivery,
	OrderDelivered,
	OrderCancelled,
}

// ParseOrderStatus matches s case-insensitively against the known statuses.
// Spaces and hyphens are accepted in place of underscores.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	norm := strings.NewReplacer(" ", "_", "-", "_").Replace(strings.ToLower(strings.TrimSpace(s)))
	for _, st := range OrderStatuses {
		if string(st) == norm {
			return st, true
		}
	}
	return "", false
}

// Label is the display form ("out_for_delivery" -> "Out For Delivery").
func (s OrderStatus) Label() string {
	words := strings.Split(string(s), "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}

// OrderItem is one product within an order.
type OrderItem struct {
	ProductID    ID      `json:"product_id,omitempty"`
	ProductTitle string  `json:"product_title"`
	ProductImage string  `json:"product_image"`
	Quantity     int     `json:"quantity"`
	Price        float64 `json:"price,omitempty"`
}

// Order is an order as seen by the admin dashboard. The list endpoint names
// the status "order_status" while the detail endpoint uses "status"; both
// decode into Status.
type Order struct {
	ID              ID          `json:"id"`
	UserID          ID          `json:"user_id,omitempty"`
	UserName        string      `json:"user_name,omitempty"`
	UserEmail       string      `json:"user_email,omitempty"`
	TotalAmount     float64     `json:"total_amount"`
	PaymentMethod   string      `json:"payment_method,omitempty"`
	Status          OrderStatus `json:"-"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
	CreatedAt       string      `json:"created_at,omitempty"`
	Items           []OrderItem `json:"items,omitempty"`
}

func (o *Order) UnmarshalJSON(data []byte) error {
	type alias Order
	aux := struct {
		*alias
		Status      string `json:"status"`
		OrderStatus string `json:"order_status"`
	}{alias: (*alias)(o)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	status := aux.OrderStatus
	if status == "" {
		status = aux.Status
	}
	if status == "" {
		status = string(OrderPending)
	}
	o.Status = OrderStatus(strings.ToLower(status))
	return nil
}

func (o Order) MarshalJSON() ([]byte, error) {
	type alias Order
	return json.Marshal(struct {
		alias
		Status      OrderStatus `json:"status"`
		OrderStatus OrderStatus `json:"order_status"`
	}{alias: alias(o), Status: o.Status, OrderStatus: o.Status})
}

// Total is the order amount in whole rupees.
func (o Order) Total() int64 {
	return PriceFromFloat(o.TotalAmount)
}

// ItemSummary renders the items as "Title x2, Other x1".
func (o Order) ItemSummary() string {
	parts := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		parts = append(parts, it.ProductTitle+" x"+strconv.Itoa(it.Quantity))
	}
	return strings.Join(parts, ", ")
}
