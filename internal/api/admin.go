package api

import (
	"context"
	"net/http"

	"github.com/Areeb006/FAJR/internal/domain"
)

// Stats fetches the dashboard counters.
func (c *Client) Stats(ctx context.Context) (domain.DashboardStats, error) {
	var out struct {
		Stats domain.DashboardStats `json:"stats"`
	}
	err := c.getJSON(ctx, "/api/admin/stats", "/api/admin/stats", &out)
	return out.Stats, err
}

// Users lists every customer account.
func (c *Client) Users(ctx context.Context) ([]domain.User, error) {
	var out struct {
		Users []domain.User `json:"users"`
	}
	if err := c.getJSON(ctx, "/api/admin/users", "/api/admin/users", &out); err != nil {
		return nil, err
	}
	return nonNil(out.Users), nil
}

// User fetches one account.
func (c *Client) User(ctx context.Context, id domain.ID) (domain.User, error) {
	var out struct {
		User domain.User `json:"user"`
	}
	err := c.getJSON(ctx, "/api/admin/users/{id}", "/api/admin/users/"+escape(id), &out)
	return out.User, err
}

// UserAddresses lists an account's saved addresses.
func (c *Client) UserAddresses(ctx context.Context, id domain.ID) ([]domain.Address, error) {
	var out struct {
		Addresses []domain.Address `json:"addresses"`
	}
	if err := c.getJSON(ctx, "/api/admin/users/{id}/addresses", "/api/admin/users/"+escape(id)+"/addresses", &out); err != nil {
		return nil, err
	}
	return nonNil(out.Addresses), nil
}

// UserOrders lists an account's orders.
func (c *Client) UserOrders(ctx context.Context, id domain.ID) ([]domain.Order, error) {
	var out struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := c.getJSON(ctx, "/api/admin/users/{id}/orders", "/api/admin/users/"+escape(id)+"/orders", &out); err != nil {
		return nil, err
	}
	return nonNil(out.Orders), nil
}

// DeleteUser deletes an account.
func (c *Client) DeleteUser(ctx context.Context, id domain.ID) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		route:  "/api/admin/users/{id}",
		path:   "/api/admin/users/" + escape(id),
	}, nil)
}

// Orders lists every order.
func (c *Client) Orders(ctx context.Context) ([]domain.Order, error) {
	var out struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := c.getJSON(ctx, "/api/admin/orders", "/api/admin/orders", &out); err != nil {
		return nil, err
	}
	return nonNil(out.Orders), nil
}

// Order fetches one order with its items and shipping address.
func (c *Client) Order(ctx context.Context, id domain.ID) (domain.Order, error) {
	var out struct {
		Order domain.Order `json:"order"`
	}
	err := c.getJSON(ctx, "/api/orders/{id}", "/api/orders/"+escape(id), &out)
	return out.Order, err
}

// UpdateOrderStatus changes an order's status.
func (c *Client) UpdateOrderStatus(ctx context.Context, id domain.ID, status domain.OrderStatus) error {
	in := struct {
		Status domain.OrderStatus `json:"status"`
	}{Status: status}
	return c.sendJSON(ctx, http.MethodPut, "/api/admin/orders/{id}/status", "/api/admin/orders/"+escape(id)+"/status", in, nil)
}

// DeleteOrder deletes an order.
func (c *Client) DeleteOrder(ctx context.Context, id domain.ID) error {
	return c.do(ctx, call{
		method: http.MethodDelete,
		route:  "/api/admin/orders/{id}",
		path:   "/api/admin/orders/" + escape(id),
	}, nil)
}
