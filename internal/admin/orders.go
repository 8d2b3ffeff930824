package admin

import (
	"context"
	"log/slog"
	"sync"

	"github.com/Areeb006/FAJR/internal/domain"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

// Order action messages.
const (
	MsgInvalidOrderStatus = "Invalid order status"
	MsgNoOrderSelected    = "No order selected"
)

// OrderModal is the order detail modal.
type OrderModal struct {
	d *Dashboard

	mu     sync.Mutex
	target domain.ID
}

// NewOrderModal returns an order modal controller bound to d.
func (d *Dashboard) NewOrderModal() *OrderModal {
	return &OrderModal{d: d}
}

// Open targets the order and loads it. stale is true when the modal was
// reopened for another order while loading.
func (m *OrderModal) Open(ctx context.Context, id domain.ID) (order domain.Order, stale bool, err error) {
	m.mu.Lock()
	m.target = id
	m.mu.Unlock()
	ticket := m.d.seq.Begin("admin-order-modal")

	order, err = m.d.backend.Order(ctx, id)
	if err != nil {
		return domain.Order{}, false, m.d.fail(ctx, "load order", err)
	}
	if !ticket.Current() {
		m.d.logger.DebugContext(ctx, "dropping stale order detail", slog.String("order_id", id.String()))
		return order, true, nil
	}
	return order, false, nil
}

// Target returns the order the modal is showing.
func (m *OrderModal) Target() domain.ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.target
}

// Close clears the target.
func (m *OrderModal) Close() {
	m.mu.Lock()
	m.target = ""
	m.mu.Unlock()
}

// UpdateStatus changes the targeted order's status.
func (m *OrderModal) UpdateStatus(ctx context.Context, status string) error {
	id := m.Target()
	if id == "" {
		return m.d.fail(ctx, "update order status", apperrors.InvalidInput(MsgNoOrderSelected))
	}
	return m.d.UpdateOrderStatus(ctx, id, status)
}

// Delete deletes the targeted order and closes the modal.
func (m *OrderModal) Delete(ctx context.Context) error {
	id := m.Target()
	if id == "" {
		return m.d.fail(ctx, "delete order", apperrors.InvalidInput(MsgNoOrderSelected))
	}
	if err := m.d.DeleteOrder(ctx, id); err != nil {
		return err
	}
	m.Close()
	return nil
}

// UpdateOrderStatus validates status and sends it. The order list is reloaded
// whether or not the server accepted the change, so the list always shows the
// stored status.
func (d *Dashboard) UpdateOrderStatus(ctx context.Context, id domain.ID, raw string) error {
	status, ok := domain.ParseOrderStatus(raw)
	if !ok {
		return d.fail(ctx, "update order status", apperrors.InvalidInput(MsgInvalidOrderStatus))
	}

	err := d.backend.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		err = d.fail(ctx, "update order status", err)
	} else {
		d.logger.InfoContext(ctx, "order status updated",
			slog.String("order_id", id.String()),
			slog.String("status", string(status)),
		)
		d.succeed(ctx, "Order status updated successfully!")
	}
	reload(ctx, d, d.Orders, "orders")
	return err
}

// DeleteOrder deletes an order and reloads the list.
func (d *Dashboard) DeleteOrder(ctx context.Context, id domain.ID) error {
	if err := d.backend.DeleteOrder(ctx, id); err != nil {
		return d.fail(ctx, "delete order", err)
	}
	d.succeed(ctx, "Order deleted successfully")
	reload(ctx, d, d.Orders, "orders")
	return nil
}
