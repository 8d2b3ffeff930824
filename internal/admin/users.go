package admin

import (
	"context"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/Areeb006/FAJR/internal/domain"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

// MsgNoUserSelected is reported when a user action has no target.
const MsgNoUserSelected = "No user selected"

// UserDetail is what the user modal shows.
type UserDetail struct {
	User      domain.User
	Addresses []domain.Address
	Orders    []domain.Order
}

// UserModal is the user detail modal.
type UserModal struct {
	d *Dashboard

	mu     sync.Mutex
	target domain.ID
}

// NewUserModal returns a user modal controller bound to d.
func (d *Dashboard) NewUserModal() *UserModal {
	return &UserModal{d: d}
}

// Open targets the user and loads their profile, addresses and orders
// concurrently. Addresses and orders that fail to load are shown as empty.
// If the modal was reopened for another user while loading, stale is true
// and the detail must not be shown.
func (m *UserModal) Open(ctx context.Context, id domain.ID) (detail UserDetail, stale bool, err error) {
	m.mu.Lock()
	m.target = id
	m.mu.Unlock()
	ticket := m.d.seq.Begin("admin-user-modal")

	detail = UserDetail{Addresses: []domain.Address{}, Orders: []domain.Order{}}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		u, err := m.d.backend.User(gctx, id)
		if err != nil {
			return err
		}
		detail.User = u
		return nil
	})
	g.Go(func() error {
		addrs, err := m.d.backend.UserAddresses(gctx, id)
		if err != nil {
			m.d.logger.WarnContext(ctx, "failed to load addresses",
				slog.String("user_id", id.String()),
				slog.String("error", err.Error()),
			)
			return nil
		}
		detail.Addresses = addrs
		return nil
	})
	g.Go(func() error {
		orders, err := m.d.backend.UserOrders(gctx, id)
		if err != nil {
			m.d.logger.WarnContext(ctx, "failed to load user orders",
				slog.String("user_id", id.String()),
				slog.String("error", err.Error()),
			)
			return nil
		}
		detail.Orders = orders
		return nil
	})
	if err := g.Wait(); err != nil {
		return UserDetail{}, false, m.d.fail(ctx, "load user", err)
	}

	if !ticket.Current() {
		m.d.logger.DebugContext(ctx, "dropping stale user detail", slog.String("user_id", id.String()))
		return detail, true, nil
	}
	return detail, false, nil
}

// Target returns the user the modal is showing.
func (m *UserModal) Target() domain.ID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.target
}

// Close clears the target.
func (m *UserModal) Close() {
	m.mu.Lock()
	m.target = ""
	m.mu.Unlock()
}

// Delete deletes the targeted user, closes the modal and reloads the list.
func (m *UserModal) Delete(ctx context.Context) error {
	id := m.Target()
	if id == "" {
		return m.d.fail(ctx, "delete user", apperrors.InvalidInput(MsgNoUserSelected))
	}
	if err := m.d.DeleteUser(ctx, id); err != nil {
		return err
	}
	m.Close()
	return nil
}

// DeleteUser deletes a user and reloads the list.
func (d *Dashboard) DeleteUser(ctx context.Context, id domain.ID) error {
	if err := d.backend.DeleteUser(ctx, id); err != nil {
		return d.fail(ctx, "delete user", err)
	}
	d.succeed(ctx, "User deleted successfully")
	reload(ctx, d, d.Users, "users")
	return nil
}
