// Package admin holds the controllers behind the admin dashboard: the three
// list screens, the statistics panel and the product, user and order modals.
// Each modal keeps its own target id; nothing is process-wide.
package admin

import (
	"context"
	"log/slog"

	"github.com/Areeb006/FAJR/internal/api"
	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/listing"
	"github.com/Areeb006/FAJR/internal/notify"
)

// Backend is the part of the API the admin screens use.
type Backend interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id domain.ID) (domain.Product, error)
	CreateProduct(ctx context.Context, form api.ProductForm, img *api.ImageFile) (domain.ID, error)
	UpdateProduct(ctx context.Context, id domain.ID, form api.ProductForm) error
	DeleteProduct(ctx context.Context, id domain.ID) error
	UploadProductImage(ctx context.Context, id domain.ID, img api.ImageFile) (string, error)

	Stats(ctx context.Context) (domain.DashboardStats, error)

	Users(ctx context.Context) ([]domain.User, error)
	User(ctx context.Context, id domain.ID) (domain.User, error)
	UserAddresses(ctx context.Context, id domain.ID) ([]domain.Address, error)
	UserOrders(ctx context.Context, id domain.ID) ([]domain.Order, error)
	DeleteUser(ctx context.Context, id domain.ID) error

	Orders(ctx context.Context) ([]domain.Order, error)
	Order(ctx context.Context, id domain.ID) (domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id domain.ID, status domain.OrderStatus) error
	DeleteOrder(ctx context.Context, id domain.ID) error
}

// Dashboard owns the admin list pages and hands out modal controllers bound
// to them.
type Dashboard struct {
	backend  Backend
	notifier notify.Notifier
	logger   *slog.Logger
	seq      *listing.Sequencer

	Products *listing.Page[domain.Product]
	Users    *listing.Page[domain.User]
	Orders   *listing.Page[domain.Order]
}

// NewDashboard creates the admin controllers. All pages and modals share one
// request sequencer.
func NewDashboard(backend Backend, notifier notify.Notifier, cfg listing.PageConfig, logger *slog.Logger) *Dashboard {
	if cfg.Sequencer == nil {
		cfg.Sequencer = listing.NewSequencer()
	}
	cfg.Logger = logger
	return &Dashboard{
		backend:  backend,
		notifier: notifier,
		logger:   logger,
		seq:      cfg.Sequencer,
		Products: listing.NewPage("admin-products", backend.Products, listing.MatchProduct, cfg),
		Users:    listing.NewPage("admin-users", backend.Users, listing.MatchUser, cfg),
		Orders:   listing.NewPage("admin-orders", backend.Orders, listing.MatchOrder, cfg),
	}
}

// Stats loads the statistics panel.
func (d *Dashboard) Stats(ctx context.Context) (domain.DashboardStats, error) {
	stats, err := d.backend.Stats(ctx)
	if err != nil {
		return domain.DashboardStats{}, d.fail(ctx, "load dashboard", err)
	}
	return stats, nil
}

// Close stops pending debounced searches on every page.
func (d *Dashboard) Close() {
	d.Products.Close()
	d.Users.Close()
	d.Orders.Close()
}

// fail notifies the user and logs err, then returns it.
func (d *Dashboard) fail(ctx context.Context, action string, err error) error {
	d.logger.WarnContext(ctx, "admin action failed",
		slog.String("action", action),
		slog.String("error", err.Error()),
	)
	notify.Error(ctx, d.notifier, err)
	return err
}

func (d *Dashboard) succeed(ctx context.Context, msg string) {
	d.notifier.Notify(ctx, notify.LevelSuccess, msg)
}

// reload refreshes a page after a change. A failed reload is reported but
// does not undo the change that triggered it.
func reload[T any](ctx context.Context, d *Dashboard, page *listing.Page[T], what string) {
	if _, _, err := page.Load(ctx); err != nil {
		_ = d.fail(ctx, "reload "+what, err)
	}
}
