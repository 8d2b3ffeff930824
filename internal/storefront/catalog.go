package storefront

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Areeb006/FAJR/internal/cart"
	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/listing"
	"github.com/Areeb006/FAJR/internal/notify"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
)

// GenderFilters are the catalogue filter keys, in display order.
var GenderFilters = []string{"all", "him", "her", "unisex"}

// Backend is the part of the API the catalogue uses.
type Backend interface {
	Products(ctx context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id domain.ID) (domain.Product, error)
	RelatedProducts(ctx context.Context, id domain.ID) ([]domain.Product, error)
}

// Catalog is the perfume listing with its search box and gender filter,
// plus the product detail screen that adds to the cart.
type Catalog struct {
	reporter
	backend Backend
	cart    *cart.Store
	seq     *listing.Sequencer
	now     func() time.Time

	Products *listing.Page[domain.Product]
}

// NewCatalog creates the catalogue controller.
func NewCatalog(backend Backend, cartStore *cart.Store, notifier notify.Notifier, cfg listing.PageConfig, logger *slog.Logger) *Catalog {
	if cfg.Sequencer == nil {
		cfg.Sequencer = listing.NewSequencer()
	}
	cfg.Logger = logger
	return &Catalog{
		reporter: reporter{notifier: notifier, logger: logger},
		backend:  backend,
		cart:     cartStore,
		seq:      cfg.Sequencer,
		now:      time.Now,
		Products: listing.NewPage("products", backend.Products, listing.MatchProduct, cfg),
	}
}

// Load fetches the catalogue and applies the current search and filter.
func (c *Catalog) Load(ctx context.Context) (listing.Result[domain.Product], error) {
	res, _, err := c.Products.Load(ctx)
	if err != nil {
		return listing.Result[domain.Product]{}, c.fail(ctx, "load products", err)
	}
	return res, nil
}

// FilterGender switches the gender filter immediately, keeping the search.
func (c *Catalog) FilterGender(key string) (listing.Result[domain.Product], error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		key = "all"
	}
	valid := false
	for _, k := range GenderFilters {
		if k == key {
			valid = true
			break
		}
	}
	if !valid {
		return listing.Result[domain.Product]{}, apperrors.InvalidInput(
			fmt.Sprintf("Unknown filter %q: use one of %s", key, strings.Join(GenderFilters, ", ")))
	}
	q := c.Products.Current().Query
	q.Category = key
	return c.Products.Apply(q), nil
}

// Search updates the search term once typing settles, keeping the filter.
func (c *Catalog) Search(term string) {
	q := c.Products.Current().Query
	q.Search = term
	c.Products.SetQuery(q)
}

// Close drops a pending search.
func (c *Catalog) Close() { c.Products.Close() }

// ProductDetail is a product with the products shown beneath it.
type ProductDetail struct {
	Product domain.Product
	Related []domain.Product
}

// Detail loads a product and its related products concurrently. A failed
// related lookup leaves the list empty. stale reports that a newer Detail
// call started meanwhile.
func (c *Catalog) Detail(ctx context.Context, id domain.ID) (ProductDetail, bool, error) {
	ticket := c.seq.Begin("product-detail")

	var detail ProductDetail
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := c.backend.Product(gctx, id)
		if err != nil {
			return err
		}
		detail.Product = p
		return nil
	})
	g.Go(func() error {
		related, err := c.backend.RelatedProducts(gctx, id)
		if err != nil {
			c.logger.WarnContext(ctx, "related products unavailable",
				slog.String("product_id", id.String()),
				slog.String("error", err.Error()),
			)
			related = []domain.Product{}
		}
		detail.Related = related
		return nil
	})
	if err := g.Wait(); err != nil {
		return ProductDetail{}, false, c.fail(ctx, "load product", err)
	}

	if !ticket.Current() {
		c.logger.DebugContext(ctx, "dropping stale product detail",
			slog.String("product_id", id.String()),
			slog.Uint64("ticket", ticket.ID()),
		)
		return ProductDetail{}, true, nil
	}
	return detail, false, nil
}

// AddToCart fetches the product and adds quantity units of it with a fresh
// image reference.
func (c *Catalog) AddToCart(ctx context.Context, id domain.ID, quantity int) (domain.Product, error) {
	p, err := c.backend.Product(ctx, id)
	if err != nil {
		return domain.Product{}, c.fail(ctx, "add to cart", err)
	}

	item := p.LineItem(quantity)
	err = c.cart.AddItem(ctx, cart.AddItemInput{
		ProductID: item.ProductID,
		Title:     item.Title,
		UnitPrice: item.UnitPrice,
		ImageRef:  CacheBust(p.ImageURL, c.now()),
		Quantity:  item.Quantity,
	})
	if err != nil {
		return domain.Product{}, c.fail(ctx, "add to cart", err)
	}
	c.succeed(ctx, p.Title+" added to cart!")
	return p, nil
}

// CacheBust appends a t=<unix-ms> parameter so a replaced image is fetched
// again. Empty references stay empty.
func CacheBust(ref string, at time.Time) string {
	if ref == "" {
		return ref
	}
	sep := "?"
	if strings.Contains(ref, "?") {
		sep = "&"
	}
	return ref + sep + "t=" + strconv.FormatInt(at.UnixMilli(), 10)
}
