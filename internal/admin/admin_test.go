package admin

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Areeb006/FAJR/internal/api"
	"github.com/Areeb006/FAJR/internal/api/apitest"
	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/listing"
	"github.com/Areeb006/FAJR/internal/notify"
	"github.com/Areeb006/FAJR/internal/storage/memory"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
	"github.com/Areeb006/FAJR/pkg/httpclient"
	"github.com/Areeb006/FAJR/pkg/logger"
)

type fixture struct {
	dash   *Dashboard
	srv    *apitest.Server
	client *api.Client
	notes  *notify.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := apitest.NewServer(logger.Discard())
	t.Cleanup(srv.Close)

	sess, err := api.NewSession(context.Background(), memory.New(), srv.URL)
	require.NoError(t, err)
	cfg := httpclient.DefaultConfig()
	cfg.Jar = sess.Jar()
	client := api.New(srv.URL, httpclient.New(cfg), sess, logger.Discard())

	notes := &notify.Recorder{}
	dash := NewDashboard(client, notes, listing.PageConfig{Debounce: 10 * time.Millisecond}, logger.Discard())
	t.Cleanup(dash.Close)
	return &fixture{dash: dash, srv: srv, client: client, notes: notes}
}

func (f *fixture) lastNote(t *testing.T) notify.Entry {
	t.Helper()
	e, ok := f.notes.Last()
	require.True(t, ok, "expected a notification")
	return e
}

func validForm() api.ProductForm {
	return api.ProductForm{Title: "Amber", Gender: "unisex", Price: 1499, Description: "Warm and resinous"}
}

// ============================================================================
// Image validation
// ============================================================================

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name string
		img  api.ImageFile
		want string
	}{
		{"ok png", api.ImageFile{Name: "a.PNG", Content: []byte("x")}, ""},
		{"ok webp", api.ImageFile{Name: "a.webp", Content: []byte("x")}, ""},
		{"empty", api.ImageFile{Name: "a.png"}, MsgImageEmpty},
		{"too large", api.ImageFile{Name: "a.jpg", Content: make([]byte, MaxImageBytes+1)}, MsgImageTooLarge},
		{"exactly max", api.ImageFile{Name: "a.jpg", Content: make([]byte, MaxImageBytes)}, ""},
		{"bad extension", api.ImageFile{Name: "a.bmp", Content: []byte("x")}, MsgImageFormat},
		{"no extension", api.ImageFile{Name: "image", Content: []byte("x")}, MsgImageFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.img)
			if tt.want == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, tt.want, apperrors.UserMessage(err))
		})
	}
}

// ============================================================================
// Product editor
// ============================================================================

func TestProductEditor_CreateReloadsList(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, _, err := f.dash.Products.Load(ctx)
	require.NoError(t, err)

	ed := f.dash.NewProductEditor()
	ed.OpenCreate()
	id, err := ed.Save(ctx, validForm(), &api.ImageFile{Name: "amber.jpg", Content: []byte("jpg")})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	assert.Equal(t, "Product added successfully!", f.lastNote(t).Message)
	assert.Len(t, f.dash.Products.Items(), 1)
	assert.Empty(t, ed.Target())
}

func TestProductEditor_EditUpdatesAndUploadsSeparately(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedProducts(domain.Product{ID: "5", Title: "Old", Gender: "men", Price: 900, Description: "d"})
	ctx := context.Background()

	ed := f.dash.NewProductEditor()
	form, err := ed.OpenEdit(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "Old", form.Title)
	assert.Equal(t, domain.ID("5"), ed.Target())

	form.Title = "New"
	id, err := ed.Save(ctx, form, &api.ImageFile{Name: "new.png", Content: []byte("png")})
	require.NoError(t, err)
	assert.Equal(t, domain.ID("5"), id)

	stored, ok := f.srv.Product("5")
	require.True(t, ok)
	assert.Equal(t, "New", stored.Title)
	assert.Equal(t, 1, f.srv.CallCount(http.MethodPut, "/api/admin/products/{id}"))
	assert.Equal(t, 1, f.srv.CallCount(http.MethodPost, "/api/admin/upload-product-image/{id}"))
	assert.Equal(t, "Product updated successfully!", f.lastNote(t).Message)
}

func TestProductEditor_ValidationHappensBeforeAnyRequest(t *testing.T) {
	f := newFixture(t)
	ed := f.dash.NewProductEditor()

	form := validForm()
	form.Price = 0
	_, err := ed.Save(context.Background(), form, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, apperrors.UserMessage(err), "price")

	_, err = ed.Save(context.Background(), validForm(), &api.ImageFile{Name: "x.tiff", Content: []byte("x")})
	require.Error(t, err)
	assert.Equal(t, MsgImageFormat, apperrors.UserMessage(err))

	assert.Empty(t, f.srv.Calls())
	assert.Equal(t, notify.LevelError, f.lastNote(t).Level)
}

func TestProductEditor_ServerRejection(t *testing.T) {
	f := newFixture(t)
	f.srv.FailNext(http.MethodPost, "/api/admin/products", http.StatusBadRequest, "Duplicate title")

	_, err := f.dash.NewProductEditor().Save(context.Background(), validForm(), nil)
	require.Error(t, err)
	assert.Equal(t, "Duplicate title", f.lastNote(t).Message)
	assert.Equal(t, 0, f.srv.CallCount(http.MethodGet, "/api/products"))
}

func TestDashboard_DeleteProductAndUploadImage(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedProducts(
		domain.Product{ID: "1", Title: "A", Gender: "men", Price: 1},
		domain.Product{ID: "2", Title: "B", Gender: "women", Price: 1},
	)
	ctx := context.Background()

	url, err := f.dash.UploadImage(ctx, "1", api.ImageFile{Name: "a.gif", Content: []byte("gif")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "/api/product-image/1"))

	_, err = f.dash.UploadImage(ctx, "1", api.ImageFile{Name: "a.gif", Content: make([]byte, MaxImageBytes+1)})
	assert.Equal(t, MsgImageTooLarge, apperrors.UserMessage(err))

	require.NoError(t, f.dash.DeleteProduct(ctx, "2"))
	items := f.dash.Products.Items()
	require.Len(t, items, 1)
	assert.Equal(t, domain.ID("1"), items[0].ID)
}

// ============================================================================
// Dashboard and lists
// ============================================================================

func TestDashboard_StatsAndFailure(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedProducts(domain.Product{Title: "A", Price: 10})
	ctx := context.Background()

	stats, err := f.dash.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalProducts)

	f.srv.FailNext(http.MethodGet, "/api/admin/stats", http.StatusForbidden, "Admin access required")
	_, err = f.dash.Stats(ctx)
	require.Error(t, err)
	assert.Equal(t, "Admin access required", f.lastNote(t).Message)
}

func TestDashboard_OrderListFiltersByStatus(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedOrders(
		domain.Order{ID: "1", UserName: "Sara", Status: domain.OrderShipped},
		domain.Order{ID: "2", UserName: "Ravi", Status: domain.OrderPending},
	)
	_, _, err := f.dash.Orders.Load(context.Background())
	require.NoError(t, err)

	res := f.dash.Orders.Apply(listing.Query{Category: "shipped"})
	require.Len(t, res.Items, 1)
	assert.Equal(t, domain.ID("1"), res.Items[0].ID)
}

// ============================================================================
// User modal
// ============================================================================

func TestUserModal_OpenLoadsEverything(t *testing.T) {
	f := newFixture(t)
	uid := f.srv.SeedUser(domain.User{FirstName: "Sara", LastName: "Khan", Email: "s@example.com"}, "pw")
	f.srv.SeedAddresses(uid, domain.Address{Name: "Sara", City: "Pune"})
	f.srv.SeedOrders(domain.Order{UserID: uid, TotalAmount: 100})

	m := f.dash.NewUserModal()
	detail, stale, err := m.Open(context.Background(), uid)
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, "Sara Khan", detail.User.FullName())
	assert.Len(t, detail.Addresses, 1)
	assert.Len(t, detail.Orders, 1)
	assert.Equal(t, uid, m.Target())
}

func TestUserModal_AddressFailureDegradesToEmpty(t *testing.T) {
	f := newFixture(t)
	uid := f.srv.SeedUser(domain.User{FirstName: "Sara"}, "pw")
	f.srv.FailNext(http.MethodGet, "/api/admin/users/{id}/addresses", http.StatusInternalServerError, "boom")

	detail, _, err := f.dash.NewUserModal().Open(context.Background(), uid)
	require.NoError(t, err)
	assert.Empty(t, detail.Addresses)
	assert.NotNil(t, detail.Addresses)
}

func TestUserModal_MissingUserFails(t *testing.T) {
	f := newFixture(t)
	_, _, err := f.dash.NewUserModal().Open(context.Background(), "404")
	require.Error(t, err)
	assert.Equal(t, "User not found", f.lastNote(t).Message)
}

// slowUsers delays User lookups for one id until released.
type slowUsers struct {
	Backend
	slowID  domain.ID
	started chan struct{}
	release chan struct{}
}

func (s *slowUsers) User(ctx context.Context, id domain.ID) (domain.User, error) {
	if id == s.slowID {
		close(s.started)
		<-s.release
	}
	return s.Backend.User(ctx, id)
}

func TestUserModal_StaleResponseIsFlagged(t *testing.T) {
	f := newFixture(t)
	first := f.srv.SeedUser(domain.User{FirstName: "First"}, "pw")
	second := f.srv.SeedUser(domain.User{FirstName: "Second"}, "pw")

	backend := &slowUsers{Backend: f.client, slowID: first, started: make(chan struct{}), release: make(chan struct{})}
	dash := NewDashboard(backend, f.notes, listing.PageConfig{}, logger.Discard())
	defer dash.Close()
	m := dash.NewUserModal()

	type result struct {
		stale bool
		err   error
	}
	done := make(chan result, 1)
	go func() {
		_, stale, err := m.Open(context.Background(), first)
		done <- result{stale, err}
	}()
	<-backend.started

	detail, stale, err := m.Open(context.Background(), second)
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, "Second", detail.User.FirstName)

	close(backend.release)
	r := <-done
	require.NoError(t, r.err)
	assert.True(t, r.stale)
	assert.Equal(t, second, m.Target())
}

func TestUserModal_Delete(t *testing.T) {
	f := newFixture(t)
	uid := f.srv.SeedUser(domain.User{FirstName: "Sara"}, "pw")
	ctx := context.Background()
	m := f.dash.NewUserModal()

	err := m.Delete(ctx)
	assert.Equal(t, MsgNoUserSelected, apperrors.UserMessage(err))

	_, _, err = m.Open(ctx, uid)
	require.NoError(t, err)
	require.NoError(t, m.Delete(ctx))

	_, ok := f.srv.User(uid)
	assert.False(t, ok)
	assert.Empty(t, m.Target())
	assert.True(t, f.dash.Users.Loaded())
	assert.Empty(t, f.dash.Users.Items())
}

// ============================================================================
// Order modal
// ============================================================================

func TestOrderModal_UpdateStatus(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedOrders(domain.Order{ID: "9", TotalAmount: 500})
	ctx := context.Background()
	m := f.dash.NewOrderModal()

	order, stale, err := m.Open(ctx, "9")
	require.NoError(t, err)
	require.False(t, stale)
	assert.Equal(t, domain.OrderPending, order.Status)

	require.NoError(t, m.UpdateStatus(ctx, "Out for delivery"))
	stored, _ := f.srv.Order("9")
	assert.Equal(t, domain.OrderOutForDelivery, stored.Status)
	assert.Equal(t, "Order status updated successfully!", f.lastNote(t).Message)

	items := f.dash.Orders.Items()
	require.Len(t, items, 1)
	assert.Equal(t, domain.OrderOutForDelivery, items[0].Status)
}

func TestOrderModal_InvalidStatusNeverReachesServer(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedOrders(domain.Order{ID: "9"})
	m := f.dash.NewOrderModal()
	_, _, err := m.Open(context.Background(), "9")
	require.NoError(t, err)

	err = m.UpdateStatus(context.Background(), "lost in transit")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, 0, f.srv.CallCount(http.MethodPut, "/api/admin/orders/{id}/status"))
}

func TestOrderModal_RejectedUpdateStillReloads(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedOrders(domain.Order{ID: "9"})
	f.srv.FailNext(http.MethodPut, "/api/admin/orders/{id}/status", http.StatusBadRequest, "Order is locked")

	err := f.dash.UpdateOrderStatus(context.Background(), "9", "shipped")
	require.Error(t, err)
	assert.Equal(t, "Order is locked", f.lastNote(t).Message)
	assert.Equal(t, 1, f.srv.CallCount(http.MethodGet, "/api/admin/orders"))
}

func TestOrderModal_Delete(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedOrders(domain.Order{ID: "9"})
	ctx := context.Background()
	m := f.dash.NewOrderModal()

	_, _, err := m.Open(ctx, "9")
	require.NoError(t, err)
	require.NoError(t, m.Delete(ctx))

	_, ok := f.srv.Order("9")
	assert.False(t, ok)
	assert.Empty(t, m.Target())
	assert.Error(t, m.Delete(ctx))
}
