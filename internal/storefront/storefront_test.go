package storefront

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Areeb006/FAJR/internal/api"
	"github.com/Areeb006/FAJR/internal/api/apitest"
	"github.com/Areeb006/FAJR/internal/cart"
	"github.com/Areeb006/FAJR/internal/checkout"
	"github.com/Areeb006/FAJR/internal/domain"
	"github.com/Areeb006/FAJR/internal/listing"
	"github.com/Areeb006/FAJR/internal/notify"
	"github.com/Areeb006/FAJR/internal/pricing"
	"github.com/Areeb006/FAJR/internal/storage"
	"github.com/Areeb006/FAJR/internal/storage/file"
	"github.com/Areeb006/FAJR/internal/storage/memory"
	apperrors "github.com/Areeb006/FAJR/pkg/errors"
	"github.com/Areeb006/FAJR/pkg/httpclient"
	"github.com/Areeb006/FAJR/pkg/logger"
)

type fixture struct {
	srv     *apitest.Server
	store   *memory.Store
	cart    *cart.Store
	page    *CartPage
	catalog *Catalog
	account *Account
	notes   *notify.Recorder
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	srv := apitest.NewServer(logger.Discard())
	t.Cleanup(srv.Close)

	store := memory.New()
	sess, err := api.NewSession(context.Background(), store, srv.URL)
	require.NoError(t, err)
	cfg := httpclient.DefaultConfig()
	cfg.Jar = sess.Jar()
	client := api.New(srv.URL, httpclient.New(cfg), sess, logger.Discard())

	notes := &notify.Recorder{}
	cartStore := cart.NewStore(store, logger.Discard())
	svc := checkout.NewService(cartStore, store, domain.DefaultCurrencySymbol, logger.Discard())

	catalog := NewCatalog(client, cartStore, notes, listing.PageConfig{Debounce: 10 * time.Millisecond}, logger.Discard())
	catalog.now = func() time.Time { return time.UnixMilli(1700000000000) }
	t.Cleanup(catalog.Close)

	return &fixture{
		srv:     srv,
		store:   store,
		cart:    cartStore,
		page:    NewCartPage(cartStore, svc, pricing.NewCalculator(nil), notes, logger.Discard()),
		catalog: catalog,
		account: NewAccount(client, notes, logger.Discard()),
		notes:   notes,
	}
}

func (f *fixture) lastNote(t *testing.T) notify.Entry {
	t.Helper()
	e, ok := f.notes.Last()
	require.True(t, ok, "expected a notification")
	return e
}

func (f *fixture) fill(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	require.NoError(t, f.cart.AddItem(ctx, cart.AddItemInput{ProductID: "1", Title: "Rose", UnitPrice: 1000, Quantity: 2}))
	require.NoError(t, f.cart.AddItem(ctx, cart.AddItemInput{ProductID: "2", Title: "Oud", UnitPrice: 2500, Quantity: 1}))
}

// ============================================================================
// Cart page
// ============================================================================

func TestCartPage_AllModeTotals(t *testing.T) {
	f := newFixture(t)
	f.fill(t)

	v, err := f.page.View(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAll, v.Mode.Mode)
	assert.Len(t, v.Items, 2)
	assert.Empty(t, v.Checked)
	assert.Equal(t, int64(4500), v.Summary.Subtotal)
	assert.Equal(t, int64(0), v.Summary.Tax)
	assert.Equal(t, int64(4500), v.Summary.Total)
	assert.Equal(t, 3, v.Summary.ItemCount)
}

func TestCartPage_MutationsRecomputeTotals(t *testing.T) {
	f := newFixture(t)
	f.fill(t)
	ctx := context.Background()

	v, err := f.page.Increment(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, int64(7000), v.Summary.Total)

	v, err = f.page.Decrement(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(6000), v.Summary.Total)

	v, err = f.page.Decrement(ctx, "1")
	require.NoError(t, err)
	require.Len(t, v.Items, 2, "decrement never removes a line")
	assert.Equal(t, 1, v.Items[0].Quantity)

	v, err = f.page.SetQuantity(ctx, "1", 99)
	require.NoError(t, err)
	assert.Equal(t, domain.MaxQuantity, v.Items[0].Quantity)

	v, err = f.page.Remove(ctx, "1")
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	assert.Equal(t, int64(5000), v.Summary.Total)
}

func TestCartPage_UnknownLineNotifies(t *testing.T) {
	f := newFixture(t)
	f.fill(t)

	_, err := f.page.Increment(context.Background(), "nope")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, notify.LevelError, f.lastNote(t).Level)
}

func TestCartPage_ShopSelectedRequiresATick(t *testing.T) {
	f := newFixture(t)
	f.fill(t)
	ctx := context.Background()

	_, err := f.page.ShopSelected(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, checkout.MsgSelectAtLeastOne, f.lastNote(t).Message)

	_, ok, err := f.store.Get(ctx, storage.KeyCheckoutItems)
	require.NoError(t, err)
	assert.False(t, ok, "nothing staged after a failed selection")
}

func TestCartPage_ShopSelectedFollowsTicks(t *testing.T) {
	f := newFixture(t)
	f.fill(t)
	ctx := context.Background()

	f.page.Check("2", "1")
	f.page.Uncheck("1")
	assert.Equal(t, []string{"2"}, f.page.CheckedIDs())

	items, err := f.page.ShopSelected(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "2", items[0].ProductID)

	v, err := f.page.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeSelected, v.Mode.Mode)
	assert.Equal(t, int64(2500), v.Summary.Total)

	f.page.Uncheck("2")
	v, err = f.page.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Summary.Lines)
	assert.Equal(t, int64(0), v.Summary.Total)
}

func TestCartPage_ShopNowAndShopAll(t *testing.T) {
	f := newFixture(t)
	f.fill(t)
	ctx := context.Background()

	items, err := f.page.ShopNow(ctx, "1")
	require.NoError(t, err)
	require.Len(t, items, 1)

	v, err := f.page.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeState{Mode: domain.ModeSingle, TargetID: "1"}, v.Mode)
	assert.Equal(t, int64(2000), v.Summary.Total)

	items, err = f.page.ShopAll(ctx)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	v, err = f.page.View(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAll, v.Mode.Mode)
	assert.Equal(t, int64(4500), v.Summary.Total)
}

func TestCartPage_RemoveForgetsTick(t *testing.T) {
	f := newFixture(t)
	f.fill(t)
	ctx := context.Background()

	f.page.Check("1", "2")
	_, err := f.page.Remove(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2"}, f.page.CheckedIDs())

	require.NoError(t, f.cart.RemoveItem(ctx, "2"))
	v, err := f.page.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Items)
	assert.Empty(t, f.page.CheckedIDs())
}

func TestCartPage_CorruptStorageIsEmptyCart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "storage.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))
	backing, err := file.New(path)
	require.NoError(t, err)

	cartStore := cart.NewStore(backing, logger.Discard())
	svc := checkout.NewService(cartStore, backing, domain.DefaultCurrencySymbol, logger.Discard())
	page := NewCartPage(cartStore, svc, pricing.NewCalculator(nil), &notify.Recorder{}, logger.Discard())
	ctx := context.Background()

	v, err := page.View(ctx)
	require.NoError(t, err)
	assert.Empty(t, v.Items)
	assert.Equal(t, domain.ModeAll, v.Mode.Mode)
	assert.Equal(t, int64(0), v.Summary.Total)

	require.NoError(t, cartStore.AddItem(ctx, cart.AddItemInput{ProductID: "1", Title: "Rose", UnitPrice: 1000, Quantity: 1}))
	v, err = page.Increment(ctx, "1")
	require.NoError(t, err)
	require.Len(t, v.Items, 1)
	assert.Equal(t, 2, v.Items[0].Quantity)
}

func TestParseQuantity(t *testing.T) {
	n, err := ParseQuantity(" 7 ")
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	n, err = ParseQuantity("-3")
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	_, err = ParseQuantity("two")
	require.Error(t, err)
	assert.Equal(t, MsgQuantityNotNumber, apperrors.UserMessage(err))
}

// ============================================================================
// Catalog
// ============================================================================

func seedCatalog(f *fixture) {
	f.srv.SeedProducts(
		domain.Product{ID: "1", Title: "Rose Noir", Gender: "Women", Price: 1299},
		domain.Product{ID: "2", Title: "Oud Wood", Gender: "for him", Price: 2499},
		domain.Product{ID: "3", Title: "Citrus", Gender: "", Price: 899},
		domain.Product{ID: "4", Title: "Rose Musk", Gender: "female", Price: 1599},
	)
}

func TestCatalog_GenderFilterKeepsSearch(t *testing.T) {
	f := newFixture(t)
	seedCatalog(f)
	ctx := context.Background()

	res, err := f.catalog.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, res.Items, 4)

	res, err = f.catalog.FilterGender("her")
	require.NoError(t, err)
	assert.Len(t, res.Items, 2)

	f.catalog.Search("musk")
	f.catalog.Products.Flush()
	res = f.catalog.Products.Current()
	require.Len(t, res.Items, 1)
	assert.Equal(t, "Rose Musk", res.Items[0].Title)

	res, err = f.catalog.FilterGender("unisex")
	require.NoError(t, err)
	assert.True(t, res.Empty())
	assert.Equal(t, "musk", res.Query.Search)

	res, err = f.catalog.FilterGender("ALL")
	require.NoError(t, err)
	assert.Len(t, res.Items, 1)
	assert.Equal(t, 1, f.srv.CallCount(http.MethodGet, "/api/products"), "filtering never refetches")
}

func TestCatalog_UnknownFilterRejected(t *testing.T) {
	f := newFixture(t)
	_, err := f.catalog.FilterGender("kids")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestCatalog_LoadFailureNotifies(t *testing.T) {
	f := newFixture(t)
	f.srv.FailNext(http.MethodGet, "/api/products", http.StatusInternalServerError, "Database unavailable")

	_, err := f.catalog.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, notify.LevelError, f.lastNote(t).Level)
	assert.False(t, f.catalog.Products.Loaded())
}

// ============================================================================
// Product detail
// ============================================================================

func TestCatalog_DetailWithRelated(t *testing.T) {
	f := newFixture(t)
	seedCatalog(f)

	d, stale, err := f.catalog.Detail(context.Background(), "1")
	require.NoError(t, err)
	assert.False(t, stale)
	assert.Equal(t, "Rose Noir", d.Product.Title)
	require.Len(t, d.Related, 1)
	assert.Equal(t, domain.ID("4"), d.Related[0].ID)
}

func TestCatalog_DetailRelatedFailureDegrades(t *testing.T) {
	f := newFixture(t)
	seedCatalog(f)
	f.srv.FailNext(http.MethodGet, "/api/products/{id}/related", http.StatusBadRequest, "nope")

	d, _, err := f.catalog.Detail(context.Background(), "2")
	require.NoError(t, err)
	assert.Equal(t, "Oud Wood", d.Product.Title)
	assert.Empty(t, d.Related)
	assert.NotNil(t, d.Related)
}

func TestCatalog_DetailMissingProduct(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.catalog.Detail(context.Background(), "404")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Equal(t, "Product not found", f.lastNote(t).Message)
}

func TestCatalog_AddToCart(t *testing.T) {
	f := newFixture(t)
	seedCatalog(f)
	ctx := context.Background()

	p, err := f.catalog.AddToCart(ctx, "2", 3)
	require.NoError(t, err)
	assert.Equal(t, "Oud Wood", p.Title)
	assert.Equal(t, notify.Entry{Level: notify.LevelSuccess, Message: "Oud Wood added to cart!"}, f.lastNote(t))

	f.catalog.now = func() time.Time { return time.UnixMilli(1700000009999) }
	_, err = f.catalog.AddToCart(ctx, "2", 9)
	require.NoError(t, err)

	items, err := f.cart.Items(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, domain.MaxQuantity, items[0].Quantity)
	assert.Equal(t, int64(2499), items[0].UnitPrice)
	assert.Equal(t, "/api/product-image/2?t=1700000009999", items[0].ImageRef)
}

func TestCatalog_AddToCartUnknownProductLeavesCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.AddToCart(context.Background(), "9", 1)
	require.Error(t, err)
	items, err := f.cart.Items(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCacheBust(t *testing.T) {
	at := time.UnixMilli(42)
	assert.Equal(t, "", CacheBust("", at))
	assert.Equal(t, "a.png?t=42", CacheBust("a.png", at))
	assert.Equal(t, "a.png?v=1&t=42", CacheBust("a.png?v=1", at))
}

// ============================================================================
// Account
// ============================================================================

func TestAccount_LoginByEmailOrPhone(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedUser(domain.User{FirstName: "Asha", LastName: "Rao", Email: "asha@example.com", Phone: "9876543210"}, "pw")
	ctx := context.Background()

	u, err := f.account.Login(ctx, " asha@example.com ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", u.Email)
	assert.Equal(t, "Login successful!", f.lastNote(t).Message)

	_, err = f.account.Login(ctx, "9876543210", "pw")
	require.NoError(t, err)

	status, err := f.account.Status(ctx)
	require.NoError(t, err)
	assert.True(t, status.Authenticated)

	_, err = f.account.Login(ctx, "9876543210", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", f.lastNote(t).Message)
}

func TestAccount_LoginIncompleteSendsNothing(t *testing.T) {
	f := newFixture(t)

	_, err := f.account.Login(context.Background(), "  ", "pw")
	require.Error(t, err)
	assert.Equal(t, MsgLoginIncomplete, apperrors.UserMessage(err))

	_, err = f.account.Login(context.Background(), "a@b.c", "")
	require.Error(t, err)
	assert.Empty(t, f.srv.Calls())
}

func validRegistration() Registration {
	return Registration{
		FirstName: "Asha", LastName: "Rao", Email: "asha@example.com",
		Phone: "9876543210", Password: "pw", ConfirmPassword: "pw",
	}
}

func TestAccount_RegisterValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Registration)
		want   string
	}{
		{"missing phone", func(r *Registration) { r.Phone = "" }, MsgRegisterIncomplete},
		{"missing confirm", func(r *Registration) { r.ConfirmPassword = "" }, MsgRegisterIncomplete},
		{"mismatch", func(r *Registration) { r.ConfirmPassword = "other" }, MsgPasswordMismatch},
		{"bad email", func(r *Registration) { r.Email = "asha" }, "email must be a valid email address"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			form := validRegistration()
			tt.mutate(&form)

			_, err := f.account.Register(context.Background(), form)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			assert.Equal(t, tt.want, apperrors.UserMessage(err))
			assert.Empty(t, f.srv.Calls())
		})
	}
}

func TestAccount_RegisterThenProfile(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u, err := f.account.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, "Registration successful!", f.lastNote(t).Message)

	profile, err := f.account.Profile(ctx)
	require.NoError(t, err)
	assert.Equal(t, u.ID, profile.ID)
	assert.Equal(t, "9876543210", profile.Phone)

	_, err = f.account.Register(ctx, validRegistration())
	require.Error(t, err)
	assert.Equal(t, "Email address is already registered", f.lastNote(t).Message)
}

func TestAccount_UpdateProfileKeepsUnchangedFields(t *testing.T) {
	f := newFixture(t)
	id := f.srv.SeedUser(domain.User{FirstName: "Asha", LastName: "Rao", Email: "a@x.io", Phone: "1", Gender: "female"}, "pw")
	ctx := context.Background()
	_, err := f.account.Login(ctx, "a@x.io", "pw")
	require.NoError(t, err)

	require.NoError(t, f.account.UpdateProfile(ctx, ProfileChanges{LastName: "Iyer", DateOfBirth: "1990-04-01"}))
	assert.Equal(t, "Profile updated successfully", f.lastNote(t).Message)

	stored, ok := f.srv.User(id)
	require.True(t, ok)
	assert.Equal(t, "Asha", stored.FirstName)
	assert.Equal(t, "Iyer", stored.LastName)
	assert.Equal(t, "female", stored.Gender)
	assert.Equal(t, "1990-04-01", stored.DateOfBirth)
}

func TestAccount_PasswordChange(t *testing.T) {
	f := newFixture(t)
	f.srv.SeedUser(domain.User{FirstName: "Asha", Email: "a@x.io"}, "old")
	ctx := context.Background()
	_, err := f.account.Login(ctx, "a@x.io", "old")
	require.NoError(t, err)
	calls := len(f.srv.Calls())

	err = f.account.UpdateProfile(ctx, ProfileChanges{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "nwe"})
	assert.Equal(t, MsgNewPasswordMismatch, apperrors.UserMessage(err))
	err = f.account.UpdateProfile(ctx, ProfileChanges{NewPassword: "new", ConfirmPassword: "new"})
	assert.Equal(t, MsgCurrentPasswordRequired, apperrors.UserMessage(err))
	err = f.account.UpdateProfile(ctx, ProfileChanges{DateOfBirth: "01/04/1990"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Len(t, f.srv.Calls(), calls, "validation happens before any request")

	err = f.account.UpdateProfile(ctx, ProfileChanges{CurrentPassword: "bad", NewPassword: "new", ConfirmPassword: "new"})
	require.Error(t, err)
	assert.Equal(t, "Current password is incorrect", apperrors.UserMessage(err))

	require.NoError(t, f.account.UpdateProfile(ctx, ProfileChanges{CurrentPassword: "old", NewPassword: "new", ConfirmPassword: "new"}))
	require.NoError(t, f.account.Logout(ctx))
	assert.Equal(t, MsgLoggedOut, f.lastNote(t).Message)

	_, err = f.account.Login(ctx, "a@x.io", "new")
	require.NoError(t, err)
}

func TestAccount_StatusSignedOut(t *testing.T) {
	f := newFixture(t)

	status, err := f.account.Status(context.Background())
	require.NoError(t, err)
	assert.False(t, status.Authenticated)
	assert.Nil(t, status.User)
}
