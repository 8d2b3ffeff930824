package main

import (
	"bytes"
	"context"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Areeb006/FAJR/internal/app"
	"github.com/Areeb006/FAJR/internal/checkout"
	"github.com/Areeb006/FAJR/internal/storefront"
	"github.com/Areeb006/FAJR/pkg/logger"
)

// setupCLI starts a seeded demo API and points the CLI environment at it
// with file storage in a temp dir.
func setupCLI(t *testing.T) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := app.NewDevServer(ln.Addr().String(), logger.Discard())
	app.Seed(srv.Backend())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()
	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("dev server did not stop")
		}
	})

	t.Setenv("STOREFRONT_API_URL", "http://"+ln.Addr().String())
	t.Setenv("STORAGE_BACKEND", "file")
	t.Setenv("STORAGE_PATH", filepath.Join(t.TempDir(), "storage.json"))
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("SEARCH_DEBOUNCE", "10ms")
}

type result struct {
	code   int
	stdout string
	stderr string
}

func runCLI(t *testing.T, stdin string, args ...string) result {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

// ---------------------------------------------------------------------------
// Catalogue
// ---------------------------------------------------------------------------

func TestRun_ProductsListByGender(t *testing.T) {
	setupCLI(t)

	res := runCLI(t, "", "products", "list", "--gender", "her")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Noor")
	assert.Contains(t, res.stdout, "Rose Attar")
	assert.NotContains(t, res.stdout, "Oud Al Layl")
}

func TestRun_ProductsListUnknownGender(t *testing.T) {
	setupCLI(t)

	res := runCLI(t, "", "products", "list", "--gender", "kids")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Unknown filter")
}

func TestRun_ProductsInteractiveSearch(t *testing.T) {
	setupCLI(t)

	res := runCLI(t, "s\nsand\n", "products", "search")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "6 products", "initial render")
	assert.Contains(t, res.stdout, "1 of 6 products", "render after input ends")
}

func TestRun_ProductShowMissing(t *testing.T) {
	setupCLI(t)

	res := runCLI(t, "", "products", "show", "9999")
	assert.Equal(t, 1, res.code)
	assert.NotContains(t, res.stderr, "Error:", "controller failures are shown once, as notifications")
}

// ---------------------------------------------------------------------------
// Cart and checkout
// ---------------------------------------------------------------------------

func TestRun_CartPersistsBetweenRuns(t *testing.T) {
	setupCLI(t)

	res := runCLI(t, "", "products", "add", "101", "--qty", "2")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Oud Al Layl added to cart!")

	res = runCLI(t, "", "cart", "show")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Oud Al Layl")
	assert.Contains(t, res.stdout, "₹4,998")

	res = runCLI(t, "", "cart", "inc", "101")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "₹7,497")

	res = runCLI(t, "", "cart", "remove", "101")
	require.Equal(t, 0, res.code, res.stderr)
	assert.NotContains(t, res.stdout, "Oud Al Layl")
}

func TestRun_CartSetRejectsNonNumber(t *testing.T) {
	setupCLI(t)

	res := runCLI(t, "", "cart", "set", "101", "abc")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error: "+storefront.MsgQuantityNotNumber)
}

func TestRun_CheckoutFlow(t *testing.T) {
	setupCLI(t)

	require.Equal(t, 0, runCLI(t, "", "cart", "add", "101").code)
	require.Equal(t, 0, runCLI(t, "", "cart", "add", "102").code)

	res := runCLI(t, "", "checkout", "selected", "102")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Noor")
	assert.NotContains(t, res.stdout, "Oud Al Layl")

	res = runCLI(t, "", "checkout", "show", "--consume")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Noor")

	res = runCLI(t, "", "checkout", "show")
	require.Equal(t, 0, res.code, res.stderr)
	assert.NotContains(t, res.stdout, "Noor")
}

func TestRun_CheckoutSelectedNeedsIDs(t *testing.T) {
	setupCLI(t)
	require.Equal(t, 0, runCLI(t, "", "cart", "add", "101").code)

	res := runCLI(t, "", "checkout", "selected")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stdout, checkout.MsgSelectAtLeastOne)
	assert.NotContains(t, res.stderr, "Error:")
}

// ---------------------------------------------------------------------------
// Account and admin
// ---------------------------------------------------------------------------

func TestRun_LoginPersistsSession(t *testing.T) {
	setupCLI(t)

	res := runCLI(t, "", "account", "status")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Not signed in.")

	res = runCLI(t, "", "account", "login", app.DemoEmail, "--password", app.DemoPassword)
	require.Equal(t, 0, res.code, res.stderr)

	res = runCLI(t, "", "account", "status")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, app.DemoEmail)

	res = runCLI(t, "", "account", "logout")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, storefront.MsgLoggedOut)
}

func TestRun_AdminOrders(t *testing.T) {
	setupCLI(t)

	res := runCLI(t, "", "admin", "orders", "list", "--status", "shipped")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Demo Customer")
	assert.Contains(t, res.stdout, "1 of 2 orders")

	res = runCLI(t, "", "admin", "orders", "status", "1", "teleported")
	assert.Equal(t, 1, res.code)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "floppy")

	res := runCLI(t, "", "cart", "show")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "Error:")
}

func TestRun_UnknownCommand(t *testing.T) {
	res := runCLI(t, "", "teleport")
	assert.Equal(t, 1, res.code)
	assert.Contains(t, res.stderr, "unknown command")
}
