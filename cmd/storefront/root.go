package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/spf13/cobra"

	"github.com/Areeb006/FAJR/internal/app"
	"github.com/Areeb006/FAJR/internal/config"
	"github.com/Areeb006/FAJR/internal/notify"
	"github.com/Areeb006/FAJR/pkg/logger"
)

// noAppAnnotation marks commands that only need configuration and logging.
const noAppAnnotation = "no-app"

// cli holds the state shared by every command of one invocation.
type cli struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	mu     sync.Mutex
	cfg    *config.Config
	logger *slog.Logger
	notes  *trackingNotifier
	app    *app.App
}

func newCLI(in io.Reader, out, errOut io.Writer) *cli {
	return &cli{in: in, out: out, errOut: errOut}
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "storefront",
		Short: "FAJR perfume storefront and admin client",
		Long: `storefront talks to the FAJR REST API.

Customer commands browse the catalogue, manage the cart and stage a checkout
selection. Admin commands manage products, users and orders. The cart, the
checkout selection and the login session are kept in local storage between
runs (see STORAGE_BACKEND).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.init(); err != nil {
				return err
			}
			if cmd.Annotations[noAppAnnotation] == "true" {
				return nil
			}
			return c.open(cmd.Context())
		},
	}

	root.AddCommand(
		newProductsCmd(c),
		newCartCmd(c),
		newCheckoutCmd(c),
		newAccountCmd(c),
		newAdminCmd(c),
		newDevServerCmd(c),
	)
	return root
}

// init loads configuration and builds the logger. Logs go to errOut so
// rendered output stays clean.
func (c *cli) init() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger.NewWithWriter("storefront", cfg.LogLevel, c.errOut)
	c.notes = &trackingNotifier{inner: notify.NewConsole(c.out, c.logger)}
	return nil
}

func (c *cli) open(ctx context.Context) error {
	a, err := app.NewApp(ctx, c.cfg, c.logger, c.notes)
	if err != nil {
		return fmt.Errorf("initialize application: %w", err)
	}
	c.app = a
	return nil
}

func (c *cli) close() {
	if c.app == nil {
		return
	}
	if err := c.app.Close(); err != nil {
		c.logger.Error("application close error", slog.String("error", err.Error()))
	}
	c.app = nil
}

// print writes one rendered block. It is safe to call from render callbacks.
func (c *cli) print(s string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, s)
}

func (c *cli) notifiedFailure() bool {
	return c.notes != nil && c.notes.failed.Load()
}

// trackingNotifier remembers whether an error notification was shown.
type trackingNotifier struct {
	inner  notify.Notifier
	failed atomic.Bool
}

func (t *trackingNotifier) Notify(ctx context.Context, level notify.Level, msg string) {
	if level == notify.LevelError {
		t.failed.Store(true)
	}
	t.inner.Notify(ctx, level, msg)
}
